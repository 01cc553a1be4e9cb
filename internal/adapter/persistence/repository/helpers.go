package repository

import "strings"

// namespacedKey prefixes key with "<namespace>:" when a namespace is set so
// several storefront profiles can share one table or Redis database.
func namespacedKey(namespace, key string) string {
	ns := strings.TrimSpace(namespace)
	if ns == "" {
		return key
	}
	return ns + ":" + key
}
