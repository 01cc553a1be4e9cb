package database

import (
	"context"
	"testing"
)

func TestNewDynamoDBConfig(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	t.Run("explicit region wins", func(t *testing.T) {
		cfg, err := NewDynamoDBConfig(context.Background(), DynamoDBOptions{Region: "sa-east-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Region != "sa-east-1" {
			t.Fatalf("expected sa-east-1, got %q", cfg.Region)
		}
	})

	t.Run("local credentials by default", func(t *testing.T) {
		cfg, err := NewDynamoDBConfig(context.Background(), DynamoDBOptions{Region: "us-east-1", Endpoint: "http://localhost:8000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		creds, err := cfg.Credentials.Retrieve(context.Background())
		if err != nil {
			t.Fatalf("retrieve credentials: %v", err)
		}
		if creds.AccessKeyID != "local" || creds.SecretAccessKey != "local" {
			t.Fatalf("unexpected credentials %+v", creds)
		}
	})
}
