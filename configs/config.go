package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "STOREFRONT_"

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogLevel string `koanf:"log_level"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	Store struct {
		Backend   string `koanf:"backend"` // memory | dynamodb | redis
		Namespace string `koanf:"namespace"`
		DynamoDB  struct {
			Table    string `koanf:"table"`
			Region   string `koanf:"region"`
			Endpoint string `koanf:"endpoint"`
		} `koanf:"dynamodb"`
		Redis struct {
			Addr     string `koanf:"addr"`
			Password string `koanf:"password"`
			DB       int    `koanf:"db"`
		} `koanf:"redis"`
	} `koanf:"store"`

	Checkout struct {
		TaxRate               float64 `koanf:"tax_rate"`
		FreeShippingThreshold float64 `koanf:"free_shipping_threshold"`
		ShippingCost          float64 `koanf:"shipping_cost"`
	} `koanf:"checkout"`

	Delays struct {
		Payment  time.Duration `koanf:"payment"`
		Purchase time.Duration `koanf:"purchase"`
		Redeem   time.Duration `koanf:"redeem"`
		SignIn   time.Duration `koanf:"sign_in"`
		SignUp   time.Duration `koanf:"sign_up"`
	} `koanf:"delays"`

	Payments struct {
		Mock        bool   `koanf:"mock"`
		AccessToken string `koanf:"access_token"`
	} `koanf:"payments"`

	Purchases struct {
		Kafka struct {
			Brokers []string `koanf:"brokers"`
			Topic   string   `koanf:"topic"`
		} `koanf:"kafka"`
	} `koanf:"purchases"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env override (dev/staging/prod). Optional: allow missing for local runs.
	if envName != "" {
		_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())
	}

	// 3) environment variables override (prefix STOREFRONT_, nested with __)
	// e.g. STOREFRONT_STORE__BACKEND, STOREFRONT_PURCHASES__KAFKA__BROKERS
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	switch c.Store.Backend {
	case "memory":
	case "dynamodb":
		if c.Store.DynamoDB.Table == "" {
			return fmt.Errorf("store.dynamodb.table required for dynamodb backend")
		}
	case "redis":
		if c.Store.Redis.Addr == "" {
			return fmt.Errorf("store.redis.addr required for redis backend")
		}
	default:
		return fmt.Errorf("store.backend must be memory, dynamodb or redis, got %q", c.Store.Backend)
	}
	if c.Checkout.TaxRate < 0 || c.Checkout.ShippingCost < 0 || c.Checkout.FreeShippingThreshold < 0 {
		return fmt.Errorf("checkout rates must not be negative")
	}
	if !c.Payments.Mock && c.Payments.AccessToken == "" {
		return fmt.Errorf("payments.access_token required when payments.mock is false")
	}
	if len(c.Purchases.Kafka.Brokers) > 0 && c.Purchases.Kafka.Topic == "" {
		return fmt.Errorf("purchases.kafka.topic required when brokers are set")
	}
	return nil
}
