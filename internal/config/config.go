package config

import (
	"bitumen_production/internal/domain/blending"
	"bitumen_production/internal/domain/costing"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

type Config struct {
	App struct {
		Env  string
		Port string
	} `mapstructure:"app"`

	Storage struct {
		Driver string
	} `mapstructure:"storage"`

	DynamoDB struct {
		Region          string
		Endpoint        string
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
		StockTable      string `mapstructure:"stock_table"`
		BatchesTable    string `mapstructure:"batches_table"`
		RecordsTable    string `mapstructure:"records_table"`
	} `mapstructure:"dynamodb"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Redis struct {
		Addr     string
		Password string
		DB       int
		Channel  string
	} `mapstructure:"redis"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	// Costing constants are kept as strings so they stay exact decimals.
	Costing struct {
		BlendMarkup          string `mapstructure:"blend_markup"`
		BlendOffset          string `mapstructure:"blend_offset"`
		ThreadKgPerBag       string `mapstructure:"thread_kg_per_bag"`
		RopeGramsPerBag      string `mapstructure:"rope_grams_per_bag"`
		KraftKgPerWrappedBag string `mapstructure:"kraft_kg_per_wrapped_bag"`
	} `mapstructure:"costing"`

	Feed struct {
		PollInterval time.Duration `mapstructure:"poll_interval"`
	} `mapstructure:"feed"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")

	v.SetDefault("storage.driver", StorageDynamoDB)

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.stock_table", "material_stock")
	v.SetDefault("dynamodb.batches_table", "conversion_batches")
	v.SetDefault("dynamodb.records_table", "production_records")

	v.SetDefault("postgres.dsn", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel", "kettle:events")

	v.SetDefault("metrics.enabled", true)

	v.SetDefault("costing.blend_markup", "1.0205")
	v.SetDefault("costing.blend_offset", "9")
	v.SetDefault("costing.thread_kg_per_bag", "0.015")
	v.SetDefault("costing.rope_grams_per_bag", "1.5")
	v.SetDefault("costing.kraft_kg_per_wrapped_bag", "0.25")

	v.SetDefault("feed.poll_interval", 10*time.Second)
}

// Load reads defaults, then the optional YAML file named by CONFIG_FILE, then
// the environment (dynamodb.stock_table <- DYNAMODB_STOCK_TABLE).
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// aliases kept from the plain-env deployments
	_ = v.BindEnv("app.port", "APP_PORT", "PORT")
	_ = v.BindEnv("dynamodb.region", "DYNAMODB_REGION", "AWS_REGION")
	_ = v.BindEnv("dynamodb.access_key_id", "DYNAMODB_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("dynamodb.secret_access_key", "DYNAMODB_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY")

	var c Config
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}

	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case StorageDynamoDB:
	case StoragePostgres:
		if c.Postgres.DSN == "" {
			return c, fmt.Errorf("postgres.dsn is required when storage.driver=%s", StoragePostgres)
		}
	default:
		return c, fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if _, err := c.BlendOptions(); err != nil {
		return c, err
	}
	return c, nil
}

type decimalField struct {
	key string
	raw string
	dst *decimal.Decimal
}

// BlendOptions converts the costing section into session options.
func (c Config) BlendOptions() (blending.Options, error) {
	var markup, offset, thread, rope, kraft decimal.Decimal
	fields := []decimalField{
		{"costing.blend_markup", c.Costing.BlendMarkup, &markup},
		{"costing.blend_offset", c.Costing.BlendOffset, &offset},
		{"costing.thread_kg_per_bag", c.Costing.ThreadKgPerBag, &thread},
		{"costing.rope_grams_per_bag", c.Costing.RopeGramsPerBag, &rope},
		{"costing.kraft_kg_per_wrapped_bag", c.Costing.KraftKgPerWrappedBag, &kraft},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(strings.TrimSpace(f.raw))
		if err != nil {
			return blending.Options{}, fmt.Errorf("invalid %s %q: %w", f.key, f.raw, err)
		}
		if d.IsNegative() {
			return blending.Options{}, fmt.Errorf("invalid %s %q: must not be negative", f.key, f.raw)
		}
		*f.dst = d
	}

	return blending.Options{
		Costing: costing.BlendFactors{
			Adjustment:     costing.Adjustment{Factor: markup, Offset: offset},
			ThreadKgPerBag: thread,
		},
		Packaging: blending.PackagingFactors{
			RopeGramsPerBag:      rope,
			KraftKgPerWrappedBag: kraft,
		},
	}, nil
}

// RedisEnabled reports whether the event bus (and the SSE stream) is wired.
func (c Config) RedisEnabled() bool { return c.Redis.Addr != "" }
