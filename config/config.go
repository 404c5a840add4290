package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig        `mapstructure:"server"`
	Logger   LoggerConfig        `mapstructure:"logger"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	JWT      JWTConfig           `mapstructure:"jwt"`
	Redis    RedisConfig         `mapstructure:"redis"`
	Kafka    KafkaConfig         `mapstructure:"kafka"`
	Elastic  ElasticsearchConfig `mapstructure:"elasticsearch"`
	Pricing  PricingConfig       `mapstructure:"pricing"`
}

type ServerConfig struct {
	AppEnv         string `mapstructure:"app_env"`
	GRPCPort       string `mapstructure:"grpc_port"`
	HTTPAddr       string `mapstructure:"http_addr"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
}

type LoggerConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
	FilePath          string `mapstructure:"file_path"`
}

type PostgresConfig struct {
	Host            string `mapstructure:"host"`
	Port            string `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"db"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Brokers      []string `mapstructure:"brokers"`
	OrdersTopic  string   `mapstructure:"topic_orders"`
	PricingTopic string   `mapstructure:"topic_pricing"`
	GroupID      string   `mapstructure:"group_inventory"`
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

type PricingConfig struct {
	// Timezone is the IANA zone whose calendar day decides promotion validity.
	Timezone string `mapstructure:"timezone"`
	// CategoryMatch is one of "id", "name" or "id_or_name".
	CategoryMatch string `mapstructure:"category_match"`
}

var defaults = map[string]any{
	"server.app_env":         "dev",
	"server.grpc_port":       ":8083",
	"server.http_addr":       ":9093",
	"server.metrics_enabled": true,

	"logger.level":              "debug",
	"logger.encoding":           "console",
	"logger.disable_caller":     false,
	"logger.disable_stacktrace": true,
	"logger.file_path":          "",

	"postgres.host":               "localhost",
	"postgres.port":               "5433",
	"postgres.user":               "omnipos",
	"postgres.password":           "omnipos",
	"postgres.db":                 "omnipos_pricing",
	"postgres.sslmode":            "disable",
	"postgres.max_open_conns":     10,
	"postgres.max_idle_conns":     5,
	"postgres.conn_max_lifetime":  300,
	"postgres.conn_max_idle_time": 60,

	"jwt.secret_key": "your-secret-key-change-this-in-prod",

	"redis.addr":     "localhost:6379",
	"redis.password": "",
	"redis.db":       0,

	"kafka.brokers":         []string{"localhost:9092"},
	"kafka.topic_orders":    "orders.events",
	"kafka.topic_pricing":   "pricing.events",
	"kafka.group_inventory": "pricing-inventory",

	"elasticsearch.addresses": []string{"http://localhost:9200"},
	"elasticsearch.username":  "",
	"elasticsearch.password":  "",

	"pricing.timezone":       "America/Bogota",
	"pricing.category_match": "id",
}

// LoadEnv reads .env (if present) and the process environment. Nested keys map to upper-case
// variables with "_" separators, e.g. postgres.host -> POSTGRES_HOST.
func LoadEnv() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true) // REDIS_ADDR= selects the in-process store
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
