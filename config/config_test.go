package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8083", cfg.Server.GRPCPort)
	assert.Equal(t, "America/Bogota", cfg.Pricing.Timezone)
	assert.Equal(t, "id", cfg.Pricing.CategoryMatch)
	assert.Equal(t, "orders.events", cfg.Kafka.OrdersTopic)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("PRICING_CATEGORY_MATCH", "id_or_name")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, "id_or_name", cfg.Pricing.CategoryMatch)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}
