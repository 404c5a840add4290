package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func digitsOnly(s string) string {
	return strings.NewReplacer(".", "", ",", "", " ", "", " ", "").Replace(s)
}

func TestDisplayPrice(t *testing.T) {
	got := DisplayPrice(decimal.RequireFromString("12500.4"))
	assert.True(t, strings.HasPrefix(got, "$"))
	assert.Equal(t, "$12500", digitsOnly(got))

	assert.Equal(t, "$12501", digitsOnly(DisplayPrice(decimal.RequireFromString("12500.5"))))
	assert.Equal(t, "$0", digitsOnly(DisplayPrice(decimal.Zero)))
}

func TestPricedCacheKey(t *testing.T) {
	a, err := PricedCacheKey("m1", map[string]any{"branch": "A"})
	assert.NoError(t, err)
	b, _ := PricedCacheKey("m1", map[string]any{"branch": "B"})
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "catalog:priced:m1:"))
	assert.Equal(t, "catalog:priced:m1:*", PricedCachePattern("m1"))
}
