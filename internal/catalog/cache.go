package catalog

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"

	"github.com/fekuna/omnipos-pricing-service/pkg/cache"
)

const ProductIndex = "products"

func PricedCacheKey(merchantID string, filters any) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("catalog:priced:%s:%x", merchantID, md5.Sum(data)), nil
}

func PricedCachePattern(merchantID string) string {
	return fmt.Sprintf("catalog:priced:%s:*", merchantID)
}

// InvalidatePricedCache drops every priced listing cached for the merchant. Any change to
// overrides or promotions must call it.
func InvalidatePricedCache(ctx context.Context, store cache.JSONStore, merchantID string) error {
	if store == nil {
		return nil
	}
	return store.DeleteByPattern(ctx, PricedCachePattern(merchantID))
}
