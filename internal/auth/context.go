package auth

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-pricing-service/pkg/middleware"
	"google.golang.org/grpc/metadata"
)

type UserContext struct {
	MerchantID string
	UserID     string
	Role       string
}

// GetMerchantID prefers the verified token claims and falls back to the x-merchant-id header
// set by the gateway.
func GetMerchantID(ctx context.Context) string {
	if c, ok := middleware.ClaimsFromContext(ctx); ok && c.MerchantID != "" {
		return c.MerchantID
	}
	return fromMetadata(ctx, "x-merchant-id")
}

func GetUserID(ctx context.Context) string {
	if c, ok := middleware.ClaimsFromContext(ctx); ok && c.UserID != "" {
		return c.UserID
	}
	return fromMetadata(ctx, "x-user-id")
}

func GetUserContext(ctx context.Context) UserContext {
	uc := UserContext{MerchantID: GetMerchantID(ctx), UserID: GetUserID(ctx)}
	if c, ok := middleware.ClaimsFromContext(ctx); ok {
		uc.Role = c.Role
	}
	return uc
}

// GetLanguages returns the accept-language tags of the caller, most preferred first.
func GetLanguages(ctx context.Context) []string {
	raw := fromMetadata(ctx, "accept-language")
	if raw == "" {
		return nil
	}
	var langs []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag != "" {
			langs = append(langs, tag)
		}
	}
	return langs
}

func fromMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if val := md.Get(key); len(val) > 0 {
		return val[0]
	}
	return ""
}
