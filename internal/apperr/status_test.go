package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	log := logger.NewNop()
	ctx := context.Background()

	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"not found", NotFound("promotion"), codes.NotFound, "promotion not found"},
		{"wrapped not found", fmt.Errorf("load: %w", NotFound("product")), codes.NotFound, "product not found"},
		{"invalid", Invalid("price must be >= 0"), codes.InvalidArgument, "Invalid request: price must be >= 0"},
		{"pin", ErrPINRejected, codes.PermissionDenied, "The authorization PIN is not valid"},
		{"active promotion", ErrPromotionActive, codes.FailedPrecondition, "Deactivate the promotion before deleting it"},
		{"stock", ErrInsufficientStock, codes.FailedPrecondition, "Insufficient stock for this ingredient"},
		{"sku", ErrSKUExists, codes.AlreadyExists, "An item with this SKU already exists"},
		{"busy", ErrBusy, codes.Unavailable, "The system is busy, please try again"},
		{"merchant", ErrMissingMerchant, codes.Unauthenticated, "Missing merchant context"},
		{"unknown", errors.New("pq: connection refused"), codes.Internal, "Something went wrong, please try again later"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(ToStatus(ctx, log, tt.err))
			assert.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}

func TestToStatus_Spanish(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("accept-language", "es-CO"))
	st, _ := status.FromError(ToStatus(ctx, logger.NewNop(), ErrPINRejected))
	assert.Equal(t, "El PIN de autorización no es válido", st.Message())
}

func TestToStatus_PassesStatusThrough(t *testing.T) {
	in := status.Error(codes.DeadlineExceeded, "slow")
	assert.Equal(t, in, ToStatus(context.Background(), logger.NewNop(), in))
	assert.NoError(t, ToStatus(context.Background(), logger.NewNop(), nil))
}
