package apperr

import (
	"context"
	"errors"
	"strings"

	"github.com/fekuna/omnipos-pricing-service/internal/auth"
	"github.com/fekuna/omnipos-pricing-service/pkg/i18n"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToStatus converts a usecase error into a gRPC status with a message in the caller's
// language. Unknown errors are logged and reported as Internal.
func ToStatus(ctx context.Context, log logger.ZapLogger, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && !isDomain(err) {
		return err
	}
	langs := auth.GetLanguages(ctx)

	switch {
	case errors.Is(err, ErrMissingMerchant):
		return status.Error(codes.Unauthenticated, i18n.T("missing_merchant", nil, langs...))
	case errors.Is(err, ErrNotFound):
		entity := "resource"
		var nf *notFoundError
		if errors.As(err, &nf) {
			entity = nf.entity
		}
		return status.Error(codes.NotFound, i18n.T("not_found", map[string]any{"Entity": entity}, langs...))
	case errors.Is(err, ErrInvalidInput):
		detail := strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
		return status.Error(codes.InvalidArgument, i18n.T("invalid_argument", map[string]any{"Detail": detail}, langs...))
	case errors.Is(err, ErrPINRejected):
		return status.Error(codes.PermissionDenied, i18n.T("pin_rejected", nil, langs...))
	case errors.Is(err, ErrPromotionActive):
		return status.Error(codes.FailedPrecondition, i18n.T("promotion_active", nil, langs...))
	case errors.Is(err, ErrInsufficientStock):
		return status.Error(codes.FailedPrecondition, i18n.T("insufficient_stock", nil, langs...))
	case errors.Is(err, ErrSKUExists):
		return status.Error(codes.AlreadyExists, i18n.T("sku_exists", nil, langs...))
	case errors.Is(err, ErrBusy):
		return status.Error(codes.Unavailable, i18n.T("system_busy", nil, langs...))
	}

	log.Error("unexpected error", zap.Error(err))
	return status.Error(codes.Internal, i18n.T("internal_error", nil, langs...))
}

func isDomain(err error) bool {
	for _, target := range []error{
		ErrMissingMerchant, ErrNotFound, ErrInvalidInput, ErrPINRejected,
		ErrPromotionActive, ErrInsufficientStock, ErrSKUExists, ErrBusy,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
