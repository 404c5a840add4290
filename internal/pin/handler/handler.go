package handler

import (
	"context"

	pricingv1 "github.com/fekuna/omnipos-pricing-service/api/pricingv1"
	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/auth"
	"github.com/fekuna/omnipos-pricing-service/internal/pin"
	"github.com/fekuna/omnipos-pricing-service/internal/pin/dto"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"google.golang.org/protobuf/types/known/emptypb"
)

type AuthorizationHandler struct {
	pricingv1.UnimplementedAuthorizationServiceServer

	uc     pin.UseCase
	logger logger.ZapLogger
}

func NewAuthorizationHandler(uc pin.UseCase, log logger.ZapLogger) *AuthorizationHandler {
	return &AuthorizationHandler{uc: uc, logger: log}
}

func (h *AuthorizationHandler) VerifyPIN(ctx context.Context, req *pricingv1.VerifyPINRequest) (*pricingv1.VerifyPINResponse, error) {
	user := auth.GetUserContext(ctx)
	if user.MerchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	ok, err := h.uc.Verify(ctx, user.MerchantID, user.UserID, req.PIN)
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &pricingv1.VerifyPINResponse{Valid: ok}, nil
}

func (h *AuthorizationHandler) SetPIN(ctx context.Context, req *pricingv1.SetPINRequest) (*emptypb.Empty, error) {
	user := auth.GetUserContext(ctx)
	if user.MerchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	err := h.uc.SetPIN(ctx, &dto.SetPINInput{
		MerchantID: user.MerchantID,
		UserID:     user.UserID,
		PIN:        req.PIN,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &emptypb.Empty{}, nil
}
