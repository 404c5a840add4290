package handler

import (
	"context"

	pricingv1 "github.com/fekuna/omnipos-pricing-service/api/pricingv1"
	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/auth"
	"github.com/fekuna/omnipos-pricing-service/internal/catalog"
	catalogHandler "github.com/fekuna/omnipos-pricing-service/internal/catalog/handler"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/override"
	"github.com/fekuna/omnipos-pricing-service/internal/override/dto"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"google.golang.org/protobuf/types/known/emptypb"
)

type PriceHandler struct {
	pricingv1.UnimplementedPriceServiceServer

	uc     override.UseCase
	logger logger.ZapLogger
}

func NewPriceHandler(uc override.UseCase, log logger.ZapLogger) *PriceHandler {
	return &PriceHandler{uc: uc, logger: log}
}

func (h *PriceHandler) ResolvePrice(ctx context.Context, req *pricingv1.ResolvePriceRequest) (*pricingv1.ResolvePriceResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	res, err := h.uc.ResolvePrice(ctx, &dto.ResolvePriceInput{
		MerchantID: merchantID,
		ProductID:  req.ProductID,
		BranchID:   req.BranchID,
		ChannelID:  req.ChannelID,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}

	resp := &pricingv1.ResolvePriceResponse{
		ProductID:        res.Product.ID,
		BasePrice:        res.BasePrice,
		Price:            res.Price,
		DisplayPrice:     catalog.DisplayPrice(res.Price),
		AppliedPromotion: catalogHandler.MapAppliedPromotion(res.AppliedPromotion),
		Sellable:         res.Sellable,
	}
	if res.Override != nil {
		resp.OverrideID = res.Override.ID
	}
	return resp, nil
}

func (h *PriceHandler) UpsertPriceOverride(ctx context.Context, req *pricingv1.UpsertPriceOverrideRequest) (*pricingv1.PriceOverrideResponse, error) {
	user := auth.GetUserContext(ctx)
	if user.MerchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	o, err := h.uc.UpsertOverride(ctx, &dto.UpsertOverrideInput{
		MerchantID:       user.MerchantID,
		UserID:           user.UserID,
		ProductID:        req.ProductID,
		BranchID:         req.BranchID,
		ChannelID:        req.ChannelID,
		Price:            req.Price,
		IsActive:         req.IsActive,
		IgnorePromotions: req.IgnorePromotions,
		PIN:              req.PIN,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &pricingv1.PriceOverrideResponse{Override: mapOverride(o)}, nil
}

func (h *PriceHandler) ListPriceOverrides(ctx context.Context, req *pricingv1.ListPriceOverridesRequest) (*pricingv1.ListPriceOverridesResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	overrides, err := h.uc.ListOverrides(ctx, &dto.OverrideFilters{
		MerchantID: merchantID,
		ProductID:  req.ProductID,
		BranchID:   req.BranchID,
		ChannelID:  req.ChannelID,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}

	out := make([]*pricingv1.PriceOverride, len(overrides))
	for i := range overrides {
		out[i] = mapOverride(&overrides[i])
	}
	return &pricingv1.ListPriceOverridesResponse{Overrides: out}, nil
}

func (h *PriceHandler) DeletePriceOverride(ctx context.Context, req *pricingv1.DeletePriceOverrideRequest) (*emptypb.Empty, error) {
	user := auth.GetUserContext(ctx)
	if user.MerchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	err := h.uc.DeleteOverride(ctx, &dto.DeleteOverrideInput{
		MerchantID: user.MerchantID,
		UserID:     user.UserID,
		ID:         req.ID,
		PIN:        req.PIN,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &emptypb.Empty{}, nil
}

func mapOverride(o *model.PriceOverride) *pricingv1.PriceOverride {
	createdBy := ""
	if o.CreatedBy != nil {
		createdBy = *o.CreatedBy
	}
	return &pricingv1.PriceOverride{
		ID:               o.ID,
		ProductID:        o.ProductID,
		BranchID:         o.BranchIDValue(),
		ChannelID:        o.ChannelIDValue(),
		Price:            o.Price,
		IsActive:         o.IsActive,
		IgnorePromotions: o.IgnorePromotions,
		CreatedBy:        createdBy,
		UpdatedAt:        o.UpdatedAt,
	}
}
