package handler

import (
	"context"

	pricingv1 "github.com/fekuna/omnipos-pricing-service/api/pricingv1"
	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/auth"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/promotion"
	"github.com/fekuna/omnipos-pricing-service/internal/promotion/dto"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"google.golang.org/protobuf/types/known/emptypb"
)

type PromotionHandler struct {
	pricingv1.UnimplementedPromotionServiceServer

	uc     promotion.UseCase
	logger logger.ZapLogger
}

func NewPromotionHandler(uc promotion.UseCase, log logger.ZapLogger) *PromotionHandler {
	return &PromotionHandler{uc: uc, logger: log}
}

func (h *PromotionHandler) CreatePromotion(ctx context.Context, req *pricingv1.CreatePromotionRequest) (*pricingv1.PromotionResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	p, err := h.uc.CreatePromotion(ctx, toInput(merchantID, "", req))
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &pricingv1.PromotionResponse{Promotion: MapPromotion(p)}, nil
}

func (h *PromotionHandler) UpdatePromotion(ctx context.Context, req *pricingv1.UpdatePromotionRequest) (*pricingv1.PromotionResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	p, err := h.uc.UpdatePromotion(ctx, toInput(merchantID, req.ID, &req.CreatePromotionRequest))
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &pricingv1.PromotionResponse{Promotion: MapPromotion(p)}, nil
}

func (h *PromotionHandler) GetPromotion(ctx context.Context, req *pricingv1.GetPromotionRequest) (*pricingv1.PromotionResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	p, err := h.uc.GetPromotion(ctx, merchantID, req.ID)
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &pricingv1.PromotionResponse{Promotion: MapPromotion(p)}, nil
}

func (h *PromotionHandler) ListPromotions(ctx context.Context, req *pricingv1.ListPromotionsRequest) (*pricingv1.ListPromotionsResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	promotions, total, err := h.uc.ListPromotions(ctx, &dto.PromotionFilters{
		MerchantID: merchantID,
		ActiveOnly: req.ActiveOnly,
		ValidNow:   req.ValidNow,
		ChannelID:  req.ChannelID,
		BranchID:   req.BranchID,
		Page:       int(req.Page),
		PageSize:   int(req.PageSize),
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}

	out := make([]*pricingv1.Promotion, len(promotions))
	for i := range promotions {
		out[i] = MapPromotion(&promotions[i])
	}
	return &pricingv1.ListPromotionsResponse{Promotions: out, Total: int32(total)}, nil
}

func (h *PromotionHandler) SetPromotionActive(ctx context.Context, req *pricingv1.SetPromotionActiveRequest) (*pricingv1.PromotionResponse, error) {
	merchantID := auth.GetMerchantID(ctx)
	if merchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	p, err := h.uc.SetPromotionActive(ctx, merchantID, req.ID, req.IsActive)
	if err != nil {
		return nil, apperr.ToStatus(ctx, h.logger, err)
	}
	return &pricingv1.PromotionResponse{Promotion: MapPromotion(p)}, nil
}

func (h *PromotionHandler) DeletePromotion(ctx context.Context, req *pricingv1.DeletePromotionRequest) (*emptypb.Empty, error) {
	user := auth.GetUserContext(ctx)
	if user.MerchantID == "" {
		return nil, apperr.ToStatus(ctx, h.logger, apperr.ErrMissingMerchant)
	}

	err := h.uc.DeletePromotion(ctx, &dto.DeletePromotionInput{
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

func toInput(merchantID, id string, req *pricingv1.CreatePromotionRequest) *dto.PromotionInput {
	return &dto.PromotionInput{
		ID:         id,
		MerchantID: merchantID,
		Name:       req.Name,
		Type:       model.PromotionType(req.Type),
		Value:      req.Value,
		Config: model.PromotionConfig{
			DiscountType:    model.DiscountKind(req.Config.DiscountType),
			BuyQty:          req.Config.BuyQty,
			GetQty:          req.Config.GetQty,
			ComboPrice:      req.Config.ComboPrice,
			ComboProductIDs: req.Config.ComboProductIDs,
		},
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		ScopeChannels:    req.ScopeChannels,
		ScopeBranches:    req.ScopeBranches,
		Priority:         req.Priority,
		IsActive:         req.IsActive,
		TargetProductIDs: req.TargetProductIDs,
		TargetCategories: req.TargetCategories,
	}
}

func MapPromotion(p *model.Promotion) *pricingv1.Promotion {
	out := &pricingv1.Promotion{
		ID:    p.ID,
		Name:  p.Name,
		Type:  string(p.Type),
		Value: p.Value,
		Config: pricingv1.PromotionConfig{
			DiscountType:    string(p.Config.DiscountType),
			BuyQty:          p.Config.BuyQty,
			GetQty:          p.Config.GetQty,
			ComboPrice:      p.Config.ComboPrice,
			ComboProductIDs: p.Config.ComboProductIDs,
		},
		StartDate:        p.StartDate.String(),
		ScopeChannels:    nonNil(p.ScopeChannels),
		ScopeBranches:    nonNil(p.ScopeBranches),
		Priority:         p.Priority,
		IsActive:         p.IsActive,
		TargetProductIDs: nonNil(p.TargetProductIDs),
		TargetCategories: nonNil(p.TargetCategories),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.EndDate != nil {
		out.EndDate = p.EndDate.String()
	}
	return out
}

// nonNil keeps empty scopes serialized as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
