package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/catalog"
	"github.com/fekuna/omnipos-pricing-service/internal/events"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/override"
	"github.com/fekuna/omnipos-pricing-service/internal/override/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/pin"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/pkg/cache"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/pkg/metrics"
	"github.com/fekuna/omnipos-pricing-service/pkg/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type overrideUseCase struct {
	repo       override.Repository
	products   override.ProductReader
	promotions override.PromotionReader
	pins       pin.Verifier
	cache      cache.JSONStore
	publisher  events.Publisher
	opts       pricing.Options
	now        func() time.Time
	logger     logger.ZapLogger
}

func NewOverrideUseCase(
	repo override.Repository,
	products override.ProductReader,
	promotions override.PromotionReader,
	pins pin.Verifier,
	store cache.JSONStore,
	publisher events.Publisher,
	opts pricing.Options,
	log logger.ZapLogger,
) override.UseCase {
	return &overrideUseCase{
		repo:       repo,
		products:   products,
		promotions: promotions,
		pins:       pins,
		cache:      store,
		publisher:  publisher,
		opts:       opts,
		now:        time.Now,
		logger:     log,
	}
}

func (uc *overrideUseCase) UpsertOverride(ctx context.Context, input *dto.UpsertOverrideInput) (*model.PriceOverride, error) {
	if err := validation.Struct(input); err != nil {
		return nil, apperr.Invalid("%v", err)
	}
	if err := uc.requirePIN(ctx, input.MerchantID, input.UserID, input.PIN); err != nil {
		return nil, err
	}

	p, err := uc.products.FindByID(ctx, input.MerchantID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("product")
	}

	branchID, channelID := optional(input.BranchID), optional(input.ChannelID)
	existing, err := uc.repo.FindByScope(ctx, input.MerchantID, input.ProductID, branchID, channelID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	o := existing
	if o == nil {
		o = &model.PriceOverride{
			BaseModel:  model.BaseModel{ID: uuid.New().String(), CreatedAt: now},
			MerchantID: input.MerchantID,
			ProductID:  input.ProductID,
			BranchID:   branchID,
			ChannelID:  channelID,
			CreatedBy:  optional(input.UserID),
		}
	}
	o.Price = input.Price
	o.IsActive = input.IsActive
	o.IgnorePromotions = input.IgnorePromotions
	o.UpdatedAt = now

	if existing == nil {
		err = uc.repo.Create(ctx, o)
	} else {
		err = uc.repo.Update(ctx, o)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("price override saved",
		zap.String("merchant_id", o.MerchantID),
		zap.String("product_id", o.ProductID),
		zap.String("override_id", o.ID),
		zap.Bool("created", existing == nil),
	)
	uc.afterChange(input.MerchantID, events.PriceOverrideUpserted, o.ID, o)
	return o, nil
}

func (uc *overrideUseCase) ListOverrides(ctx context.Context, filters *dto.OverrideFilters) ([]model.PriceOverride, error) {
	if filters.MerchantID == "" {
		return nil, apperr.ErrMissingMerchant
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *overrideUseCase) DeleteOverride(ctx context.Context, input *dto.DeleteOverrideInput) error {
	if err := validation.Struct(input); err != nil {
		return apperr.Invalid("%v", err)
	}
	if err := uc.requirePIN(ctx, input.MerchantID, input.UserID, input.PIN); err != nil {
		return err
	}

	o, err := uc.repo.FindByID(ctx, input.MerchantID, input.ID)
	if err != nil {
		return err
	}
	if o == nil {
		return apperr.NotFound("price override")
	}
	if err := uc.repo.Delete(ctx, input.MerchantID, input.ID); err != nil {
		return err
	}

	uc.afterChange(input.MerchantID, events.PriceOverrideDeleted, o.ID, o)
	return nil
}

func (uc *overrideUseCase) ResolvePrice(ctx context.Context, input *dto.ResolvePriceInput) (*dto.ResolvedPrice, error) {
	if err := validation.Struct(input); err != nil {
		return nil, apperr.Invalid("%v", err)
	}

	p, err := uc.products.FindByID(ctx, input.MerchantID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("product")
	}

	overrides, err := uc.repo.FindAll(ctx, &dto.OverrideFilters{MerchantID: input.MerchantID, ProductID: p.ID})
	if err != nil {
		return nil, err
	}
	promotions, err := uc.promotions.FindActive(ctx, input.MerchantID)
	if err != nil {
		return nil, err
	}

	res := pricing.Resolve(p, overrides, promotions, uc.opts.Context(input.BranchID, input.ChannelID, uc.now()))

	promoType := ""
	if res.AppliedPromotion != nil {
		promoType = string(res.AppliedPromotion.Type)
	}
	metrics.ObservePriceResolution(res.Override != nil, promoType)

	return &dto.ResolvedPrice{Product: p, Result: res}, nil
}

func (uc *overrideUseCase) requirePIN(ctx context.Context, merchantID, userID, candidate string) error {
	ok, err := uc.pins.Verify(ctx, merchantID, userID, candidate)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrPINRejected
	}
	return nil
}

// afterChange drops the merchant's cached priced listings and publishes eventType in the
// background.
func (uc *overrideUseCase) afterChange(merchantID, eventType, entityID string, payload any) {
	if err := catalog.InvalidatePricedCache(context.Background(), uc.cache, merchantID); err != nil {
		uc.logger.Warn("failed to invalidate priced catalog cache", zap.Error(err))
	}
	go func() {
		_ = uc.publisher.Publish(context.Background(), eventType, merchantID, entityID, payload)
	}()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
