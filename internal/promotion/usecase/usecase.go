package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-pricing-service/internal/apperr"
	"github.com/fekuna/omnipos-pricing-service/internal/catalog"
	"github.com/fekuna/omnipos-pricing-service/internal/events"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/pin"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/internal/promotion"
	"github.com/fekuna/omnipos-pricing-service/internal/promotion/dto"
	"github.com/fekuna/omnipos-pricing-service/pkg/cache"
	"github.com/fekuna/omnipos-pricing-service/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/pkg/validation"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var hundred = decimal.NewFromInt(100)

type promotionUseCase struct {
	repo       promotion.Repository
	categories promotion.CategoryChecker
	pins       pin.Verifier
	cache      cache.JSONStore
	publisher  events.Publisher
	opts       pricing.Options
	now        func() time.Time
	logger     logger.ZapLogger
}

func NewPromotionUseCase(
	repo promotion.Repository,
	categories promotion.CategoryChecker,
	pins pin.Verifier,
	store cache.JSONStore,
	publisher events.Publisher,
	opts pricing.Options,
	log logger.ZapLogger,
) promotion.UseCase {
	return &promotionUseCase{
		repo:       repo,
		categories: categories,
		pins:       pins,
		cache:      store,
		publisher:  publisher,
		opts:       opts,
		now:        time.Now,
		logger:     log,
	}
}

func (uc *promotionUseCase) CreatePromotion(ctx context.Context, input *dto.PromotionInput) (*model.Promotion, error) {
	now := uc.now()
	p := &model.Promotion{
		BaseModel:  model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		MerchantID: input.MerchantID,
	}
	if err := uc.apply(ctx, p, input); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.afterChange(p.MerchantID, events.PromotionCreated, p.ID, p)
	return p, nil
}

func (uc *promotionUseCase) UpdatePromotion(ctx context.Context, input *dto.PromotionInput) (*model.Promotion, error) {
	if input.ID == "" {
		return nil, apperr.Invalid("id is required")
	}
	p, err := uc.repo.FindByID(ctx, input.MerchantID, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("promotion")
	}

	if err := uc.apply(ctx, p, input); err != nil {
		return nil, err
	}
	p.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.afterChange(p.MerchantID, events.PromotionUpdated, p.ID, p)
	return p, nil
}

func (uc *promotionUseCase) GetPromotion(ctx context.Context, merchantID, id string) (*model.Promotion, error) {
	p, err := uc.repo.FindByID(ctx, merchantID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("promotion")
	}
	return p, nil
}

func (uc *promotionUseCase) ListPromotions(ctx context.Context, filters *dto.PromotionFilters) ([]model.Promotion, int, error) {
	if filters.MerchantID == "" {
		return nil, 0, apperr.ErrMissingMerchant
	}
	if !filters.ValidNow {
		return uc.repo.FindAll(ctx, filters)
	}

	active, err := uc.repo.FindActive(ctx, filters.MerchantID)
	if err != nil {
		return nil, 0, err
	}
	today := pricing.Today(uc.now(), uc.opts.Location)
	valid := make([]model.Promotion, 0, len(active))
	for i := range active {
		if pricing.IsPromotionValid(&active[i], filters.ChannelID, filters.BranchID, today) {
			valid = append(valid, active[i])
		}
	}
	return paginate(valid, filters.Page, filters.PageSize), len(valid), nil
}

func (uc *promotionUseCase) SetPromotionActive(ctx context.Context, merchantID, id string, active bool) (*model.Promotion, error) {
	p, err := uc.repo.FindByID(ctx, merchantID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("promotion")
	}
	if p.IsActive == active {
		return p, nil
	}

	p.IsActive = active
	p.UpdatedAt = uc.now()
	if err := uc.repo.SetActive(ctx, merchantID, id, active, p.UpdatedAt); err != nil {
		return nil, err
	}
	uc.afterChange(merchantID, events.PromotionToggled, p.ID, map[string]any{"is_active": active})
	return p, nil
}

// DeletePromotion removes an inactive promotion after re-authorization.
func (uc *promotionUseCase) DeletePromotion(ctx context.Context, input *dto.DeletePromotionInput) error {
	if err := validation.Struct(input); err != nil {
		return apperr.Invalid("%v", err)
	}
	ok, err := uc.pins.Verify(ctx, input.MerchantID, input.UserID, input.PIN)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrPINRejected
	}

	p, err := uc.repo.FindByID(ctx, input.MerchantID, input.ID)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFound("promotion")
	}
	if p.IsActive {
		return apperr.ErrPromotionActive
	}

	if err := uc.repo.Delete(ctx, input.MerchantID, input.ID); err != nil {
		return err
	}
	uc.afterChange(input.MerchantID, events.PromotionDeleted, p.ID, map[string]any{"name": p.Name})
	return nil
}

// apply validates input and copies it onto p.
func (uc *promotionUseCase) apply(ctx context.Context, p *model.Promotion, input *dto.PromotionInput) error {
	if err := validation.Struct(input); err != nil {
		return apperr.Invalid("%v", err)
	}
	if !input.Type.Valid() {
		return apperr.Invalid("unknown promotion type %q", input.Type)
	}

	start, err := model.ParseDate(input.StartDate)
	if err != nil {
		return apperr.Invalid("start_date must be YYYY-MM-DD")
	}
	var end *model.Date
	if input.EndDate != "" {
		d, err := model.ParseDate(input.EndDate)
		if err != nil {
			return apperr.Invalid("end_date must be YYYY-MM-DD")
		}
		if d.Before(start) {
			return apperr.Invalid("end_date is before start_date")
		}
		end = &d
	}

	cfg := input.Config
	switch input.Type {
	case model.PromotionGlobalDiscount, model.PromotionProductDiscount, model.PromotionCategoryDiscount:
		if !cfg.DiscountType.Valid() {
			return apperr.Invalid("config.discount_type must be percentage or fixed_amount")
		}
	case model.PromotionBuyXGetY:
		if cfg.BuyQty < 1 || cfg.GetQty < 1 {
			return apperr.Invalid("config.buy_qty and config.get_qty must be at least 1")
		}
	case model.PromotionCombo:
		if len(cfg.ComboProductIDs) < 2 {
			return apperr.Invalid("config.combo_product_ids needs at least two products")
		}
		if cfg.ComboPrice == nil || cfg.ComboPrice.IsNegative() {
			return apperr.Invalid("config.combo_price must be >= 0")
		}
	}

	targets := clean(input.TargetProductIDs)
	categories := clean(input.TargetCategories)
	if input.Type == model.PromotionProductDiscount && len(targets) == 0 {
		return apperr.Invalid("product_discount needs target_product_ids")
	}
	if input.Type == model.PromotionCategoryDiscount {
		if len(categories) == 0 {
			return apperr.Invalid("category_discount needs target_categories")
		}
		unknown, err := uc.categories.UnknownTargets(ctx, input.MerchantID, categories)
		if err != nil {
			return err
		}
		if len(unknown) > 0 {
			return apperr.Invalid("unknown categories: %s", strings.Join(unknown, ", "))
		}
	}

	rule := (&model.Promotion{Type: input.Type, Value: input.Value, Config: cfg}).Rule()
	if d, ok := rule.(model.DiscountRule); ok && d.Kind == model.DiscountPercentage && d.Value.GreaterThan(hundred) {
		uc.logger.Warn("percentage above 100, prices will clamp at zero",
			zap.String("merchant_id", input.MerchantID),
			zap.String("value", d.Value.String()),
		)
	}

	p.Name = strings.TrimSpace(input.Name)
	p.Type = input.Type
	p.Value = input.Value
	p.Config = cfg
	p.StartDate = start
	p.EndDate = end
	p.ScopeChannels = pq.StringArray(clean(input.ScopeChannels))
	p.ScopeBranches = pq.StringArray(clean(input.ScopeBranches))
	p.Priority = input.Priority
	p.IsActive = input.IsActive
	p.TargetProductIDs = pq.StringArray(targets)
	p.TargetCategories = pq.StringArray(categories)
	return nil
}

func (uc *promotionUseCase) afterChange(merchantID, eventType, entityID string, payload any) {
	if err := catalog.InvalidatePricedCache(context.Background(), uc.cache, merchantID); err != nil {
		uc.logger.Warn("failed to invalidate priced catalog cache", zap.Error(err))
	}
	go func() {
		_ = uc.publisher.Publish(context.Background(), eventType, merchantID, entityID, payload)
	}()
}

// clean trims entries and drops blanks and duplicates, keeping first occurrences.
func clean(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func paginate(items []model.Promotion, page, size int) []model.Promotion {
	if size <= 0 {
		return items
	}
	start := (max(page, 1) - 1) * size
	if start >= len(items) {
		return []model.Promotion{}
	}
	return items[start:min(start+size, len(items))]
}
