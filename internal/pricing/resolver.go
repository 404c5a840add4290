// Package pricing resolves the effective price of a product for a branch and channel.
//
// Resolution happens in two steps. The most specific price override replaces the base price;
// then, unless that override ignores promotions, the highest-priority promotion valid today
// is applied. At most one promotion applies per product.
package pricing

import (
	"cmp"
	"slices"
	"time"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/shopspring/decimal"
)

type CategoryMatch int

const (
	MatchCategoryID CategoryMatch = iota
	MatchCategoryName
	MatchCategoryIDOrName
)

// ParseCategoryMatch maps the configured value to a CategoryMatch, defaulting to id.
func ParseCategoryMatch(s string) CategoryMatch {
	switch s {
	case "name":
		return MatchCategoryName
	case "id_or_name":
		return MatchCategoryIDOrName
	default:
		return MatchCategoryID
	}
}

type Context struct {
	BranchID  string
	ChannelID string
	Now       time.Time
	// Location decides which calendar day Now falls on. Nil means time.Local.
	Location      *time.Location
	CategoryMatch CategoryMatch
}

// Options are the resolution settings shared by every request of a service.
type Options struct {
	Location      *time.Location
	CategoryMatch CategoryMatch
}

func (o Options) Context(branchID, channelID string, now time.Time) Context {
	return Context{
		BranchID:      branchID,
		ChannelID:     channelID,
		Now:           now,
		Location:      o.Location,
		CategoryMatch: o.CategoryMatch,
	}
}

type Result struct {
	Price            decimal.Decimal
	BasePrice        decimal.Decimal
	AppliedPromotion *model.Promotion
	Override         *model.PriceOverride
	// Sellable is false when the matched override is inactive.
	Sellable bool
}

var hundred = decimal.NewFromInt(100)

func Resolve(p *model.Product, overrides []model.PriceOverride, promotions []model.Promotion, ctx Context) Result {
	res := Result{
		Price:     p.BasePrice,
		BasePrice: p.BasePrice,
		Sellable:  true,
	}

	ov := MatchOverride(p.ID, overrides, ctx.BranchID, ctx.ChannelID)
	if ov != nil {
		res.Override = ov
		res.Price = ov.Price
		res.Sellable = ov.IsActive
		if ov.IgnorePromotions {
			return res
		}
	}

	today := Today(ctx.Now, ctx.Location)
	candidates := rankPromotions(p, promotions, ctx, today)
	if len(candidates) == 0 {
		return res
	}
	// Only the top-ranked promotion is considered. A malformed one applies no discount.
	rule := candidates[0].Rule()
	if rule == nil {
		return res
	}
	res.Price = ApplyRule(res.Price, rule)
	res.AppliedPromotion = candidates[0]
	return res
}

// MatchOverride picks the override for productID in specificity order: exact branch and
// channel, channel-wide, branch-wide. Duplicates at the same level resolve to the first one.
func MatchOverride(productID string, overrides []model.PriceOverride, branchID, channelID string) *model.PriceOverride {
	var byChannel, byBranch *model.PriceOverride
	for i := range overrides {
		o := &overrides[i]
		if o.ProductID != productID {
			continue
		}
		switch {
		case o.BranchID != nil && o.ChannelID != nil:
			if *o.BranchID == branchID && *o.ChannelID == channelID {
				return o
			}
		case o.BranchID == nil && o.ChannelID != nil:
			if byChannel == nil && *o.ChannelID == channelID {
				byChannel = o
			}
		case o.BranchID != nil && o.ChannelID == nil:
			if byBranch == nil && *o.BranchID == branchID {
				byBranch = o
			}
		}
	}
	if byChannel != nil {
		return byChannel
	}
	return byBranch
}

// Today returns the calendar day of now in loc.
func Today(now time.Time, loc *time.Location) model.Date {
	if loc == nil {
		loc = time.Local
	}
	return model.DateOf(now.In(loc))
}

// IsPromotionValid reports whether promo is active, running on today and scoped to channel
// and branch. Empty scopes are global.
func IsPromotionValid(promo *model.Promotion, channelID, branchID string, today model.Date) bool {
	if !promo.IsActive {
		return false
	}
	if promo.StartDate.After(today) {
		return false
	}
	if promo.EndDate != nil && promo.EndDate.Before(today) {
		return false
	}
	if len(promo.ScopeChannels) > 0 && !slices.Contains(promo.ScopeChannels, channelID) {
		return false
	}
	if len(promo.ScopeBranches) > 0 && !slices.Contains(promo.ScopeBranches, branchID) {
		return false
	}
	return true
}

// Targets reports whether promo applies to product p.
func Targets(promo *model.Promotion, p *model.Product, match CategoryMatch) bool {
	switch promo.Type {
	case model.PromotionProductDiscount:
		return slices.Contains(promo.TargetProductIDs, p.ID)
	case model.PromotionCategoryDiscount:
		for _, key := range CategoryKeys(p, match) {
			if slices.Contains(promo.TargetCategories, string(key)) {
				return true
			}
		}
		return false
	case model.PromotionBuyXGetY, model.PromotionCombo:
		return len(promo.TargetProductIDs) == 0 || slices.Contains(promo.TargetProductIDs, p.ID)
	default:
		return true
	}
}

// CategoryKeys returns the keys a category promotion may list for p under match.
func CategoryKeys(p *model.Product, match CategoryMatch) []model.CategoryKey {
	var keys []model.CategoryKey
	if id := p.CategoryIDValue(); id != "" && match != MatchCategoryName {
		keys = append(keys, model.CategoryKey(id))
	}
	if name := p.CategoryNameValue(); name != "" && match != MatchCategoryID {
		keys = append(keys, model.CategoryKey(name))
	}
	return keys
}

// ApplyRule returns price after rule. Only discount rules change the unit price.
func ApplyRule(price decimal.Decimal, rule model.PromotionRule) decimal.Decimal {
	d, ok := rule.(model.DiscountRule)
	if !ok {
		return price
	}
	return ApplyDiscount(price, d)
}

func ApplyDiscount(price decimal.Decimal, d model.DiscountRule) decimal.Decimal {
	var out decimal.Decimal
	switch d.Kind {
	case model.DiscountPercentage:
		out = price.Mul(decimal.NewFromInt(1).Sub(d.Value.Div(hundred)))
	case model.DiscountFixedAmount:
		out = price.Sub(d.Value)
	default:
		return price
	}
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

func rankPromotions(p *model.Product, promotions []model.Promotion, ctx Context, today model.Date) []*model.Promotion {
	candidates := make([]*model.Promotion, 0, len(promotions))
	for i := range promotions {
		promo := &promotions[i]
		if !IsPromotionValid(promo, ctx.ChannelID, ctx.BranchID, today) {
			continue
		}
		if !Targets(promo, p, ctx.CategoryMatch) {
			continue
		}
		candidates = append(candidates, promo)
	}
	slices.SortStableFunc(candidates, func(a, b *model.Promotion) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	return candidates
}
