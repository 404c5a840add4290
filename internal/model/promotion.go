package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"slices"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type PromotionType string

const (
	PromotionGlobalDiscount   PromotionType = "global_discount"
	PromotionProductDiscount  PromotionType = "product_discount"
	PromotionCategoryDiscount PromotionType = "category_discount"
	PromotionBuyXGetY         PromotionType = "buy_x_get_y"
	PromotionCombo            PromotionType = "combo"

	// Legacy rows carry the discount kind as the type itself.
	PromotionPercentage  PromotionType = "percentage"
	PromotionFixedAmount PromotionType = "fixed_amount"
)

func (t PromotionType) Valid() bool {
	switch t {
	case PromotionGlobalDiscount, PromotionProductDiscount, PromotionCategoryDiscount,
		PromotionBuyXGetY, PromotionCombo, PromotionPercentage, PromotionFixedAmount:
		return true
	}
	return false
}

type DiscountKind string

const (
	DiscountPercentage  DiscountKind = "percentage"
	DiscountFixedAmount DiscountKind = "fixed_amount"
)

func (k DiscountKind) Valid() bool {
	return k == DiscountPercentage || k == DiscountFixedAmount
}

// PromotionConfig is the JSONB bag persisted with a promotion. Consumers should not read it
// directly; Promotion.Rule turns it into a typed variant.
type PromotionConfig struct {
	DiscountType    DiscountKind     `json:"discount_type,omitempty"`
	BuyQty          int              `json:"buy_qty,omitempty"`
	GetQty          int              `json:"get_qty,omitempty"`
	ComboPrice      *decimal.Decimal `json:"combo_price,omitempty"`
	ComboProductIDs []string         `json:"combo_product_ids,omitempty"`
}

func (c PromotionConfig) Value() (driver.Value, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *PromotionConfig) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	case nil:
		*c = PromotionConfig{}
		return nil
	default:
		return errors.New("promotion config: unsupported source type")
	}
	if len(b) == 0 {
		*c = PromotionConfig{}
		return nil
	}
	return json.Unmarshal(b, c)
}

type Promotion struct {
	BaseModel
	MerchantID       string          `db:"merchant_id" json:"merchant_id"`
	Name             string          `db:"name" json:"name"`
	Type             PromotionType   `db:"type" json:"type"`
	Value            decimal.Decimal `db:"value" json:"value"`
	Config           PromotionConfig `db:"config" json:"config"`
	StartDate        Date            `db:"start_date" json:"start_date"`
	EndDate          *Date           `db:"end_date" json:"end_date"` // nil = open-ended
	ScopeChannels    pq.StringArray  `db:"scope_channels" json:"scope_channels"`
	ScopeBranches    pq.StringArray  `db:"scope_branches" json:"scope_branches"`
	Priority         int             `db:"priority" json:"priority"`
	IsActive         bool            `db:"is_active" json:"is_active"`
	TargetProductIDs pq.StringArray  `db:"target_product_ids" json:"target_product_ids"`
	TargetCategories pq.StringArray  `db:"target_categories" json:"target_categories"`
}

// PromotionRule is the typed form of a promotion's effect. Implementations: DiscountRule,
// BuyXGetYRule and ComboRule.
type PromotionRule interface {
	isPromotionRule()
}

type DiscountRule struct {
	Kind  DiscountKind
	Value decimal.Decimal
}

type BuyXGetYRule struct {
	BuyQty int
	GetQty int
}

type ComboRule struct {
	ProductIDs []string
	Price      *decimal.Decimal
}

func (DiscountRule) isPromotionRule() {}
func (BuyXGetYRule) isPromotionRule() {}
func (ComboRule) isPromotionRule()    {}

// Rule decodes the promotion into its typed variant. It returns nil when the promotion is
// malformed, e.g. a discount type without a usable discount kind.
func (p *Promotion) Rule() PromotionRule {
	switch p.Type {
	case PromotionPercentage:
		return DiscountRule{Kind: DiscountPercentage, Value: p.Value}
	case PromotionFixedAmount:
		return DiscountRule{Kind: DiscountFixedAmount, Value: p.Value}
	case PromotionGlobalDiscount, PromotionProductDiscount, PromotionCategoryDiscount:
		if !p.Config.DiscountType.Valid() {
			return nil
		}
		return DiscountRule{Kind: p.Config.DiscountType, Value: p.Value}
	case PromotionBuyXGetY:
		return BuyXGetYRule{BuyQty: p.Config.BuyQty, GetQty: p.Config.GetQty}
	case PromotionCombo:
		return ComboRule{ProductIDs: slices.Clone(p.Config.ComboProductIDs), Price: p.Config.ComboPrice}
	default:
		return nil
	}
}
