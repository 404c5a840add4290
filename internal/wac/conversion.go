// Package wac converts purchase presentations into usage units and keeps per-usage-unit costs.
package wac

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/shopspring/decimal"
)

type unitRule struct {
	usage      model.UsageUnit
	multiplier decimal.Decimal
}

var unitTable = map[string]unitRule{
	"kg":    {model.UsageUnitGram, decimal.NewFromInt(1000)},
	"lb":    {model.UsageUnitGram, decimal.RequireFromString("453.59")},
	"g":     {model.UsageUnitGram, decimal.NewFromInt(1)},
	"l":     {model.UsageUnitMilliliter, decimal.NewFromInt(1000)},
	"ml":    {model.UsageUnitMilliliter, decimal.NewFromInt(1)},
	"gal":   {model.UsageUnitMilliliter, decimal.RequireFromString("3785.41")},
	"fl oz": {model.UsageUnitMilliliter, decimal.RequireFromString("29.5735")},
}

var discrete = unitRule{model.UsageUnitUnit, decimal.NewFromInt(1)}

// Presentation describes how an ingredient is bought, e.g. {Saco, 50, kg}.
type Presentation struct {
	Name    string          `json:"name"`
	Content decimal.Decimal `json:"content"`
	Unit    string          `json:"unit"`
}

type Conversion struct {
	BuyingUnit       string           `json:"buying_unit"`
	ConversionFactor decimal.Decimal  `json:"conversion_factor"`
	UsageUnit        model.UsageUnit  `json:"usage_unit"`
	UnitCost         *decimal.Decimal `json:"unit_cost,omitempty"` // nil: keep the stored cost
}

// UsageUnitFor maps a purchase unit to its usage unit and multiplier. Unknown units, including
// the empty string, count as discrete units.
func UsageUnitFor(unit string) (model.UsageUnit, decimal.Decimal) {
	rule, ok := unitTable[normalizeUnit(unit)]
	if !ok {
		rule = discrete
	}
	return rule.usage, rule.multiplier
}

// Compute converts a presentation. A non-positive content yields a zero factor. UnitCost is
// only derived when packageCost and the factor are both positive.
func Compute(presentationName string, content decimal.Decimal, unit string, packageCost *decimal.Decimal) Conversion {
	usage, multiplier := UsageUnitFor(unit)

	factor := decimal.Zero
	if content.IsPositive() {
		factor = content.Mul(multiplier).Round(2)
	}

	conv := Conversion{
		BuyingUnit:       fmt.Sprintf("%s %s%s", presentationName, content.String(), unit),
		ConversionFactor: factor,
		UsageUnit:        usage,
	}

	if packageCost != nil && packageCost.IsPositive() && factor.IsPositive() {
		cost := packageCost.Div(factor).Round(2)
		conv.UnitCost = &cost
	}
	return conv
}

func ComputePresentation(p Presentation, packageCost *decimal.Decimal) Conversion {
	return Compute(p.Name, p.Content, p.Unit, packageCost)
}

// Apply writes conv and its source presentation onto item. The stored unit cost is kept
// when conv carries none.
func Apply(item *model.InventoryItem, p Presentation, conv Conversion) {
	name, content, unit := p.Name, p.Content, p.Unit
	item.PresentationName = &name
	item.PresentationContent = &content
	item.PresentationUnit = &unit
	item.BuyingUnit = conv.BuyingUnit
	item.UsageUnit = conv.UsageUnit
	item.ConversionFactor = conv.ConversionFactor
	if conv.UnitCost != nil {
		item.UnitCost = *conv.UnitCost
	}
}

var buyingUnitPattern = regexp.MustCompile(`^(.+?)\s+(\d+(?:\.\d+)?)\s*([A-Za-z][A-Za-z ]*)$`)

// ParseBuyingUnit recovers a presentation from a "<name> <number><unit>" label. Labels of any
// other shape parse as {Manual, 1, unidad}. Names containing digits may split incorrectly.
func ParseBuyingUnit(s string) Presentation {
	m := buyingUnitPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return manualPresentation()
	}
	content, err := decimal.NewFromString(m[2])
	if err != nil {
		return manualPresentation()
	}
	return Presentation{Name: m[1], Content: content, Unit: strings.TrimSpace(m[3])}
}

// PresentationOf returns the stored presentation of item, parsing the display label only for
// rows saved before the structured columns existed.
func PresentationOf(item *model.InventoryItem) Presentation {
	if item.PresentationName != nil && item.PresentationContent != nil && item.PresentationUnit != nil {
		return Presentation{
			Name:    *item.PresentationName,
			Content: *item.PresentationContent,
			Unit:    *item.PresentationUnit,
		}
	}
	return ParseBuyingUnit(item.BuyingUnit)
}

func manualPresentation() Presentation {
	return Presentation{Name: "Manual", Content: decimal.NewFromInt(1), Unit: string(model.UsageUnitUnit)}
}

func normalizeUnit(unit string) string {
	return strings.Join(strings.Fields(strings.ToLower(unit)), " ")
}
