package wac

import (
	"testing"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestCompute_UnitTable(t *testing.T) {
	tests := []struct {
		unit    string
		content string
		usage   model.UsageUnit
		factor  string
	}{
		{"kg", "50", model.UsageUnitGram, "50000"},
		{"lb", "2", model.UsageUnitGram, "907.18"},
		{"g", "500", model.UsageUnitGram, "500"},
		{"l", "1.5", model.UsageUnitMilliliter, "1500"},
		{"ml", "750", model.UsageUnitMilliliter, "750"},
		{"gal", "5", model.UsageUnitMilliliter, "18927.05"},
		{"fl oz", "12", model.UsageUnitMilliliter, "354.88"},
		{"caja", "24", model.UsageUnitUnit, "24"},
		{"", "6", model.UsageUnitUnit, "6"},
		{"KG", "1", model.UsageUnitGram, "1000"},
	}
	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			conv := Compute("Pack", dec(tt.content), tt.unit, nil)
			assert.Equal(t, tt.usage, conv.UsageUnit)
			assert.Truef(t, dec(tt.factor).Equal(conv.ConversionFactor), "factor: want %s, got %s", tt.factor, conv.ConversionFactor)
			assert.Nil(t, conv.UnitCost)
		})
	}
}

func TestCompute_Saco(t *testing.T) {
	conv := Compute("Saco", dec("50"), "kg", nil)

	assert.Equal(t, "Saco 50kg", conv.BuyingUnit)
	assert.Equal(t, model.UsageUnitGram, conv.UsageUnit)
	assert.Equal(t, "50000", conv.ConversionFactor.String())
}

func TestCompute_Bidon(t *testing.T) {
	conv := Compute("Bidón", dec("5"), "gal", nil)
	assert.Equal(t, "18927.05", conv.ConversionFactor.String())
	assert.Equal(t, model.UsageUnitMilliliter, conv.UsageUnit)
}

func TestCompute_UnitCost(t *testing.T) {
	conv := Compute("Saco", dec("50"), "kg", decPtr("100000"))
	require.NotNil(t, conv.UnitCost)
	assert.True(t, dec("2").Equal(*conv.UnitCost))

	conv = Compute("Bidón", dec("5"), "gal", decPtr("90000"))
	require.NotNil(t, conv.UnitCost)
	assert.Equal(t, "4.76", conv.UnitCost.String())
}

func TestCompute_ZeroContentGuardsDivision(t *testing.T) {
	conv := Compute("Saco", decimal.Zero, "kg", decPtr("100000"))
	assert.True(t, conv.ConversionFactor.IsZero())
	assert.Nil(t, conv.UnitCost)
}

func TestCompute_NonPositiveCostKeepsStoredCost(t *testing.T) {
	assert.Nil(t, Compute("Saco", dec("50"), "kg", decPtr("0")).UnitCost)
	assert.Nil(t, Compute("Saco", dec("50"), "kg", decPtr("-5")).UnitCost)
}

func TestApply_PartialUpdate(t *testing.T) {
	item := &model.InventoryItem{UnitCost: dec("3.10")}
	p := Presentation{Name: "Saco", Content: dec("25"), Unit: "kg"}

	Apply(item, p, ComputePresentation(p, nil))

	assert.Equal(t, "Saco 25kg", item.BuyingUnit)
	assert.Equal(t, model.UsageUnitGram, item.UsageUnit)
	assert.Equal(t, "25000", item.ConversionFactor.String())
	assert.Equal(t, "3.1", item.UnitCost.String(), "cost is retained without a package cost")

	Apply(item, p, ComputePresentation(p, decPtr("50000")))
	assert.Equal(t, "2", item.UnitCost.String())
}

func TestParseBuyingUnit(t *testing.T) {
	tests := []struct {
		in   string
		want Presentation
	}{
		{"Saco 50kg", Presentation{"Saco", dec("50"), "kg"}},
		{"Bidón 5gal", Presentation{"Bidón", dec("5"), "gal"}},
		{"Botella grande 12fl oz", Presentation{"Botella grande", dec("12"), "fl oz"}},
		{"Caja 1.5 l", Presentation{"Caja", dec("1.5"), "l"}},
		{"bolsa grande", Presentation{"Manual", dec("1"), "unidad"}},
		{"", Presentation{"Manual", dec("1"), "unidad"}},
		{"Saco 50", Presentation{"Manual", dec("1"), "unidad"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseBuyingUnit(tt.in)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.True(t, tt.want.Content.Equal(got.Content), "content: want %s, got %s", tt.want.Content, got.Content)
			assert.Equal(t, tt.want.Unit, got.Unit)
		})
	}
}

func TestParseBuyingUnit_RoundTrip(t *testing.T) {
	conv := Compute("Saco", dec("50"), "kg", nil)
	p := ParseBuyingUnit(conv.BuyingUnit)
	assert.Equal(t, "Saco", p.Name)
	assert.Equal(t, "50", p.Content.String())
	assert.Equal(t, "kg", p.Unit)
}

func TestPresentationOf_PrefersStoredFields(t *testing.T) {
	name, unit, content := "Garrafa", "l", dec("20")
	item := &model.InventoryItem{
		BuyingUnit:          "texto libre",
		PresentationName:    &name,
		PresentationContent: &content,
		PresentationUnit:    &unit,
	}
	p := PresentationOf(item)
	assert.Equal(t, "Garrafa", p.Name)
	assert.Equal(t, "l", p.Unit)

	legacy := &model.InventoryItem{BuyingUnit: "Saco 50kg"}
	assert.Equal(t, "Saco", PresentationOf(legacy).Name)
}
