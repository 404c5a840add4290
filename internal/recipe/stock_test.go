package recipe

import (
	"math"
	"testing"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/stretchr/testify/assert"
)

func line(ingredient string, qty float64) model.RecipeLine {
	return model.RecipeLine{ProductID: "bread", IngredientID: ingredient, QuantityRequired: qty}
}

func TestTheoreticalStock(t *testing.T) {
	tests := []struct {
		name  string
		lines []model.RecipeLine
		stock map[string]float64
		want  int
	}{
		{"single ingredient floors", []model.RecipeLine{line("flour", 200)}, map[string]float64{"flour": 950}, 4},
		{"missing ingredient", []model.RecipeLine{line("flour", 200), line("salt", 5)}, map[string]float64{"flour": 950}, 0},
		{"zero stock", []model.RecipeLine{line("flour", 200)}, map[string]float64{"flour": 0}, 0},
		{"negative stock", []model.RecipeLine{line("flour", 200)}, map[string]float64{"flour": -10}, 0},
		{"empty recipe", nil, map[string]float64{"flour": 950}, 0},
		{"scarcest ingredient wins", []model.RecipeLine{line("flour", 200), line("butter", 50)}, map[string]float64{"flour": 2000, "butter": 120}, 2},
		{"not enough for one", []model.RecipeLine{line("flour", 200)}, map[string]float64{"flour": 199}, 0},
		{"zero quantity line ignored", []model.RecipeLine{line("flour", 200), line("water", 0)}, map[string]float64{"flour": 400}, 2},
		{"only zero quantity lines", []model.RecipeLine{line("water", 0)}, map[string]float64{"water": 10}, 0},
		{"huge ratio clamps", []model.RecipeLine{line("flour", 0.001)}, map[string]float64{"flour": 1e300}, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TheoreticalStock(tt.lines, tt.stock))
		})
	}
}

func TestRequirements(t *testing.T) {
	lines := []model.RecipeLine{line("flour", 200), line("salt", 5), line("flour", 20)}
	got := Requirements(lines, 3)
	assert.Equal(t, map[string]float64{"flour": 660, "salt": 15}, got)
}
