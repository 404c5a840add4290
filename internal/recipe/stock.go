// Package recipe derives how many units of a product can be made from ingredient stock.
package recipe

import (
	"math"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
)

// TheoreticalStock returns floor(min(stock[ingredient] / quantity)) over the recipe lines.
// An empty recipe, or one with a missing or depleted ingredient, yields 0. Lines that require
// no quantity do not limit the result.
func TheoreticalStock(lines []model.RecipeLine, stock map[string]float64) int {
	limit := math.Inf(1)
	for _, line := range lines {
		if line.QuantityRequired <= 0 {
			continue
		}
		available, ok := stock[line.IngredientID]
		if !ok || available <= 0 {
			return 0
		}
		limit = math.Min(limit, available/line.QuantityRequired)
	}
	if math.IsInf(limit, 1) {
		return 0
	}
	if limit >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(math.Floor(limit))
}

// Requirements scales recipe lines by units sold, summed per ingredient.
func Requirements(lines []model.RecipeLine, units float64) map[string]float64 {
	out := make(map[string]float64, len(lines))
	for _, line := range lines {
		if line.QuantityRequired <= 0 {
			continue
		}
		out[line.IngredientID] += line.QuantityRequired * units
	}
	return out
}
