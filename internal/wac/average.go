package wac

import "github.com/shopspring/decimal"

// WeightedAverage blends the cost of received stock into the current per-unit cost:
// (onHand*currentCost + receivedQty*receivedCost) / (onHand + receivedQty), rounded to 2
// places. With no usable current stock or cost the received cost wins; an empty or free
// receipt leaves the current cost alone.
func WeightedAverage(onHand float64, currentCost decimal.Decimal, receivedQty float64, receivedCost decimal.Decimal) decimal.Decimal {
	if receivedQty <= 0 || !receivedCost.IsPositive() {
		return currentCost
	}
	if onHand <= 0 || !currentCost.IsPositive() {
		return receivedCost.Round(2)
	}

	held := decimal.NewFromFloat(onHand)
	received := decimal.NewFromFloat(receivedQty)

	total := held.Mul(currentCost).Add(received.Mul(receivedCost))
	return total.Div(held.Add(received)).Round(2)
}
