package catalog

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var copPrinter = message.NewPrinter(language.MustParse("es-CO"))

// DisplayPrice formats an amount as Colombian pesos without decimals, e.g. $12.500.
func DisplayPrice(amount decimal.Decimal) string {
	return copPrinter.Sprintf("$%v", number.Decimal(amount.Round(0).IntPart()))
}
