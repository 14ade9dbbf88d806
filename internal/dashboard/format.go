package dashboard

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var cents = decimal.NewFromInt(100)

// formatUSD renders v as "$1,234.56".
func formatUSD(v decimal.Decimal) string {
	return money.New(v.Mul(cents).Round(0).IntPart(), money.USD).Display()
}

// formatPrice uses four decimals for sub-dollar prices.
func formatPrice(p float64) string {
	if p > 1 {
		return formatUSD(decimal.NewFromFloat(p))
	}
	return fmt.Sprintf("$%.4f", p)
}

func formatPct(v decimal.Decimal) string {
	return fmt.Sprintf("%+.2f%%", v.InexactFloat64())
}
