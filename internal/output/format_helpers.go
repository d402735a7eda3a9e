package output

import (
	"github.com/rpgo/tco-parity/internal/domain"
	money "github.com/rpgo/tco-parity/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal with thousands separators and the currency code.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	return money.NewMoneyFromDecimal(amount).Format(currency)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatBreakEven renders the break-even year as "Year N" or "Never".
func FormatBreakEven(b domain.BreakEvenResult) string {
	if !b.Reached {
		return b.String()
	}
	return "Year " + b.String()
}
