package utils

import (
	"github.com/shopspring/decimal"
)

// ledgerPrecision is the display precision for all ledger amounts. The books
// are kept in a single currency with two decimal places.
const ledgerPrecision = 2

// FormatAmount formats a ledger amount for display.
// Example: 12.3456 returns "12.35".
func FormatAmount(amount decimal.Decimal) string {
	return amount.Round(ledgerPrecision).StringFixed(ledgerPrecision)
}
