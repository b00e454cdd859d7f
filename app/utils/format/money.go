package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// Amount renders a plain two-decimal amount suitable for spreadsheets.
func Amount(d decimal.Decimal) string {
	ac := accounting.Accounting{Symbol: "", Precision: 2, Thousand: "", Decimal: "."}
	return ac.FormatMoneyDecimal(d)
}

// Price renders an amount for people, e.g. "€1,250.00".
func Price(d decimal.Decimal) string {
	ac := accounting.Accounting{Symbol: "€", Precision: 2, Thousand: ",", Decimal: "."}
	return ac.FormatMoneyDecimal(d)
}
