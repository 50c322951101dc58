package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	thousandsSeparator = ","
	decimalSeparator   = ","
	currencySign       = "$"
)

// FormatPrice renders price as pesos with two decimals and ',' both between
// thousands and before the decimals, e.g. $1,234,50.
func FormatPrice(price decimal.Decimal) string {
	fixed := price.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return currencySign + sign + groupThousands(intPart) + decimalSeparator + fracPart
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(thousandsSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
