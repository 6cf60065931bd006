package services

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const DefaultCurrency = "USD"

var currencySymbols = map[string]string{
	"USD": "$",
	"GBP": "£",
	"EUR": "€",
	"CAD": "C$",
	"AUD": "A$",
	"JPY": "¥",
}

func NormalizeCurrency(code string) (string, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", newValidationError("currency", "invalid currency code")
	}
	return unit.String(), nil
}

func currencyScale(code string) int32 {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}

func FormatMoney(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(code)
	scale := currencyScale(code)
	value := amount.Round(scale)
	sign := ""
	if value.IsNegative() {
		sign = "-"
		value = value.Abs()
	}
	digits := groupThousands(value.StringFixed(scale))
	if symbol, ok := currencySymbols[code]; ok {
		return sign + symbol + digits
	}
	return sign + code + " " + digits
}

func groupThousands(fixed string) string {
	whole, fraction, hasFraction := strings.Cut(fixed, ".")
	var builder strings.Builder
	for index, digit := range whole {
		if index > 0 && (len(whole)-index)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	if hasFraction {
		builder.WriteByte('.')
		builder.WriteString(fraction)
	}
	return builder.String()
}
