package textutil

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ToNumber coerces a raw price-like value to a decimal.
// Everything except digits and '.' is dropped before parsing, so signs,
// thousands separators and currency names disappear. Empty or unparseable
// input yields zero.
func ToNumber(v any) decimal.Decimal {
	digits := keepDigitsAndDots(rawString(v))
	if digits == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders d in its shortest decimal form ("1234.5", "50").
func FormatAmount(d decimal.Decimal) string {
	return d.String()
}

// Digits returns only the decimal digits of s as ASCII. Arabic-Indic and
// Extended Arabic-Indic digits are folded to their ASCII equivalents.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= '\u0660' && r <= '\u0669':
			b.WriteRune('0' + (r - '\u0660'))
		case r >= '\u06F0' && r <= '\u06F9':
			b.WriteRune('0' + (r - '\u06F0'))
		}
	}
	return b.String()
}

func keepDigitsAndDots(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; (c >= '0' && c <= '9') || c == '.' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func rawString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case decimal.Decimal:
		return t.String()
	default:
		return ""
	}
}
