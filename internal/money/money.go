package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid money amount")

var hundred = decimal.NewFromInt(100)

// ParseMajor converts a user-entered major-unit decimal string (like "12.34")
// to minor units (cents) as int64. The fractional part is rounded half away
// from zero, matching round(major * 100). Amounts must be strictly positive.
func ParseMajor(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidAmount
	}

	major, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	cents := major.Mul(hundred).Round(0)
	if !cents.IsPositive() {
		return 0, ErrInvalidAmount
	}
	if !cents.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: too large", ErrInvalidAmount)
	}
	return cents.IntPart(), nil
}

// FormatCents renders cents as a major-unit string, e.g. 1234 -> "12.34".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
