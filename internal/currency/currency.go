// Package currency converts between stored minor units (cents) and
// user-facing dollar amounts.
//
// Functions here are PURE:
// - No side effects
// - No DB access
// - Fully deterministic
package currency

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount marks input that does not parse as a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrSubCentPrecision marks amounts with more than two decimal places.
	// Such input cannot be stored exactly in cents and is rejected.
	ErrSubCentPrecision = errors.New("amount has sub-cent precision")
)

var centFactor = decimal.NewFromInt(100)

// ParseAmount parses a raw form value into an exact decimal amount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return amount, nil
}

// ToCents converts a major-unit amount to stored cents. Amounts that do not
// land on a whole cent are rejected rather than silently rounded.
func ToCents(amount decimal.Decimal) (int64, error) {
	cents := amount.Mul(centFactor)
	if !cents.IsInteger() {
		return 0, ErrSubCentPrecision
	}
	return cents.IntPart(), nil
}

// CentsToMajor converts stored cents back to a major-unit number. The result
// feeds editable form fields, so it stays numeric instead of formatted text.
func CentsToMajor(cents int64) float64 {
	major, _ := decimal.New(cents, -2).Float64()
	return major
}

// FormatCents renders stored cents as a display currency string,
// e.g. 150000 -> "$1,500.00".
func FormatCents(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	fixed := decimal.New(cents, -2).StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	b.WriteString(groupThousands(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
