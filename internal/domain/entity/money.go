// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency every price in the catalog is expressed in.
const DefaultCurrency = "KES"

// Money is an amount in integer minor units (cents). Arithmetic stays exact;
// decimal values are only produced for display.
type Money int64

// Cents returns the raw minor-unit amount.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Mul returns the amount for qty units.
func (m Money) Mul(qty int) Money {
	return m * Money(qty)
}

// ApplyBasisPoints returns m scaled by bp/10000, rounded half away from zero.
func (m Money) ApplyBasisPoints(bp int64) Money {
	if bp == 0 {
		return 0
	}

	scaled := decimal.NewFromInt(int64(m)).
		Mul(decimal.NewFromInt(bp)).
		Div(decimal.NewFromInt(10_000)).
		Round(0)

	return Money(scaled.IntPart())
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// Display formats the amount for humans, e.g. "KES 1,234.50".
func (m Money) Display(currency string) string {
	amount := m.Decimal()
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)

	return fmt.Sprintf("%s %s%s%s", currency, sign, humanize.Comma(amount.IntPart()), fixed[len(fixed)-3:])
}

// String formats the amount in the default currency.
func (m Money) String() string {
	return m.Display(DefaultCurrency)
}
