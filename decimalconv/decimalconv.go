// Package decimalconv converts fixed decimals to and from the decimal types
// of other libraries.
//
// Conversions keep the sign and the number of visible fraction digits
// wherever the target type can represent them.
// Integer padding and negative zero are dropped by targets that have no
// notion of them.
package decimalconv

import (
	"fmt"
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/govalues/fixeddecimal"
	govalues "github.com/govalues/decimal"
	shopspring "github.com/shopspring/decimal"
)

// FromShopspring converts a [shopspring.Decimal] to a fixed decimal.
// The exponent of d becomes the lower visible magnitude when it is negative.
func FromShopspring(d shopspring.Decimal) (fixeddecimal.FixedDecimal, error) {
	exp := d.Exponent()
	if exp < math.MinInt16 || exp > math.MaxInt16 {
		return fixeddecimal.FixedDecimal{}, fmt.Errorf("converting %v: exponent %v: %w", d, exp, fixeddecimal.ErrLimit)
	}
	f, err := fixeddecimal.FromBigInt(d.Coefficient())
	if err != nil {
		return fixeddecimal.FixedDecimal{}, fmt.Errorf("converting %v: %w", d, err)
	}
	if err = f.MultiplyPow10(int16(exp)); err != nil {
		return fixeddecimal.FixedDecimal{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return f, nil
}

// ToShopspring converts a fixed decimal to a [shopspring.Decimal].
func ToShopspring(f fixeddecimal.FixedDecimal) shopspring.Decimal {
	_, neg, coef, exp := f.Decompose(nil)
	value := new(big.Int).SetBytes(coef)
	if neg {
		value.Neg(value)
	}
	return shopspring.NewFromBigInt(value, exp)
}

// FromGovalues converts a [govalues.Decimal] to a fixed decimal.
// The scale of d becomes the number of visible fraction digits.
func FromGovalues(d govalues.Decimal) (fixeddecimal.FixedDecimal, error) {
	f, err := fixeddecimal.Parse(d.String())
	if err != nil {
		return fixeddecimal.FixedDecimal{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return f, nil
}

// ToGovalues converts a fixed decimal to a [govalues.Decimal].
// Fraction digits beyond the maximum scale of govalues.Decimal are rounded.
// ToGovalues returns an error if the integer part has too many digits.
func ToGovalues(f fixeddecimal.FixedDecimal) (govalues.Decimal, error) {
	d, err := govalues.Parse(f.StrippedLeft().String())
	if err != nil {
		return govalues.Decimal{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return d, nil
}

// FromAPD converts an [apd.Decimal] to a fixed decimal.
// Infinite and NaN values are rejected with an error wrapping
// [fixeddecimal.ErrLimit].
func FromAPD(d *apd.Decimal) (fixeddecimal.FixedDecimal, error) {
	var f fixeddecimal.FixedDecimal
	if err := f.Compose(d.Decompose(nil)); err != nil {
		return fixeddecimal.FixedDecimal{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return f, nil
}

// ToAPD converts a fixed decimal to an [apd.Decimal].
// Negative zero is preserved.
func ToAPD(f fixeddecimal.FixedDecimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	if err := d.Compose(f.Decompose(nil)); err != nil {
		return nil, fmt.Errorf("converting %v: %w", f, err)
	}
	return d, nil
}
