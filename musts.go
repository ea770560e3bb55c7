package fixeddecimal

import (
	"fmt"
	"math/big"
)

// MustMultipliedPow10 is like [FixedDecimal.MultipliedPow10] but panics if
// the magnitude range is exceeded.
func (d FixedDecimal) MustMultipliedPow10(delta int16) FixedDecimal {
	e, err := d.MultipliedPow10(delta)
	if err != nil {
		panic(fmt.Sprintf("%q.MustMultipliedPow10(%v) failed: %v", d, delta, err))
	}
	return e
}

// MustNewFromFloat64 is like [NewFromFloat64] but panics if the float
// cannot be converted.
func MustNewFromFloat64(f float64, p DoublePrecision) FixedDecimal {
	d, err := NewFromFloat64(f, p)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromFloat64(%v, %v) failed: %v", f, p, err))
	}
	return d
}

// MustFromBigInt is like [FromBigInt] but panics if the integer has too
// many digits.
func MustFromBigInt(x *big.Int) FixedDecimal {
	d, err := FromBigInt(x)
	if err != nil {
		panic(fmt.Sprintf("MustFromBigInt(%v) failed: %v", x, err))
	}
	return d
}
