package fixeddecimal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type precisionKind int8

const (
	floatingKind precisionKind = iota
	integerKind
	magnitudeKind
	significantKind
)

// DoublePrecision specifies how [NewFromFloat64] treats the digits of
// a float64.
// Use [Floating], [Integer], [Magnitude] or [SignificantDigits].
type DoublePrecision struct {
	kind      precisionKind
	magnitude int16
	digits    uint8
}

var (
	// Floating keeps the shortest decimal representation that converts back
	// to the same float64.
	Floating = DoublePrecision{kind: floatingKind}
	// Integer requires the float64 to have no fractional digits.
	Integer = DoublePrecision{kind: integerKind}
)

// Magnitude rounds the float64 at the given position using half-to-even rounding.
func Magnitude(position int16) DoublePrecision {
	return DoublePrecision{kind: magnitudeKind, magnitude: position}
}

// SignificantDigits rounds the float64 to n significant digits using
// half-to-even rounding.
func SignificantDigits(n uint8) DoublePrecision {
	return DoublePrecision{kind: significantKind, digits: n}
}

func (p DoublePrecision) String() string {
	switch p.kind {
	case integerKind:
		return "Integer"
	case magnitudeKind:
		return fmt.Sprintf("Magnitude(%v)", p.magnitude)
	case significantKind:
		return fmt.Sprintf("SignificantDigits(%v)", p.digits)
	}
	return "Floating"
}

// NewFromFloat64 converts a float to a decimal.
// The float is first converted to its shortest round-trip decimal
// representation, which is then adjusted according to the precision.
// Negative zero is converted to negative zero.
//
// NewFromFloat64 returns an error wrapping [ErrLimit] if:
//   - the float is NaN or infinite;
//   - the precision is [Integer] and the float has fractional digits;
//   - the precision is [SignificantDigits] with zero digits.
func NewFromFloat64(f float64, p DoublePrecision) (FixedDecimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return FixedDecimal{}, fmt.Errorf("converting %v: %w", f, ErrLimit)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	s = strings.Replace(s, "e+", "e", 1)
	d, err := Parse(s)
	if err != nil {
		return FixedDecimal{}, fmt.Errorf("converting %v: %w", f, err)
	}

	switch p.kind {
	case integerKind:
		if d.NonzeroMagnitudeRight() < 0 {
			return FixedDecimal{}, fmt.Errorf("converting %v with %v precision: fractional digits: %w", f, p, ErrLimit)
		}
	case magnitudeKind:
		err = d.HalfEven(p.magnitude)
	case significantKind:
		if p.digits == 0 {
			return FixedDecimal{}, fmt.Errorf("converting %v with %v precision: %w", f, p, ErrLimit)
		}
		position := d.magnitude - int16(p.digits) + 1
		magnitude := d.magnitude
		err = d.HalfEven(position)
		if d.magnitude > magnitude {
			// Rounding added a digit on the left, drop one on the right.
			d.lowerMagnitude = min(0, position+1)
		}
	}
	if err != nil {
		return FixedDecimal{}, fmt.Errorf("converting %v with %v precision: %w", f, p, err)
	}
	return d, nil
}
