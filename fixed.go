package fixeddecimal

import (
	"errors"
	"fmt"
	"math"
)

// FixedDecimal type is a representation of a decimal number with an explicit
// range of visible digits.
// The zero value is the numeric value of 0, rendered as "0".
// Values of this type are safe to share between goroutines as long as
// none of them calls a mutating (pointer receiver) method.
//
// A fixed decimal is a struct with five parameters:
//
//   - Digits: the significant digits, without leading and trailing zeros.
//   - Magnitude: the power of 10 of the first significant digit.
//   - Upper magnitude: the power of 10 of the leftmost visible digit.
//   - Lower magnitude: the power of 10 of the rightmost visible digit.
//   - Sign: a boolean indicating whether the decimal is negative.
//
// Zeros between the visible bounds and the significant digits are not stored,
// they are implied by the magnitudes.
// For example, "0012.3400" has digits 1234, magnitude 1, upper magnitude 3
// and lower magnitude -4.
//
// Unlike [math/big] numbers, a FixedDecimal supports negative zero.
type FixedDecimal struct {
	digits         []byte // never modified in place, copies may share it
	magnitude      int16  // power of 10 of digits[0], 0 if digits is empty
	upperMagnitude int16  // leftmost visible position, always >= 0
	lowerMagnitude int16  // rightmost visible position, always <= 0
	neg            bool   // indicates whether the decimal is negative
}

const (
	MaxMagnitude = math.MaxInt16 // maximum power of 10 of a visible digit
	MinMagnitude = math.MinInt16 // minimum power of 10 of a visible digit
)

var (
	// ErrSyntax is returned when a string does not represent a decimal.
	ErrSyntax = errors.New("invalid syntax")
	// ErrLimit is returned when a magnitude does not fit into an int16.
	ErrLimit = errors.New("magnitude out of range")
)

// DigitAt returns the digit at the given magnitude.
// Positions outside of the significant digits have the digit 0.
func (d FixedDecimal) DigitAt(magnitude int16) byte {
	if magnitude > d.magnitude {
		return 0 // leading zero
	}
	i := int(d.magnitude) - int(magnitude)
	if i < len(d.digits) {
		return d.digits[i]
	}
	return 0 // trailing zero
}

// digitBelow returns the digit immediately to the right of the position.
func (d FixedDecimal) digitBelow(position int16) byte {
	if position == MinMagnitude {
		return 0
	}
	return d.DigitAt(position - 1)
}

// MagnitudeRange returns the powers of 10 of the rightmost and the leftmost
// visible digits.
func (d FixedDecimal) MagnitudeRange() (lower, upper int16) {
	return d.lowerMagnitude, d.upperMagnitude
}

// NonzeroMagnitudeLeft returns the power of 10 of the leftmost nonzero digit.
// If d is zero, the result is 0.
func (d FixedDecimal) NonzeroMagnitudeLeft() int16 {
	return d.magnitude
}

// NonzeroMagnitudeRight returns the power of 10 of the rightmost nonzero digit.
// If d is zero, the result is 0.
func (d FixedDecimal) NonzeroMagnitudeRight() int16 {
	if d.IsZero() {
		return 0
	}
	return int16(int(d.magnitude) - len(d.digits) + 1)
}

// Prec returns the number of significant digits in d.
func (d FixedDecimal) Prec() int {
	return len(d.digits)
}

// IsZero returns true if d == 0, regardless of its sign.
func (d FixedDecimal) IsZero() bool {
	return len(d.digits) == 0
}

// IsNeg returns true if the sign of d is negative, including negative zero.
func (d FixedDecimal) IsNeg() bool {
	return d.neg
}

// Signum returns the sign of d, distinguishing positive and negative zeros.
func (d FixedDecimal) Signum() Signum {
	switch {
	case d.neg && d.IsZero():
		return NegativeZero
	case d.neg:
		return BelowZero
	case d.IsZero():
		return PositiveZero
	}
	return AboveZero
}

// Equal returns true if d and e have the same digits, the same visible range
// and the same sign.
// Numerically equal decimals with different padding are not equal,
// for example "1.0" and "1.00".
func (d FixedDecimal) Equal(e FixedDecimal) bool {
	if d.magnitude != e.magnitude ||
		d.upperMagnitude != e.upperMagnitude ||
		d.lowerMagnitude != e.lowerMagnitude ||
		d.neg != e.neg ||
		len(d.digits) != len(e.digits) {
		return false
	}
	for i := range d.digits {
		if d.digits[i] != e.digits[i] {
			return false
		}
	}
	return true
}

// MultiplyPow10 multiplies d by 10^delta.
// Positive delta moves the decimal point to the right, negative delta moves
// it to the left.
// The visible range grows on the side the digits move to, and shrinks on
// the other side, but never past the ones place.
//
// MultiplyPow10 returns an error and leaves d unchanged if either visible
// bound would fall outside of [[MinMagnitude], [MaxMagnitude]].
func (d *FixedDecimal) MultiplyPow10(delta int16) error {
	switch {
	case delta > 0:
		upper := int(d.upperMagnitude) + int(delta)
		if upper > MaxMagnitude {
			return fmt.Errorf("multiplying %v by 10^%v: upper magnitude %v: %w", d, delta, upper, ErrLimit)
		}
		d.upperMagnitude = int16(upper)
		d.lowerMagnitude = min(0, d.lowerMagnitude+delta)
	case delta < 0:
		lower := int(d.lowerMagnitude) + int(delta)
		if lower < MinMagnitude {
			return fmt.Errorf("multiplying %v by 10^%v: lower magnitude %v: %w", d, delta, lower, ErrLimit)
		}
		d.lowerMagnitude = int16(lower)
		d.upperMagnitude = max(0, d.upperMagnitude+delta)
	}
	if !d.IsZero() {
		d.magnitude += delta
	}
	return nil
}

// MultipliedPow10 is like [FixedDecimal.MultiplyPow10] but returns the result
// instead of modifying d.
func (d FixedDecimal) MultipliedPow10(delta int16) (FixedDecimal, error) {
	if err := d.MultiplyPow10(delta); err != nil {
		return FixedDecimal{}, err
	}
	return d, nil
}

// Negate flips the sign of d, including when d is zero.
func (d *FixedDecimal) Negate() {
	d.neg = !d.neg
}

// Negated returns d with the opposite sign.
func (d FixedDecimal) Negated() FixedDecimal {
	d.Negate()
	return d
}

// Abs returns d with a positive sign.
func (d FixedDecimal) Abs() FixedDecimal {
	d.neg = false
	return d
}

// StripLeft removes leading zero padding, keeping the ones place.
func (d *FixedDecimal) StripLeft() {
	d.upperMagnitude = max(d.magnitude, 0)
}

// StrippedLeft is like [FixedDecimal.StripLeft] but returns the result.
func (d FixedDecimal) StrippedLeft() FixedDecimal {
	d.StripLeft()
	return d
}

// StripRight removes trailing zero padding after the decimal point.
func (d *FixedDecimal) StripRight() {
	d.lowerMagnitude = min(0, d.NonzeroMagnitudeRight())
}

// StrippedRight is like [FixedDecimal.StripRight] but returns the result.
func (d FixedDecimal) StrippedRight() FixedDecimal {
	d.StripRight()
	return d
}

// PadLeft zero-pads d on the left so that the leftmost visible digit is at
// magnitude position-1.
// If the position is less than or equal to 0, PadLeft does nothing.
// PadLeft removes existing padding if the position is to the right of it,
// but never drops significant digits.
func (d *FixedDecimal) PadLeft(position int16) {
	if position <= 0 {
		return
	}
	d.upperMagnitude = max(position-1, d.magnitude)
}

// PaddedLeft is like [FixedDecimal.PadLeft] but returns the result.
func (d FixedDecimal) PaddedLeft(position int16) FixedDecimal {
	d.PadLeft(position)
	return d
}

// PadRight zero-pads d on the right so that the rightmost visible digit is at
// the given magnitude.
// If the position is greater than or equal to 0, PadRight does nothing.
// PadRight removes existing padding if the position is to the left of it,
// but never drops significant digits.
func (d *FixedDecimal) PadRight(position int16) {
	if position >= 0 {
		return
	}
	d.lowerMagnitude = min(position, d.NonzeroMagnitudeRight())
}

// PaddedRight is like [FixedDecimal.PadRight] but returns the result.
func (d FixedDecimal) PaddedRight(position int16) FixedDecimal {
	d.PadRight(position)
	return d
}

// TruncateLeft removes all digits at magnitude position and above,
// leaving the leftmost visible digit at magnitude position-1
// (or at the ones place if the position is not positive).
func (d *FixedDecimal) TruncateLeft(position int16) {
	d.lowerMagnitude = min(d.lowerMagnitude, position)
	if position <= 0 {
		d.upperMagnitude = 0
	} else {
		d.upperMagnitude = position - 1
	}
	if position <= d.NonzeroMagnitudeRight() {
		d.digits = nil
		d.magnitude = 0
		return
	}
	magnitude := position - 1
	if d.magnitude >= magnitude {
		digits := d.digits[int(d.magnitude)-int(magnitude):]
		lead := 0
		for lead < len(digits) && digits[lead] == 0 {
			lead++
		}
		d.digits = digits[lead:]
		d.magnitude = int16(int(magnitude) - lead)
	}
}

// TruncatedLeft is like [FixedDecimal.TruncateLeft] but returns the result.
func (d FixedDecimal) TruncatedLeft(position int16) FixedDecimal {
	d.TruncateLeft(position)
	return d
}

// TruncateRight removes all digits below the position, rounding towards zero.
// The rightmost visible digit becomes the one at the position
// (or the ones place if the position is positive).
func (d *FixedDecimal) TruncateRight(position int16) {
	d.lowerMagnitude = min(position, 0)
	if position == MinMagnitude {
		return
	}
	magnitude := position - 1
	d.upperMagnitude = max(d.upperMagnitude, magnitude)
	if magnitude > d.magnitude {
		d.digits = nil
		d.magnitude = 0
		return
	}
	if n := int(d.magnitude) - int(magnitude); n < len(d.digits) {
		d.digits = d.digits[:n]
	}
	d.trimTrailingZeros()
}

// TruncatedRight is like [FixedDecimal.TruncateRight] but returns the result.
func (d FixedDecimal) TruncatedRight(position int16) FixedDecimal {
	d.TruncateRight(position)
	return d
}

func (d *FixedDecimal) trimTrailingZeros() {
	n := len(d.digits)
	for n > 0 && d.digits[n-1] == 0 {
		n--
	}
	if n == 0 {
		d.digits = nil
		d.magnitude = 0
		return
	}
	d.digits = d.digits[:n]
}

// incrementAbs adds one unit at the magnitude of the last digit to
// the absolute value of d.
// If the carry would move past [MaxMagnitude], d becomes zero and
// incrementAbs returns an error.
func (d *FixedDecimal) incrementAbs() error {
	for i := len(d.digits) - 1; i >= 0; i-- {
		if d.digits[i] < 9 {
			digits := make([]byte, i+1)
			copy(digits, d.digits)
			digits[i]++
			d.digits = digits
			return nil
		}
	}
	d.digits = nil
	if d.magnitude == MaxMagnitude {
		d.magnitude = 0
		return fmt.Errorf("carrying past magnitude %v: %w", MaxMagnitude, ErrLimit)
	}
	d.digits = []byte{1}
	d.magnitude++
	d.upperMagnitude = max(d.upperMagnitude, d.magnitude)
	return nil
}

// ConcatenateRight appends the digits of e to the right of the digits of d.
// All nonzero digits of e must be to the right of all nonzero digits of d,
// otherwise ConcatenateRight returns false and leaves d unchanged.
// The visible range of the result covers the visible ranges of both operands.
//
// For example, 123 concatenated with 0.456 is 123.456.
func (d *FixedDecimal) ConcatenateRight(e FixedDecimal) bool {
	switch {
	case d.IsZero():
		d.digits = e.digits
		d.magnitude = e.magnitude
	case e.IsZero():
		// digits are unchanged
	case d.NonzeroMagnitudeRight() <= e.NonzeroMagnitudeLeft():
		return false
	default:
		zeros := int(d.NonzeroMagnitudeRight()) - int(e.NonzeroMagnitudeLeft()) - 1
		digits := make([]byte, len(d.digits)+zeros, len(d.digits)+zeros+len(e.digits))
		copy(digits, d.digits)
		d.digits = append(digits, e.digits...)
	}
	d.upperMagnitude = max(d.upperMagnitude, e.upperMagnitude)
	d.lowerMagnitude = min(d.lowerMagnitude, e.lowerMagnitude)
	return true
}

// ConcatenatedRight is like [FixedDecimal.ConcatenateRight] but returns
// the result.
// If the operands overlap, it returns d unchanged and false.
func (d FixedDecimal) ConcatenatedRight(e FixedDecimal) (FixedDecimal, bool) {
	ok := d.ConcatenateRight(e)
	return d, ok
}
