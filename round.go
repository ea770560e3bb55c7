package fixeddecimal

import "fmt"

// RoundingMode selects how digits below a position are discarded.
type RoundingMode int8

const (
	Ceil       RoundingMode = iota // towards positive infinity
	Expand                         // away from zero
	Floor                          // towards negative infinity
	Trunc                          // towards zero
	HalfCeil                       // to nearest, ties towards positive infinity
	HalfExpand                     // to nearest, ties away from zero
	HalfFloor                      // to nearest, ties towards negative infinity
	HalfTrunc                      // to nearest, ties towards zero
	HalfEven                       // to nearest, ties to an even digit
)

var roundingModeNames = [...]string{
	Ceil:       "Ceil",
	Expand:     "Expand",
	Floor:      "Floor",
	Trunc:      "Trunc",
	HalfCeil:   "HalfCeil",
	HalfExpand: "HalfExpand",
	HalfFloor:  "HalfFloor",
	HalfTrunc:  "HalfTrunc",
	HalfEven:   "HalfEven",
}

func (m RoundingMode) String() string {
	if m < 0 || int(m) >= len(roundingModeNames) {
		return fmt.Sprintf("RoundingMode(%d)", int8(m))
	}
	return roundingModeNames[m]
}

// Round rounds d at the position using the given mode.
// Also see the methods named after each mode, such as [FixedDecimal.HalfEven].
//
// Round returns an error if the mode is unknown, or if rounding carries
// a digit past [MaxMagnitude]; in the latter case d becomes zero.
func (d *FixedDecimal) Round(position int16, mode RoundingMode) error {
	switch mode {
	case Ceil:
		return d.Ceil(position)
	case Expand:
		return d.Expand(position)
	case Floor:
		return d.Floor(position)
	case Trunc:
		d.TruncateRight(position)
		return nil
	case HalfCeil:
		return d.HalfCeil(position)
	case HalfExpand:
		return d.HalfExpand(position)
	case HalfFloor:
		return d.HalfFloor(position)
	case HalfTrunc:
		return d.HalfTruncateRight(position)
	case HalfEven:
		return d.HalfEven(position)
	}
	return fmt.Errorf("rounding %v: unknown mode %v", d, mode)
}

// Rounded is like [FixedDecimal.Round] but returns the result.
func (d FixedDecimal) Rounded(position int16, mode RoundingMode) (FixedDecimal, error) {
	if err := d.Round(position, mode); err != nil {
		return FixedDecimal{}, err
	}
	return d, nil
}

// Expand rounds the absolute value of d up at the position,
// that is, away from zero.
//
//	 3.234 -> 4     (position 0)
//	-2.222 -> -2.3  (position -1)
//	 99.99 -> 100.0 (position -1)
func (d *FixedDecimal) Expand(position int16) error {
	wasZero := d.IsZero()
	bottom := d.NonzeroMagnitudeRight()
	top := d.magnitude
	d.TruncateRight(position)
	switch {
	case wasZero || position <= bottom:
		// nothing was discarded
		return nil
	case position <= top:
		return d.incrementAbs()
	}
	// All digits were below the position.
	d.digits = []byte{1}
	d.magnitude = position
	d.upperMagnitude = max(d.upperMagnitude, position)
	return nil
}

// Expanded is like [FixedDecimal.Expand] but returns the result.
func (d FixedDecimal) Expanded(position int16) (FixedDecimal, error) {
	if err := d.Expand(position); err != nil {
		return FixedDecimal{}, err
	}
	return d, nil
}

// HalfTruncateRight rounds d to the nearest value at the position,
// with ties rounded towards zero.
func (d *FixedDecimal) HalfTruncateRight(position int16) error {
	if d.aboveHalf(position) {
		return d.Expand(position)
	}
	d.TruncateRight(position)
	return nil
}

// HalfTruncatedRight is like [FixedDecimal.HalfTruncateRight] but returns
// the result.
func (d FixedDecimal) HalfTruncatedRight(position int16) (FixedDecimal, error) {
	if err := d.HalfTruncateRight(position); err != nil {
		return FixedDecimal{}, err
	}
	return d, nil
}

// HalfExpand rounds d to the nearest value at the position,
// with ties rounded away from zero.
func (d *FixedDecimal) HalfExpand(position int16) error {
	if d.digitBelow(position) >= 5 {
		return d.Expand(position)
	}
	d.TruncateRight(position)
	return nil
}

// HalfExpanded is like [FixedDecimal.HalfExpand] but returns the result.
func (d FixedDecimal) HalfExpanded(position int16) (FixedDecimal, error) {
	if err := d.HalfExpand(position); err != nil {
		return FixedDecimal{}, err
	}
	return d, nil
}

// Ceil rounds d towards positive infinity at the position.
func (d *FixedDecimal) Ceil(position int16) error {
	if d.neg {
		d.TruncateRight(position)
		return nil
	}
	return d.Expand(position)
}

// Ceiled is like [FixedDecimal.Ceil] but returns the result.
func (d FixedDecimal) Ceiled(position int16) (FixedDecimal, error) {
	if err := d.Ceil(position); err != nil {
		return FixedDecimal{}, err
	}
	return d, nil
}

// HalfCeil rounds d to the nearest value at the position,
// with ties rounded towards positive infinity.
func (d *FixedDecimal) HalfCeil(position int16) error {
	if d.neg {
		return d.HalfTruncateRight(position)
	}
	return d.HalfExpand(position)
}

// HalfCeiled is like [FixedDecimal.HalfCeil] but returns the result.
func (d FixedDecimal) HalfCeiled(position int16) (FixedDecimal, error) {
	if err := d.HalfCeil(position); err != nil {
		return FixedDecimal{}, err
	}
	return d, nil
}

// Floor rounds d towards negative infinity at the position.
func (d *FixedDecimal) Floor(position int16) error {
	if d.neg {
		return d.Expand(position)
	}
	d.TruncateRight(position)
	return nil
}

// Floored is like [FixedDecimal.Floor] but returns the result.
func (d FixedDecimal) Floored(position int16) (FixedDecimal, error) {
	if err := d.Floor(position); err != nil {
		return FixedDecimal{}, err
	}
	return d, nil
}

// HalfFloor rounds d to the nearest value at the position,
// with ties rounded towards negative infinity.
func (d *FixedDecimal) HalfFloor(position int16) error {
	if d.neg {
		return d.HalfExpand(position)
	}
	return d.HalfTruncateRight(position)
}

// HalfFloored is like [FixedDecimal.HalfFloor] but returns the result.
func (d FixedDecimal) HalfFloored(position int16) (FixedDecimal, error) {
	if err := d.HalfFloor(position); err != nil {
		return FixedDecimal{}, err
	}
	return d, nil
}

// HalfEven rounds d to the nearest value at the position,
// with ties rounded to the value whose digit at the position is even.
//
//	2.5 -> 2 (position 0)
//	3.5 -> 4 (position 0)
func (d *FixedDecimal) HalfEven(position int16) error {
	expand := d.aboveHalf(position)
	if !expand && d.atHalf(position) {
		expand = d.DigitAt(position)%2 != 0
	}
	if expand {
		return d.Expand(position)
	}
	d.TruncateRight(position)
	return nil
}

// HalfEvened is like [FixedDecimal.HalfEven] but returns the result.
func (d FixedDecimal) HalfEvened(position int16) (FixedDecimal, error) {
	if err := d.HalfEven(position); err != nil {
		return FixedDecimal{}, err
	}
	return d, nil
}

// aboveHalf returns true if the digits below the position are strictly
// greater than half a unit at the position.
func (d FixedDecimal) aboveHalf(position int16) bool {
	switch digit := d.digitBelow(position); {
	case digit > 5:
		return true
	case digit == 5:
		// position is above MinMagnitude here
		return d.NonzeroMagnitudeRight() < position-1
	}
	return false
}

// atHalf returns true if the digits below the position are exactly
// half a unit at the position.
func (d FixedDecimal) atHalf(position int16) bool {
	return d.digitBelow(position) == 5 && d.NonzeroMagnitudeRight() == position-1
}
