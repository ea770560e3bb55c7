package fixeddecimal

import (
	"database/sql/driver"
	"fmt"
	"math"
	"math/big"
)

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *FixedDecimal) UnmarshalText(text []byte) error {
	e, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = e
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [FixedDecimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d FixedDecimal) MarshalText() ([]byte, error) {
	return d.Append(make([]byte, 0, d.Len())), nil
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *FixedDecimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return d.UnmarshalText(data)
}

// MarshalJSON implements [json.Marshaler] interface.
// The decimal is written as a JSON string to keep its padding and sign.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d FixedDecimal) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, d.Len()+2)
	b = append(b, '"')
	b = d.Append(b)
	b = append(b, '"')
	return b, nil
}

// Scan implements the [sql.Scanner] interface.
// See also method [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *FixedDecimal) Scan(value any) error {
	var (
		e   FixedDecimal
		err error
	)
	switch value := value.(type) {
	case string:
		e, err = Parse(value)
	case []byte:
		e, err = Parse(string(value))
	case int64:
		e = FromInt(value)
	case float64:
		e, err = NewFromFloat64(value, Floating)
	default:
		err = fmt.Errorf("failed to convert from %T to %T", value, FixedDecimal{})
	}
	if err != nil {
		return err
	}
	*d = e
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [FixedDecimal.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d FixedDecimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// NullFixedDecimal represents a decimal that can be null.
// Its zero value is null.
// NullFixedDecimal is not thread-safe.
type NullFixedDecimal struct {
	FixedDecimal FixedDecimal
	Valid        bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullFixedDecimal) Scan(value any) error {
	if value == nil {
		n.FixedDecimal = FixedDecimal{}
		n.Valid = false
		return nil
	}
	err := n.FixedDecimal.Scan(value)
	if err != nil {
		n.FixedDecimal = FixedDecimal{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [FixedDecimal.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullFixedDecimal) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.FixedDecimal.Value()
}

// Decompose returns the internal decimal state in parts, as described by
// the decimal decomposer interface of [database/sql].
// The coefficient is a big-endian base-2 integer holding every digit down to
// the lower visible magnitude, which becomes the exponent, so fraction
// padding survives the round trip while integer padding does not.
// If buf has sufficient capacity, buf may be returned as the coefficient.
func (d FixedDecimal) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	negative = d.neg
	exponent = int32(d.lowerMagnitude)
	if d.IsZero() {
		return 0, negative, buf[:0], exponent
	}
	text := make([]byte, 0, int(d.magnitude)-int(d.lowerMagnitude)+1)
	for m := int(d.magnitude); m >= int(d.lowerMagnitude); m-- {
		text = append(text, '0'+d.DigitAt(int16(m)))
	}
	coef, ok := new(big.Int).SetString(string(text), 10)
	if !ok {
		panic(fmt.Sprintf("%q.Decompose() failed: invalid coefficient %q", d, text))
	}
	n := (coef.BitLen() + 7) / 8
	if cap(buf) >= n {
		coefficient = coef.FillBytes(buf[:n])
	} else {
		coefficient = coef.Bytes()
	}
	return 0, negative, coefficient, exponent
}

// Compose sets the decimal value from parts, as described by the decimal
// decomposer interface of [database/sql].
// Compose returns an error wrapping [ErrLimit] if the form is not finite or
// the value does not fit into the magnitude range.
func (d *FixedDecimal) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	if form != 0 {
		return fmt.Errorf("composing form %v: only finite decimals are supported: %w", form, ErrLimit)
	}
	if exponent < math.MinInt16 || exponent > math.MaxInt16 {
		return fmt.Errorf("composing exponent %v: %w", exponent, ErrLimit)
	}
	e, err := FromBigInt(new(big.Int).SetBytes(coefficient))
	if err != nil {
		return fmt.Errorf("composing: %w", err)
	}
	if err = e.MultiplyPow10(int16(exponent)); err != nil {
		return fmt.Errorf("composing: %w", err)
	}
	e.neg = negative
	*d = e
	return nil
}
