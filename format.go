package fixeddecimal

import (
	"fmt"
	"io"
)

// String method implements the [fmt.Stringer] interface and returns
// the canonical representation of a decimal value.
// Every visible digit is written, including zero padding on both sides of
// the decimal point.
// The returned string never uses scientific notation and is formatted
// according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [Parse] converts the result back to an equal decimal.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d FixedDecimal) String() string {
	return string(d.Append(make([]byte, 0, d.Len())))
}

// Len returns the exact length in bytes of [FixedDecimal.String].
func (d FixedDecimal) Len() int {
	n := 1 + int(d.upperMagnitude) - int(d.lowerMagnitude)
	if d.neg {
		n++
	}
	if d.lowerMagnitude < 0 {
		n++ // decimal point
	}
	return n
}

// Append appends the canonical representation of d to b and returns
// the extended buffer.
// Also see method [FixedDecimal.String].
func (d FixedDecimal) Append(b []byte) []byte {
	if d.neg {
		b = append(b, '-')
	}
	// int loop bound, the range may end at MinMagnitude
	for m := int(d.upperMagnitude); m >= int(d.lowerMagnitude); m-- {
		if m == -1 {
			b = append(b, '.')
		}
		b = append(b, '0'+d.DigitAt(int16(m)))
	}
	return b
}

// WriteTo implements [io.WriterTo] interface.
// It writes the canonical representation of d to w.
//
// [io.WriterTo]: https://pkg.go.dev/io#WriterTo
func (d FixedDecimal) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Append(make([]byte, 0, d.Len())))
	return int64(n), err
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -012.30
//	%q:    "-012.30"
//
// Width is supported for all verbs, with the '-' flag padding on the right.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d FixedDecimal) Format(state fmt.State, verb rune) {
	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + d.Len() + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		if state.Flag('-') {
			tspaces = w - width
		} else {
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	buf = d.Append(buf)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(fixeddecimal.FixedDecimal="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
