package fixeddecimal

import "fmt"

// Parse converts a string to a decimal, keeping all of its digits.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	0.001200
//	-00.50
//	1.83e5
//	0.22E-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	exponent       ::= ('e' | 'E') ['-'] digits
//	numeric-string ::= ['-'] significand [exponent]
//
// Leading zeros of the integer part and trailing zeros of the fractional part
// are kept as padding, so [FixedDecimal.String] reproduces the input exactly
// when it has no exponent.
// If an exponent is present, it is applied as with [FixedDecimal.MultiplyPow10],
// then leading padding is dropped and the fractional range is widened to
// keep every significant digit visible.
//
// Parse returns an error wrapping [ErrSyntax] if the string does not represent
// a decimal, or [ErrLimit] if the visible range does not fit into an int16.
func Parse(s string) (FixedDecimal, error) {
	var (
		pos       int
		width     int
		neg       bool
		intStart  int
		intEnd    int
		fracStart int
		fracEnd   int
		eneg      bool
		exp       int
		hasexp    bool
	)

	width = len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	// Integer
	intStart = pos
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	intEnd = pos
	if intStart == intEnd {
		if pos == width {
			return FixedDecimal{}, fmt.Errorf("parsing %q: no digits: %w", s, ErrSyntax)
		}
		return FixedDecimal{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], ErrSyntax)
	}

	// Fraction
	fracStart, fracEnd = pos, pos
	if pos < width && s[pos] == '.' {
		pos++
		fracStart = pos
		for pos < width && isDigit(s[pos]) {
			pos++
		}
		fracEnd = pos
		if fracStart == fracEnd {
			return FixedDecimal{}, fmt.Errorf("parsing %q: no digits after decimal point: %w", s, ErrSyntax)
		}
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		if pos < width && s[pos] == '-' {
			eneg = true
			pos++
		}
		for pos < width && isDigit(s[pos]) {
			if exp <= MaxMagnitude-MinMagnitude {
				exp = exp*10 + int(s[pos]-'0')
			}
			hasexp = true
			pos++
		}
		if !hasexp {
			return FixedDecimal{}, fmt.Errorf("parsing %q: no exponent: %w", s, ErrSyntax)
		}
	}

	if pos != width {
		return FixedDecimal{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], ErrSyntax)
	}

	// Visible range
	intLen, fracLen := intEnd-intStart, fracEnd-fracStart
	if intLen-1 > MaxMagnitude {
		return FixedDecimal{}, fmt.Errorf("parsing %q: %v integer digits: %w", s, intLen, ErrLimit)
	}
	if -fracLen < MinMagnitude {
		return FixedDecimal{}, fmt.Errorf("parsing %q: %v fractional digits: %w", s, fracLen, ErrLimit)
	}
	d := FixedDecimal{
		neg:            neg,
		upperMagnitude: int16(intLen - 1),
		lowerMagnitude: int16(-fracLen),
	}

	// Significant digits
	var (
		digits    []byte
		magnitude int
		zeros     int // zeros seen after the last nonzero digit
	)
	collect := func(start, end, top int) {
		for i := start; i < end; i++ {
			digit := s[i] - '0'
			switch {
			case digit == 0 && len(digits) == 0:
				// leading zero
			case digit == 0:
				zeros++
			default:
				if len(digits) == 0 {
					magnitude = top - (i - start)
				}
				for ; zeros > 0; zeros-- {
					digits = append(digits, 0)
				}
				digits = append(digits, digit)
			}
		}
	}
	collect(intStart, intEnd, intLen-1)
	collect(fracStart, fracEnd, -1)
	if len(digits) == 0 {
		// All zeros keep the requested range, an exponent does not move it.
		return d, nil
	}
	d.digits = digits
	d.magnitude = int16(magnitude)

	if hasexp {
		if eneg {
			exp = -exp
		}
		if exp < MinMagnitude || exp > MaxMagnitude {
			return FixedDecimal{}, fmt.Errorf("parsing %q: exponent %v: %w", s, exp, ErrLimit)
		}
		if err := d.MultiplyPow10(int16(exp)); err != nil {
			return FixedDecimal{}, fmt.Errorf("parsing %q: %w", s, err)
		}
		if d.magnitude > 0 {
			d.upperMagnitude = d.magnitude
		}
		if right := d.NonzeroMagnitudeRight(); right < 0 {
			d.lowerMagnitude = right
		}
	}

	return d, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) FixedDecimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}
