// Package plurals selects CLDR plural categories for fixed decimals.
//
// The plural rules themselves come from [golang.org/x/text/feature/plural];
// this package only derives the rule inputs from the visible digits of
// a [fixeddecimal.FixedDecimal], so "1" and "1.0" may select different forms.
package plurals

import (
	"fmt"

	"github.com/govalues/fixeddecimal"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// RuleType selects the set of plural rules.
type RuleType int8

const (
	Cardinal RuleType = iota // quantities: "1 file", "2 files"
	Ordinal                  // positions: "1st", "2nd"
)

func (t RuleType) String() string {
	switch t {
	case Cardinal:
		return "Cardinal"
	case Ordinal:
		return "Ordinal"
	}
	return fmt.Sprintf("RuleType(%d)", int8(t))
}

func (t RuleType) rules() (*plural.Rules, error) {
	switch t {
	case Cardinal:
		return plural.Cardinal, nil
	case Ordinal:
		return plural.Ordinal, nil
	}
	return nil, fmt.Errorf("unknown rule type %v", t)
}

// opMod is the modulus x/text accepts for operands that do not fit an int.
const opMod = 10_000_000

// Operands are the plural operands of a decimal, as defined in
// https://unicode.org/reports/tr35/tr35-numbers.html#Operands.
// Operands larger than 10,000,000 are reduced modulo 10,000,000.
type Operands struct {
	I int // integer digits
	V int // number of visible fraction digits, with trailing zeros
	W int // number of visible fraction digits, without trailing zeros
	F int // visible fraction digits, with trailing zeros
	T int // visible fraction digits, without trailing zeros
}

// NewOperands computes the plural operands of the absolute value of d.
func NewOperands(d fixeddecimal.FixedDecimal) Operands {
	lower, _ := d.MagnitudeRange()
	var o Operands
	o.I = digitsValue(d, 0, max(0, int(d.NonzeroMagnitudeLeft())))
	o.V = -int(lower)
	if right := d.NonzeroMagnitudeRight(); !d.IsZero() && right < 0 {
		o.W = -int(right)
	}
	o.F = digitsValue(d, int(lower), -1)
	o.T = digitsValue(d, -o.W, -1)
	return o
}

// digitsValue returns the integer formed by the digits of d at magnitudes
// from..to, scaled so that magnitude from is the ones place, modulo opMod.
func digitsValue(d fixeddecimal.FixedDecimal, from, to int) int {
	if from > to {
		return 0
	}
	// Only the lowest 7 digits matter modulo opMod.
	top := min(to, from+6)
	n := 0
	for m := top; m >= from; m-- {
		n = n*10 + int(d.DigitAt(int16(m)))
	}
	return n % opMod
}

// SelectOperands returns the plural form of the operands in the language.
func SelectOperands(tag language.Tag, o Operands, t RuleType) (plural.Form, error) {
	rules, err := t.rules()
	if err != nil {
		return plural.Other, err
	}
	return rules.MatchPlural(tag, o.I, o.V, o.W, o.F, o.T), nil
}

// Select returns the plural form of d in the language.
// The sign of d is ignored.
func Select(tag language.Tag, d fixeddecimal.FixedDecimal, t RuleType) (plural.Form, error) {
	rules, err := t.rules()
	if err != nil {
		return plural.Other, err
	}
	digits, exp, scale := matchArgs(d)
	return rules.MatchDigits(tag, digits, exp, scale), nil
}

// SelectLocale is like [Select] but takes a BCP 47 locale identifier,
// such as "en-US" or "ru".
func SelectLocale(locale string, d fixeddecimal.FixedDecimal, t RuleType) (plural.Form, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return plural.Other, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	return Select(tag, d, t)
}

// matchArgs converts d to the arguments of [plural.Rules.MatchDigits]:
// the significant digits as values 0-9, the position of the decimal point
// relative to the first digit, and the number of visible fraction digits.
func matchArgs(d fixeddecimal.FixedDecimal) (digits []byte, exp, scale int) {
	lower, _ := d.MagnitudeRange()
	scale = -int(lower)
	if d.IsZero() {
		return nil, 0, scale
	}
	left, right := int(d.NonzeroMagnitudeLeft()), int(d.NonzeroMagnitudeRight())
	digits = make([]byte, 0, left-right+1)
	for m := left; m >= right; m-- {
		digits = append(digits, d.DigitAt(int16(m)))
	}
	return digits, left + 1, scale
}
