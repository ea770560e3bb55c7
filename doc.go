/*
Package fixeddecimal implements decimal numbers with an explicit range of
visible digits.
It is designed as the intermediate form between a number and its
locale-aware representation: formatters read its digits, and plural rules
read its operands.

# Representation

[FixedDecimal] is a struct with five fields:

  - Digits: the significant digits, without leading and trailing zeros.
  - Magnitude: the power of 10 of the first significant digit.
  - Upper magnitude: the power of 10 of the leftmost visible digit.
  - Lower magnitude: the power of 10 of the rightmost visible digit.
  - Sign: a boolean indicating whether the decimal is negative.

Each digit is indexed by its magnitude, the power of 10 it stands for.
Illustration for the number "12.34":

	| Magnitude | Digit | Description      |
	| --------- | ----- | ---------------- |
	| 1         | 1     | Tens place       |
	| 0         | 2     | Ones place       |
	| -1        | 3     | Tenths place     |
	| -2        | 4     | Hundredths place |

Padding, truncation and rounding take a position instead of a magnitude.
Position p is the boundary between magnitudes p and p-1, so rounding
"12.34" at position -1 keeps one fractional digit.

Zeros between the visible bounds and the significant digits are implied,
so "0012.3400" and "12.34" have the same digits but different visible ranges.
Negative zero is supported and is distinct from positive zero.

# Constraints

All magnitudes are int16 values, so a decimal can have at most 32768 digits
before and 32768 digits after the decimal point.
The ones place is always visible.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [FixedDecimal.String], [FixedDecimal.Append], [FixedDecimal.WriteTo].
  - from integers:
    [FromInt], [FromBigInt].
  - from float64:
    [NewFromFloat64], with [Floating], [Integer], [Magnitude] or
    [SignificantDigits] precision.

# Operations

Each operation comes in two forms: a method with a pointer receiver that
modifies the decimal, and a method with a value receiver that returns
a modified copy, for example [FixedDecimal.Negate] and [FixedDecimal.Negated].
Digits are never modified in place, so copies of a decimal do not affect
each other.

  - scaling:
    [FixedDecimal.MultiplyPow10].
  - padding:
    [FixedDecimal.PadLeft], [FixedDecimal.PadRight],
    [FixedDecimal.StripLeft], [FixedDecimal.StripRight].
  - truncation:
    [FixedDecimal.TruncateLeft], [FixedDecimal.TruncateRight].
  - concatenation:
    [FixedDecimal.ConcatenateRight].

# Rounding

Digits below a position are discarded with one of the following methods:

  - towards positive infinity:
    [FixedDecimal.Ceil], [FixedDecimal.HalfCeil].
  - towards negative infinity:
    [FixedDecimal.Floor], [FixedDecimal.HalfFloor].
  - away from zero:
    [FixedDecimal.Expand], [FixedDecimal.HalfExpand].
  - towards zero:
    [FixedDecimal.TruncateRight], [FixedDecimal.HalfTruncateRight].
  - half-to-even rounding:
    [FixedDecimal.HalfEven].

[FixedDecimal.Round] selects one of them with a [RoundingMode].

# Errors

All methods are panic-free, except for the ones with the Must prefix.
Errors are returned in the following cases:

  - Invalid Syntax.
    [Parse] returns an error wrapping [ErrSyntax] if the string does not
    represent a decimal.

  - Magnitude Overflow.
    Operations return an error wrapping [ErrLimit] if a magnitude would leave
    the int16 range.
    [FixedDecimal.MultiplyPow10] leaves the decimal unchanged in this case.
*/
package fixeddecimal
