package fixeddecimal

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// chunkDigits is the number of decimal digits taken from a big.Int at once.
const chunkDigits = 19

var bpow19 = new(big.Int).SetUint64(pow10[chunkDigits])

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func prec(x uint64) int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if x < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// digitIterator produces the decimal digits of an unsigned integer,
// starting from the least significant one.
type digitIterator interface {
	next() (digit byte, ok bool)
}

// uintDigits iterates over the digits of a uint64.
type uintDigits struct {
	x uint64
}

func (it *uintDigits) next() (byte, bool) {
	if it.x == 0 {
		return 0, false
	}
	d := byte(it.x % 10)
	it.x /= 10
	return d, true
}

// bigDigits iterates over the digits of a non-negative big.Int,
// dividing it by 10^19 at a time.
type bigDigits struct {
	x     *big.Int
	r     big.Int
	chunk uint64
	left  int // digits remaining in chunk
}

func (it *bigDigits) next() (byte, bool) {
	if it.left == 0 {
		if it.x.Sign() == 0 {
			return 0, false
		}
		it.x.QuoRem(it.x, bpow19, &it.r)
		it.chunk = it.r.Uint64()
		it.left = chunkDigits
		if it.x.Sign() == 0 {
			// The most significant chunk has no leading zeros.
			it.left = prec(it.chunk)
		}
	}
	d := byte(it.chunk % 10)
	it.chunk /= 10
	it.left--
	return d, true
}

// fromAscending builds a positive decimal from the digits produced by it.
// The visible range spans from the ones place to the most significant digit.
func fromAscending(it digitIterator) (FixedDecimal, error) {
	var (
		digits []byte // reversed, starting from the first nonzero digit
		zeros  int    // trailing zeros
	)
	for n := 0; ; n++ {
		digit, ok := it.next()
		if !ok {
			break
		}
		if n > MaxMagnitude {
			return FixedDecimal{}, fmt.Errorf("integer has more than %v digits: %w", MaxMagnitude+1, ErrLimit)
		}
		if len(digits) == 0 && digit == 0 {
			zeros++
			continue
		}
		digits = append(digits, digit)
	}
	if len(digits) == 0 {
		return FixedDecimal{}, nil
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	magnitude := int16(zeros + len(digits) - 1)
	return FixedDecimal{
		digits:         digits,
		magnitude:      magnitude,
		upperMagnitude: magnitude,
	}, nil
}

// FromInt returns a decimal equal to the integer v.
// The visible range spans from the ones place to the most significant digit,
// so FromInt(0) is "0" and FromInt(-1200) is "-1200".
func FromInt[T constraints.Integer](v T) FixedDecimal {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	d, err := fromAscending(&uintDigits{x: u})
	if err != nil {
		panic(fmt.Sprintf("FromInt(%v) failed: %v", v, err))
	}
	d.neg = neg
	return d
}

// FromBigInt returns a decimal equal to the integer x.
// A nil x is treated as 0.
//
// FromBigInt returns an error if x has more than [MaxMagnitude]+1 digits.
func FromBigInt(x *big.Int) (FixedDecimal, error) {
	if x == nil {
		return FixedDecimal{}, nil
	}
	d, err := fromAscending(&bigDigits{x: new(big.Int).Abs(x)})
	if err != nil {
		return FixedDecimal{}, err
	}
	d.neg = x.Sign() < 0
	return d, nil
}
