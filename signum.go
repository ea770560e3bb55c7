package fixeddecimal

import "fmt"

// Signum is the sign of a decimal, with zeros split by their sign.
type Signum int8

const (
	BelowZero    Signum = iota // negative and nonzero
	NegativeZero               // negative and zero
	PositiveZero               // positive and zero
	AboveZero                  // positive and nonzero
)

func (s Signum) String() string {
	switch s {
	case BelowZero:
		return "BelowZero"
	case NegativeZero:
		return "NegativeZero"
	case PositiveZero:
		return "PositiveZero"
	case AboveZero:
		return "AboveZero"
	}
	return fmt.Sprintf("Signum(%d)", int8(s))
}
