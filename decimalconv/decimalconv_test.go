package decimalconv

import (
	"errors"
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/govalues/fixeddecimal"
	govalues "github.com/govalues/decimal"
	shopspring "github.com/shopspring/decimal"
)

func TestShopspring(t *testing.T) {
	t.Run("from", func(t *testing.T) {
		tests := []struct {
			d    shopspring.Decimal
			want string
		}{
			{shopspring.Decimal{}, "0"},
			{shopspring.RequireFromString("-12.50"), "-12.50"},
			{shopspring.RequireFromString("0.001"), "0.001"},
			{shopspring.New(5, 3), "5000"},
			{shopspring.New(-42, 0), "-42"},
		}
		for _, tt := range tests {
			got, err := FromShopspring(tt.d)
			if err != nil {
				t.Errorf("FromShopspring(%v) failed: %v", tt.d, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("FromShopspring(%v) = %q, want %q", tt.d, got, tt.want)
			}
		}
	})

	t.Run("from error", func(t *testing.T) {
		_, err := FromShopspring(shopspring.New(1, 40000))
		if !errors.Is(err, fixeddecimal.ErrLimit) {
			t.Errorf("FromShopspring() = %v, want %v", err, fixeddecimal.ErrLimit)
		}
		_, err = FromShopspring(shopspring.New(10, 32767))
		if !errors.Is(err, fixeddecimal.ErrLimit) {
			t.Errorf("FromShopspring() = %v, want %v", err, fixeddecimal.ErrLimit)
		}
	})

	t.Run("to", func(t *testing.T) {
		tests := []struct {
			f    string
			coef string
			exp  int32
		}{
			{"-12.50", "-1250", -2},
			{"0012", "12", 0},
			{"0.00", "0", -2},
			{"0.000123", "123", -6},
		}
		for _, tt := range tests {
			got := ToShopspring(fixeddecimal.MustParse(tt.f))
			if got.Coefficient().String() != tt.coef || got.Exponent() != tt.exp {
				t.Errorf("ToShopspring(%q) = %ve%v, want %ve%v", tt.f, got.Coefficient(), got.Exponent(), tt.coef, tt.exp)
			}
			back, err := FromShopspring(got)
			if err != nil {
				t.Errorf("FromShopspring(%v) failed: %v", got, err)
				continue
			}
			if back.String() != fixeddecimal.MustParse(tt.f).StrippedLeft().String() {
				t.Errorf("FromShopspring(ToShopspring(%q)) = %q", tt.f, back)
			}
		}
	})
}

func TestGovalues(t *testing.T) {
	t.Run("from", func(t *testing.T) {
		tests := []string{"0", "-12.50", "0.001", "1234567890.123456789"}
		for _, tt := range tests {
			got, err := FromGovalues(govalues.MustParse(tt))
			if err != nil {
				t.Errorf("FromGovalues(%q) failed: %v", tt, err)
				continue
			}
			if got.String() != tt {
				t.Errorf("FromGovalues(%q) = %q", tt, got)
			}
		}
	})

	t.Run("to", func(t *testing.T) {
		tests := []struct {
			f, want string
		}{
			{"0012.3400", "12.3400"},
			{"-0.5", "-0.5"},
			{"1000", "1000"},
		}
		for _, tt := range tests {
			got, err := ToGovalues(fixeddecimal.MustParse(tt.f))
			if err != nil {
				t.Errorf("ToGovalues(%q) failed: %v", tt.f, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ToGovalues(%q) = %q, want %q", tt.f, got, tt.want)
			}
		}
	})

	t.Run("to error", func(t *testing.T) {
		f := fixeddecimal.MustParse("1" + strings.Repeat("0", 25))
		if _, err := ToGovalues(f); err == nil {
			t.Errorf("ToGovalues(%q) did not fail", f)
		}
	})
}

func TestAPD(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		tests := []struct {
			f, want string
		}{
			{"-12.50", "-12.50"},
			{"0012.3400", "12.3400"},
			{"-0.00", "-0.00"},
			{"1200", "1200"},
		}
		for _, tt := range tests {
			d, err := ToAPD(fixeddecimal.MustParse(tt.f))
			if err != nil {
				t.Errorf("ToAPD(%q) failed: %v", tt.f, err)
				continue
			}
			if d.String() != tt.want {
				t.Errorf("ToAPD(%q) = %v, want %v", tt.f, d, tt.want)
			}
			back, err := FromAPD(d)
			if err != nil {
				t.Errorf("FromAPD(%v) failed: %v", d, err)
				continue
			}
			if back.String() != tt.want {
				t.Errorf("FromAPD(%v) = %q, want %q", d, back, tt.want)
			}
		}
	})

	t.Run("from", func(t *testing.T) {
		got, err := FromAPD(apd.New(-1250, -2))
		if err != nil {
			t.Fatalf("FromAPD() failed: %v", err)
		}
		if got.String() != "-12.50" {
			t.Errorf("FromAPD() = %q, want %q", got, "-12.50")
		}
	})

	t.Run("from error", func(t *testing.T) {
		tests := []*apd.Decimal{
			{Form: apd.Infinite},
			{Form: apd.NaN},
			apd.New(1, 40000),
		}
		for _, tt := range tests {
			_, err := FromAPD(tt)
			if !errors.Is(err, fixeddecimal.ErrLimit) {
				t.Errorf("FromAPD(%v) = %v, want %v", tt, err, fixeddecimal.ErrLimit)
			}
		}
	})
}
