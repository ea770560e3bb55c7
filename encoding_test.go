package fixeddecimal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFixedDecimal_String(t *testing.T) {
	tests := []string{
		"0", "-0", "000", "0.000", "-00.50", "1", "-1234.5670", "0.0000009",
	}
	for _, tt := range tests {
		d := MustParse(tt)
		if got := d.String(); got != tt {
			t.Errorf("%q.String() = %q", tt, got)
		}
		if got := d.Len(); got != len(tt) {
			t.Errorf("%q.Len() = %v, want %v", tt, got, len(tt))
		}
		if got := string(d.Append([]byte("x="))); got != "x="+tt {
			t.Errorf("%q.Append() = %q", tt, got)
		}
		var buf bytes.Buffer
		n, err := d.WriteTo(&buf)
		if err != nil {
			t.Errorf("%q.WriteTo() failed: %v", tt, err)
			continue
		}
		if n != int64(len(tt)) || buf.String() != tt {
			t.Errorf("%q.WriteTo() = %v, %q", tt, n, buf.String())
		}
	}
}

func TestFixedDecimal_Format(t *testing.T) {
	tests := []struct {
		d, format, want string
	}{
		{"-12.30", "%v", "-12.30"},
		{"-12.30", "%s", "-12.30"},
		{"-12.30", "%q", `"-12.30"`},
		{"-12.30", "%8v", "  -12.30"},
		{"-12.30", "%-8v|", "-12.30  |"},
		{"-12.30", "%10q", `  "-12.30"`},
		{"-12.30", "%3v", "-12.30"},
		{"1.5", "%d", "%!d(fixeddecimal.FixedDecimal=1.5)"},
		{"1.5", "%f", "%!f(fixeddecimal.FixedDecimal=1.5)"},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		if got := fmt.Sprintf(tt.format, d); got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %q) = %q, want %q", tt.format, tt.d, got, tt.want)
		}
	}
}

func TestFixedDecimal_Text(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []string{"0", "-0.00", "0012.3400", "-5"}
		for _, tt := range tests {
			var d FixedDecimal
			if err := d.UnmarshalText([]byte(tt)); err != nil {
				t.Errorf("UnmarshalText(%q) failed: %v", tt, err)
				continue
			}
			b, err := d.MarshalText()
			if err != nil {
				t.Errorf("MarshalText() failed: %v", err)
				continue
			}
			if string(b) != tt {
				t.Errorf("MarshalText() = %q, want %q", b, tt)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		d := MustParse("7")
		err := d.UnmarshalText([]byte("1.2.3"))
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("UnmarshalText() = %v, want %v", err, ErrSyntax)
		}
		if d.String() != "7" {
			t.Errorf("UnmarshalText() modified the decimal on failure to %q", d)
		}
	})
}

func TestFixedDecimal_JSON(t *testing.T) {
	type payload struct {
		A FixedDecimal  `json:"a"`
		B *FixedDecimal `json:"b,omitempty"`
	}

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			data  string
			a, b  string
			nullB bool
		}{
			{`{"a":"-0.50","b":"1e3"}`, "-0.50", "1000", false},
			{`{"a":1.25,"b":7}`, "1.25", "7", false},
			{`{"a":"0012","b":null}`, "0012", "", true},
			{`{"a":null}`, "0", "", true},
		}
		for _, tt := range tests {
			var p payload
			if err := json.Unmarshal([]byte(tt.data), &p); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.data, err)
				continue
			}
			if p.A.String() != tt.a {
				t.Errorf("json.Unmarshal(%s).A = %q, want %q", tt.data, p.A, tt.a)
			}
			if tt.nullB {
				if p.B != nil {
					t.Errorf("json.Unmarshal(%s).B = %q, want nil", tt.data, p.B)
				}
				continue
			}
			if p.B == nil || p.B.String() != tt.b {
				t.Errorf("json.Unmarshal(%s).B = %v, want %q", tt.data, p.B, tt.b)
			}
		}
	})

	t.Run("marshal", func(t *testing.T) {
		b := MustParse("-0")
		p := payload{A: MustParse("-00.50"), B: &b}
		got, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("json.Marshal() failed: %v", err)
		}
		want := `{"a":"-00.50","b":"-0"}`
		if string(got) != want {
			t.Errorf("json.Marshal() = %s, want %s", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			`{"a":"abc"}`,
			`{"a":"1.2.3"}`,
			`{"a":true}`,
		}
		for _, tt := range tests {
			var p payload
			if err := json.Unmarshal([]byte(tt), &p); err == nil {
				t.Errorf("json.Unmarshal(%s) did not fail", tt)
			}
		}
	})
}

func TestFixedDecimal_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  string
		}{
			{"-00.50", "-00.50"},
			{[]byte("12.30"), "12.30"},
			{int64(-1200), "-1200"},
			{0.25, "0.25"},
			{math.Copysign(0, -1), "-0"},
		}
		for _, tt := range tests {
			var d FixedDecimal
			if err := d.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if d.String() != tt.want {
				t.Errorf("Scan(%v) = %q, want %q", tt.value, d, tt.want)
			}
			v, err := d.Value()
			if err != nil {
				t.Errorf("Value() failed: %v", err)
				continue
			}
			if v != tt.want {
				t.Errorf("Value() = %v, want %q", v, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{
			nil,
			true,
			"1.2.3",
			math.NaN(),
			int32(5),
		}
		for _, tt := range tests {
			d := MustParse("7")
			if err := d.Scan(tt); err == nil {
				t.Errorf("Scan(%v) did not fail", tt)
			}
			if d.String() != "7" {
				t.Errorf("Scan(%v) modified the decimal on failure to %q", tt, d)
			}
		}
	})
}

func TestNullFixedDecimal(t *testing.T) {
	t.Run("scan", func(t *testing.T) {
		tests := []struct {
			value any
			want  NullFixedDecimal
		}{
			{nil, NullFixedDecimal{}},
			{"0.10", NullFixedDecimal{FixedDecimal: MustParse("0.10"), Valid: true}},
			{int64(3), NullFixedDecimal{FixedDecimal: FromInt(3), Valid: true}},
		}
		for _, tt := range tests {
			n := NullFixedDecimal{FixedDecimal: MustParse("9"), Valid: true}
			if err := n.Scan(tt.value); err != nil {
				t.Errorf("Scan(%v) failed: %v", tt.value, err)
				continue
			}
			if diff := cmp.Diff(tt.want, n, cmpOpts...); diff != "" {
				t.Errorf("Scan(%v) mismatch (-want +got):\n%s", tt.value, diff)
			}
		}

		var n NullFixedDecimal
		if err := n.Scan(false); err == nil {
			t.Errorf("Scan(false) did not fail")
		}
		if n.Valid {
			t.Errorf("Scan(false) left the value valid")
		}
	})

	t.Run("value", func(t *testing.T) {
		var n NullFixedDecimal
		v, err := n.Value()
		if err != nil || v != nil {
			t.Errorf("Value() = %v, %v, want nil, nil", v, err)
		}
		n = NullFixedDecimal{FixedDecimal: MustParse("-1.0"), Valid: true}
		v, err = n.Value()
		if err != nil || v != "-1.0" {
			t.Errorf("Value() = %v, %v, want %q, nil", v, err, "-1.0")
		}
	})
}

func TestFixedDecimal_Decompose(t *testing.T) {
	tests := []struct {
		d        string
		neg      bool
		coef     *big.Int
		exp      int32
		composed string
	}{
		{"-12.50", true, big.NewInt(1250), -2, "-12.50"},
		{"0.00", false, big.NewInt(0), -2, "0.00"},
		{"-0", true, big.NewInt(0), 0, "-0"},
		{"0012", false, big.NewInt(12), 0, "12"},
		{"1200", false, big.NewInt(1200), 0, "1200"},
		{"0.000123", false, big.NewInt(123), -6, "0.000123"},
	}
	for _, tt := range tests {
		d := MustParse(tt.d)
		form, neg, coef, exp := d.Decompose(nil)
		if form != 0 || neg != tt.neg || exp != tt.exp {
			t.Errorf("%q.Decompose() = %v, %v, _, %v, want 0, %v, _, %v", tt.d, form, neg, exp, tt.neg, tt.exp)
		}
		if got := new(big.Int).SetBytes(coef); got.Cmp(tt.coef) != 0 {
			t.Errorf("%q.Decompose() coefficient = %v, want %v", tt.d, got, tt.coef)
		}

		var e FixedDecimal
		if err := e.Compose(form, neg, coef, exp); err != nil {
			t.Errorf("Compose(%q.Decompose()) failed: %v", tt.d, err)
			continue
		}
		checkInvariants(t, e)
		if e.String() != tt.composed {
			t.Errorf("Compose(%q.Decompose()) = %q, want %q", tt.d, e, tt.composed)
		}
	}

	t.Run("buffer", func(t *testing.T) {
		buf := make([]byte, 0, 16)
		_, _, coef, _ := MustParse("655.35").Decompose(buf)
		if !bytes.Equal(coef, []byte{0xff, 0xff}) {
			t.Errorf("Decompose() coefficient = %x, want ffff", coef)
		}
		if &coef[0] != &buf[:1][0] {
			t.Errorf("Decompose() did not reuse the buffer")
		}
	})
}

func TestFixedDecimal_Compose(t *testing.T) {
	tests := []struct {
		form byte
		coef []byte
		exp  int32
	}{
		{1, nil, 0},
		{2, nil, 0},
		{0, []byte{1}, math.MaxInt16 + 1},
		{0, []byte{1}, math.MinInt16 - 1},
		{0, []byte{0xff}, math.MaxInt16},
	}
	for _, tt := range tests {
		d := MustParse("7")
		err := d.Compose(tt.form, false, tt.coef, tt.exp)
		if !errors.Is(err, ErrLimit) {
			t.Errorf("Compose(%v, false, %x, %v) = %v, want %v", tt.form, tt.coef, tt.exp, err, ErrLimit)
		}
		if d.String() != "7" {
			t.Errorf("Compose() modified the decimal on failure to %q", d)
		}
	}
}
