package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestArithmetic(t *testing.T) {
	annual := NewMoney(825)
	if got := annual.Times(10).Add(NewMoney(40000)).String(); got != "48250.00" {
		t.Fatalf("Times/Add got %s", got)
	}
	if got := NewMoney(10.10).Sub(NewMoney(15.15)).Abs().String(); got != "5.05" {
		t.Fatalf("Sub/Abs got %s", got)
	}
	if got := NewMoney(1675).Share(NewMoney(6700)).StringFixed(2); got != "25.00" {
		t.Fatalf("Share got %s", got)
	}
	if got := NewMoney(5).Share(Zero()); !got.IsZero() {
		t.Fatalf("Share of zero total got %s", got)
	}
}

func TestComparisonsAndUtils(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(20)

	if !b.GreaterThan(a) || a.GreaterThan(b) {
		t.Fatalf("GreaterThan logic failure")
	}
	if !a.LessThan(b) || b.LessThan(a) {
		t.Fatalf("LessThan logic failure")
	}
	if !a.Equal(NewMoney(10)) || b.Equal(a) {
		t.Fatalf("Equal logic failure")
	}
	if !Zero().IsZero() {
		t.Fatalf("Zero should be zero")
	}
	if !Min(a, b).Equal(a) {
		t.Fatalf("Min failed")
	}
	if !Max(a, b).Equal(b) {
		t.Fatalf("Max failed")
	}
}

func TestGroupedAndFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"999.999", "1,000.00"},
		{"32500", "32,500.00"},
		{"1234567.891", "1,234,567.89"},
		{"-6750", "-6,750.00"},
		{"-0.001", "0.00"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		if got := m.Grouped(); got != c.want {
			t.Fatalf("Grouped(%s) got %s want %s", c.in, got, c.want)
		}
	}
	if got := NewMoney(40825).Format("CAD"); got != "40,825.00 CAD" {
		t.Fatalf("Format got %s", got)
	}
	if got := NewMoney(1.5).Format(""); got != "1.50" {
		t.Fatalf("Format without code got %s", got)
	}
}
