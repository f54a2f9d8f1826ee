package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func mustMoney(t *testing.T, value string) Money {
	t.Helper()
	m, err := NewMoneyFromString(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestConstructors(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	m := NewMoneyFromDecimal(d)
	if !m.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m.Decimal, d)
	}

	if got := mustMoney(t, "123.45").String(); got != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", got)
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRounding(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"567.7876", "567.79"},
	}
	for _, c := range cases {
		got := mustMoney(t, c.in).Round().String()
		if got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestSettled(t *testing.T) {
	for _, v := range []string{"0.01", "0", "-3"} {
		if !mustMoney(t, v).Settled() {
			t.Fatalf("%s should be settled", v)
		}
	}
	if mustMoney(t, "0.02").Settled() {
		t.Fatalf("0.02 should not be settled")
	}
}

func TestStringAndFormat(t *testing.T) {
	m := mustMoney(t, "1234567.891")
	if got := m.String(); got != "1234567.89" {
		t.Fatalf("String got %s", got)
	}
	if got := m.Format(); got != "$1,234,567.89" {
		t.Fatalf("Format got %s", got)
	}
	if got := m.Whole(); got != "1,234,568" {
		t.Fatalf("Whole got %s", got)
	}
	if got := mustMoney(t, "100000").Whole(); got != "100,000" {
		t.Fatalf("Whole got %s", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"0", "$0.00"},
		{"100", "$100.00"},
		{"567.7876", "$567.79"},
		{"999.999", "$1,000.00"},
		{"-1234.5", "-$1,234.50"},
		{"-0.004", "$0.00"},
	}
	for _, c := range cases {
		if got := mustMoney(t, c.in).Format(); got != c.out {
			t.Fatalf("Format(%s) got %s want %s", c.in, got, c.out)
		}
	}
}
