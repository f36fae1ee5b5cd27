package util

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:        "$0",
		999:      "$999",
		1000:     "$1,000",
		12345.6:  "$12,346",
		85000:    "$85,000",
		1234567:  "$1,234,567",
		-2500.25: "-$2,500",
	}
	for in, want := range cases {
		if got := FormatCurrency(in); got != want {
			t.Fatalf("FormatCurrency(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(12345.5); got != "12,345.50" {
		t.Fatalf("FormatAmount = %q", got)
	}
	if got := FormatAmount(7); got != "7.00" {
		t.Fatalf("FormatAmount = %q", got)
	}
}

func TestRoundMoney(t *testing.T) {
	if got := RoundMoney(0.1 + 0.2); got != 0.3 {
		t.Fatalf("RoundMoney = %v", got)
	}
}
