package usecase

import (
	"testing"

	"TradeGate/internal/domain/models"
)

func TestIsUSD(t *testing.T) {
	cases := []struct {
		currency string
		want     bool
	}{
		{"USD", true},
		{"usd", true},
		{" USD ", true},
		{"EUR", false},
		{"", false},
	}
	for _, tc := range cases {
		got := IsUSD(models.CalendarEvent{Currency: tc.currency})
		if got != tc.want {
			t.Fatalf("IsUSD(%q) = %v, want %v", tc.currency, got, tc.want)
		}
	}
}

func TestIsHighImpact(t *testing.T) {
	cases := []struct {
		impact string
		want   bool
	}{
		{"High", true},
		{"high", true},
		{"Very High Impact", true},
		{"3", true},
		{"Medium", false},
		{"2", false},
		{"", false},
	}
	for _, tc := range cases {
		got := IsHighImpact(models.CalendarEvent{Impact: tc.impact})
		if got != tc.want {
			t.Fatalf("IsHighImpact(%q) = %v, want %v", tc.impact, got, tc.want)
		}
	}
}

func TestIsFOMC(t *testing.T) {
	cases := []struct {
		title string
		want  bool
	}{
		{"FOMC Statement", true},
		{"Fed Funds Rate", true},
		{"Federal Open Market Committee Minutes", true},
		{"Interest Rate Decision", false},
		{"Fed Interest Rate Decision", true},
		{"ECB Interest Rate Decision", false},
		{"Nonfarm Payrolls", false},
	}
	for _, tc := range cases {
		got := IsFOMC(models.CalendarEvent{Title: tc.title})
		if got != tc.want {
			t.Fatalf("IsFOMC(%q) = %v, want %v", tc.title, got, tc.want)
		}
	}
}
