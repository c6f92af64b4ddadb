package wager

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100", "100"},
		{" 2.50 ", "2.5"},
		{"0.01", "0.01"},
	}
	for _, tc := range cases {
		w, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if !w.Amount.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("%q: got %s want %s", tc.in, w, tc.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "0", "-5", "1e", "NaN"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidBet) {
			t.Fatalf("%q: want ErrInvalidBet, got %v", in, err)
		}
	}
}

func TestTotalForRounds(t *testing.T) {
	w, err := Parse("2.5")
	if err != nil {
		t.Fatal(err)
	}
	if got := w.TotalForRounds(4); !got.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("4 rounds: %s", got)
	}
	if got := w.TotalForRounds(0); !got.IsZero() {
		t.Fatalf("0 rounds: %s", got)
	}
}
