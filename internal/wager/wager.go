package wager

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidBet is returned for non-numeric or non-positive betting amounts.
var ErrInvalidBet = errors.New("invalid betting amount")

// Wager is the stake of one round.
type Wager struct {
	Amount decimal.Decimal
}

// Parse reads a betting amount such as "100" or "2.50".
func Parse(s string) (Wager, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Wager{}, fmt.Errorf("%w: betting amount is required", ErrInvalidBet)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Wager{}, fmt.Errorf("%w: %q must be a valid number", ErrInvalidBet, s)
	}
	if !d.IsPositive() {
		return Wager{}, fmt.Errorf("%w: %s must be a positive number", ErrInvalidBet, d)
	}
	return Wager{Amount: d}, nil
}

// TotalForRounds returns how much n rounds cost.
func (w Wager) TotalForRounds(n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	return w.Amount.Mul(decimal.NewFromInt(int64(n)))
}

func (w Wager) String() string { return w.Amount.String() }
