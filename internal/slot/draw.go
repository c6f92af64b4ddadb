package slot

import "fmt"

// validateWeights rejects tables the selector cannot draw from.
func validateWeights(w Weights) (int, error) {
	if len(w) == 0 {
		return 0, fmt.Errorf("%w: empty weight table", ErrInvalidDraw)
	}
	for _, e := range w {
		if e.Weight < 0 {
			return 0, fmt.Errorf("%w: negative weight %d for %q", ErrInvalidDraw, e.Weight, e.Symbol)
		}
	}
	total := w.Total()
	if total <= 0 {
		return 0, fmt.Errorf("%w: total weight %d", ErrInvalidDraw, total)
	}
	return total, nil
}

// Pick draws r uniformly in [1, total] and walks w in order, returning the
// first symbol whose cumulative weight reaches r. Zero weights are never picked.
func Pick(w Weights, rng RandomSource) (string, error) {
	total, err := validateWeights(w)
	if err != nil {
		return "", err
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	r := rng.IntN(total) + 1

	cum := 0
	for _, e := range w {
		cum += e.Weight
		if r <= cum {
			return e.Symbol, nil
		}
	}
	return "", ErrDrawExhausted
}

// Selector picks the symbol for one cell.
type Selector struct {
	provider *Provider
	rng      RandomSource
}

// NewSelector builds a selector. A nil rng uses DefaultRNG.
func NewSelector(p *Provider, rng RandomSource) *Selector {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Selector{provider: p, rng: rng}
}

// Select returns the symbol key drawn for (row, column).
func (s *Selector) Select(row, column int, includeBonus bool) (string, error) {
	w, err := s.provider.Weights(row, column, includeBonus)
	if err != nil {
		return "", err
	}
	return Pick(w, s.rng)
}
