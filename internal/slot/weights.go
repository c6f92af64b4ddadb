package slot

import "fmt"

// Provider supplies the draw population of a cell: the position-specific
// standard table, optionally followed by the global bonus table.
type Provider struct {
	standard []CellWeights
	bonus    Weights
}

// NewProvider wraps a probability table.
func NewProvider(p Probabilities) *Provider {
	return &Provider{standard: p.Standard, bonus: p.Bonus}
}

// Standard returns the table declared for (row, column). When no entry
// matches, the first declared entry is used; more than one match is a
// configuration error.
func (p *Provider) Standard(row, column int) (Weights, error) {
	if len(p.standard) == 0 {
		return nil, ErrNoStandardWeights
	}
	var found *CellWeights
	for i := range p.standard {
		c := &p.standard[i]
		if c.Row != row || c.Column != column {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: row=%d column=%d", ErrDuplicateCell, row, column)
		}
		found = c
	}
	if found == nil {
		return p.standard[0].Weights, nil
	}
	return found.Weights, nil
}

// Bonus returns the global bonus table.
func (p *Provider) Bonus() Weights { return p.bonus }

// Weights returns the union of the standard table for the cell and, when
// includeBonus is set, the bonus table. Standard entries come first.
func (p *Provider) Weights(row, column int, includeBonus bool) (Weights, error) {
	std, err := p.Standard(row, column)
	if err != nil {
		return nil, err
	}
	if !includeBonus || len(p.bonus) == 0 {
		return std, nil
	}
	out := make(Weights, 0, len(std)+len(p.bonus))
	out = append(out, std...)
	return append(out, p.bonus...), nil
}
