package slot

import "fmt"

// Generator fills matrices cell by cell through a Selector.
type Generator struct {
	selector *Selector
	cfg      *Config
}

// NewGenerator builds a generator for the symbols of cfg.
func NewGenerator(cfg *Config, selector *Selector) *Generator {
	return &Generator{selector: selector, cfg: cfg}
}

// Generate returns a rows x columns matrix. Cells are filled column by
// column; once a bonus symbol is placed every later draw excludes the bonus
// table, so a matrix holds at most one bonus symbol.
func (g *Generator) Generate(rows, columns int) (Matrix, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: matrix size %dx%d", ErrConfig, rows, columns)
	}
	m := make(Matrix, rows)
	for r := range m {
		m[r] = make([]string, columns)
	}

	bonusPlaced := false
	for c := 0; c < columns; c++ {
		for r := 0; r < rows; r++ {
			key, err := g.selector.Select(r, c, !bonusPlaced)
			if err != nil {
				return nil, fmt.Errorf("cell %d:%d: %w", r, c, err)
			}
			m[r][c] = key
			if g.cfg.isBonus(key) {
				bonusPlaced = true
			}
		}
	}
	return m, nil
}
