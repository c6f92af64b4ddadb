package slot

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord is a matrix position.
type Coord struct {
	Row    int
	Column int
}

// ParseCoord parses the "row:column" form used by covered areas.
func ParseCoord(s string) (Coord, error) {
	r, c, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Coord{}, fmt.Errorf("coordinate %q: want row:column", s)
	}
	row, err := strconv.Atoi(r)
	if err != nil {
		return Coord{}, fmt.Errorf("coordinate %q: bad row: %w", s, err)
	}
	col, err := strconv.Atoi(c)
	if err != nil {
		return Coord{}, fmt.Errorf("coordinate %q: bad column: %w", s, err)
	}
	return Coord{Row: row, Column: col}, nil
}

// resolveArea turns one coordinate set into positions inside m.
// The set must hold exactly one coordinate per matrix row.
func resolveArea(m Matrix, set []string) ([]Coord, error) {
	if len(set) != m.Rows() {
		return nil, fmt.Errorf("covered area size %d differs from matrix rows %d", len(set), m.Rows())
	}
	coords := make([]Coord, 0, len(set))
	for _, s := range set {
		pos, err := ParseCoord(s)
		if err != nil {
			return nil, err
		}
		if pos.Row < 0 || pos.Row >= m.Rows() || pos.Column < 0 || pos.Column >= len(m[pos.Row]) {
			return nil, fmt.Errorf("coordinate %q outside the matrix", s)
		}
		coords = append(coords, pos)
	}
	return coords, nil
}

// matchArea reports the standard symbol filling every position, if any.
func matchArea(cfg *Config, m Matrix, coords []Coord) (string, bool) {
	first := m[coords[0].Row][coords[0].Column]
	if !cfg.isStandard(first) {
		return "", false
	}
	for _, pos := range coords[1:] {
		if m[pos.Row][pos.Column] != first {
			return "", false
		}
	}
	return first, true
}

// AreaMatches evaluates every "linear symbols" rule. Each coordinate set is an
// independent check; a rule is recorded at most once per symbol. Malformed
// sets are skipped and reported as warnings.
func AreaMatches(cfg *Config, m Matrix) (MatchMap, []Warning) {
	out := MatchMap{}
	var warnings []Warning
	for _, rule := range cfg.Rules {
		if rule.When != WhenArea {
			continue
		}
		recorded := make(map[string]bool)
		for i, set := range rule.Areas {
			coords, err := resolveArea(m, set)
			if err != nil {
				warnings = append(warnings, Warning{Rule: rule.Name, Set: i, Reason: err.Error()})
				continue
			}
			symbol, ok := matchArea(cfg, m, coords)
			if !ok || recorded[symbol] {
				continue
			}
			recorded[symbol] = true
			out = out.with(symbol, rule.Name)
		}
	}
	return out, warnings
}
