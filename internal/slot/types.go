// types.go
package slot

import "github.com/shopspring/decimal"

// SymbolKind discriminates the symbol variants.
type SymbolKind uint8

const (
	KindStandard SymbolKind = iota + 1
	KindBonus
)

func (k SymbolKind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// Impact is the effect a bonus symbol has on the total reward.
type Impact string

const (
	ImpactMultiply Impact = "multiply_reward"
	ImpactExtra    Impact = "extra_bonus"
	ImpactMiss     Impact = "miss"
)

// Symbol is one entry of the symbol table. Impact and Extra are only
// meaningful when Kind == KindBonus.
type Symbol struct {
	Key        string
	Kind       SymbolKind
	Multiplier decimal.Decimal
	Impact     Impact
	Extra      decimal.Decimal
}

func (s Symbol) IsStandard() bool { return s.Kind == KindStandard }
func (s Symbol) IsBonus() bool    { return s.Kind == KindBonus }

// When is the trigger condition of a winning rule.
type When string

const (
	WhenCount When = "same_symbols"   // symbol repeated exactly Count times anywhere
	WhenArea  When = "linear_symbols" // symbol fills one of Areas
)

// Group is the reporting shape of a rule; it does not affect matching.
type Group string

const (
	GroupSame       Group = "same_symbols"
	GroupHorizontal Group = "horizontally_linear_symbols"
	GroupVertical   Group = "vertically_linear_symbols"
	GroupDiagLTR    Group = "ltr_diagonally_linear_symbols"
	GroupDiagRTL    Group = "rtl_diagonally_linear_symbols"
)

// Rule is a named winning combination.
// Count is set for WhenCount rules, Areas for WhenArea rules; each area is a
// list of "row:column" coordinates.
type Rule struct {
	Name       string
	When       When
	Group      Group
	Multiplier decimal.Decimal
	Count      int
	Areas      [][]string
}

// Weight is one symbol of a draw population.
type Weight struct {
	Symbol string
	Weight int
}

// Weights is an ordered weight table; the selector walks it in order.
type Weights []Weight

// Total sums all weights.
func (w Weights) Total() int {
	total := 0
	for _, e := range w {
		total += e.Weight
	}
	return total
}

// CellWeights is the standard weight table of one (row, column).
type CellWeights struct {
	Row     int
	Column  int
	Weights Weights
}

// Probabilities holds per-cell standard tables and the global bonus table.
type Probabilities struct {
	Standard []CellWeights
	Bonus    Weights
}

// Config is a fully loaded, validated game configuration.
type Config struct {
	Rows          int
	Columns       int
	Symbols       map[string]Symbol
	Probabilities Probabilities
	Rules         []Rule // declaration order
}

// Symbol looks up a symbol by key.
func (c *Config) Symbol(key string) (Symbol, bool) {
	s, ok := c.Symbols[key]
	return s, ok
}

func (c *Config) isStandard(key string) bool {
	s, ok := c.Symbols[key]
	return ok && s.IsStandard()
}

func (c *Config) isBonus(key string) bool {
	s, ok := c.Symbols[key]
	return ok && s.IsBonus()
}

// Matrix is a rows x columns grid of symbol keys.
type Matrix [][]string

func (m Matrix) Rows() int { return len(m) }

func (m Matrix) Columns() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// MatchMap maps a symbol key to the rule names it satisfied, in discovery order.
type MatchMap map[string][]string

// Warning reports an area coordinate set that was skipped.
type Warning struct {
	Rule   string
	Set    int
	Reason string
}

// Result is the outcome of one evaluation pass.
// BonusSymbol is empty when no bonus was applied.
type Result struct {
	Matrix      Matrix
	Reward      decimal.Decimal
	Matches     MatchMap
	BonusSymbol string
	Warnings    []Warning
}
