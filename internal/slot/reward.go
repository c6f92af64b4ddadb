package slot

import (
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Calculator turns rule matches into a prize.
type Calculator struct {
	cfg   *Config
	rules map[string]Rule
}

// NewCalculator indexes the rules of cfg by name.
func NewCalculator(cfg *Config) *Calculator {
	rules := make(map[string]Rule, len(cfg.Rules))
	for _, r := range cfg.Rules {
		rules[r.Name] = r
	}
	return &Calculator{cfg: cfg, rules: rules}
}

// Reward sums the per-symbol prizes and then applies the bonus symbol once
// to the total. An empty match map always pays zero.
func (c *Calculator) Reward(bet decimal.Decimal, matches MatchMap, bonus string) (decimal.Decimal, error) {
	if len(matches) == 0 {
		return decimal.Zero, nil
	}
	total := decimal.Zero
	for _, symbol := range slices.Sorted(maps.Keys(matches)) {
		prize, err := c.symbolReward(bet, symbol, matches[symbol])
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(prize)
	}
	return c.ApplyBonus(total, bonus), nil
}

// symbolReward folds the rule list of one symbol: a count rule adds
// bet * symbol multiplier * rule multiplier, an area rule multiplies the
// running subtotal.
func (c *Calculator) symbolReward(bet decimal.Decimal, symbol string, names []string) (decimal.Decimal, error) {
	sym, ok := c.cfg.Symbol(symbol)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	if !sym.IsStandard() {
		return decimal.Zero, fmt.Errorf("%w: %q is %s", ErrSymbolType, symbol, sym.Kind)
	}

	prize := decimal.Zero
	for _, name := range names {
		rule, ok := c.rules[name]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}
		switch rule.When {
		case WhenCount:
			prize = prize.Add(bet.Mul(sym.Multiplier).Mul(rule.Multiplier))
		case WhenArea:
			prize = prize.Mul(rule.Multiplier)
		default:
			return decimal.Zero, fmt.Errorf("%w: rule %q has condition %q", ErrConfig, name, rule.When)
		}
	}
	return prize, nil
}

// ApplyBonus applies the effect of the named bonus symbol to total.
// Miss impacts, unknown keys and non-bonus symbols leave total unchanged.
func (c *Calculator) ApplyBonus(total decimal.Decimal, bonus string) decimal.Decimal {
	if bonus == "" {
		return total
	}
	sym, ok := c.cfg.Symbol(bonus)
	if !ok || !sym.IsBonus() {
		return total
	}
	switch sym.Impact {
	case ImpactExtra:
		return total.Add(sym.Extra)
	case ImpactMultiply:
		return total.Mul(sym.Multiplier)
	default:
		return total
	}
}
