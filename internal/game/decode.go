package game

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xtding233/slot-backend/internal/slot"
)

// Decode converts a raw config into the engine model. Symbol, weight and rule
// order follow the file.
func Decode(raw RawConfig) (*slot.Config, error) {
	cfg := &slot.Config{
		Rows:    raw.Rows,
		Columns: raw.Columns,
		Symbols: make(map[string]slot.Symbol, len(raw.Symbols)),
	}

	for _, e := range raw.Symbols {
		sym, err := decodeSymbol(e.Key, e.Value)
		if err != nil {
			return nil, err
		}
		cfg.Symbols[e.Key] = sym
	}

	for _, c := range raw.Probabilities.StandardSymbols {
		cfg.Probabilities.Standard = append(cfg.Probabilities.Standard, slot.CellWeights{
			Row:     c.Row,
			Column:  c.Column,
			Weights: toWeights(c.Symbols),
		})
	}
	cfg.Probabilities.Bonus = toWeights(raw.Probabilities.BonusSymbols.Symbols)

	for _, e := range raw.WinCombinations {
		rule, err := decodeRule(e.Key, e.Value)
		if err != nil {
			return nil, err
		}
		cfg.Rules = append(cfg.Rules, rule)
	}
	return cfg, nil
}

func decodeSymbol(key string, s RawSymbol) (slot.Symbol, error) {
	out := slot.Symbol{Key: key, Multiplier: amount(s.RewardMultiplier), Extra: amount(s.Extra)}
	switch s.Type {
	case typeStandard:
		out.Kind = slot.KindStandard
		return out, nil
	case typeBonus:
		out.Kind = slot.KindBonus
	default:
		return slot.Symbol{}, fmt.Errorf("%w: symbol %q has type %q", ErrDecode, key, s.Type)
	}

	switch s.Impact {
	case impactMultiply:
		out.Impact = slot.ImpactMultiply
	case impactExtra:
		out.Impact = slot.ImpactExtra
	case impactMiss:
		out.Impact = slot.ImpactMiss
	default:
		return slot.Symbol{}, fmt.Errorf("%w: symbol %q has impact %q", ErrDecode, key, s.Impact)
	}
	return out, nil
}

func decodeRule(name string, r RawRule) (slot.Rule, error) {
	out := slot.Rule{
		Name:       name,
		Group:      slot.Group(r.Group),
		Multiplier: amount(r.RewardMultiplier),
	}
	switch r.When {
	case whenSame:
		out.When = slot.WhenCount
		out.Count = r.Count
	case whenLinear:
		out.When = slot.WhenArea
		out.Areas = r.CoveredAreas
	default:
		return slot.Rule{}, fmt.Errorf("%w: win combination %q has when %q", ErrDecode, name, r.When)
	}
	return out, nil
}

func toWeights(o Ordered[int]) slot.Weights {
	w := make(slot.Weights, 0, len(o))
	for _, e := range o {
		w = append(w, slot.Weight{Symbol: e.Key, Weight: e.Value})
	}
	return w
}

func amount(a *Amount) decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	return a.Decimal
}
