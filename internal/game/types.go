// types.go
package game

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Raw config loaded from JSON or YAML; mirrors the file schema.
type RawConfig struct {
	Columns         int                `yaml:"columns"`
	Rows            int                `yaml:"rows"`
	Symbols         Ordered[RawSymbol] `yaml:"symbols"`
	Probabilities   RawProbabilities   `yaml:"probabilities"`
	WinCombinations Ordered[RawRule]   `yaml:"win_combinations"`
}

type RawSymbol struct {
	Type             string  `yaml:"type"` // "standard" | "bonus"
	RewardMultiplier *Amount `yaml:"reward_multiplier,omitempty"`
	Impact           string  `yaml:"impact,omitempty"` // bonus only
	Extra            *Amount `yaml:"extra,omitempty"`  // extra_bonus only
}

type RawProbabilities struct {
	StandardSymbols []RawCell `yaml:"standard_symbols"`
	BonusSymbols    RawBonus  `yaml:"bonus_symbols"`
}

type RawCell struct {
	Column  int          `yaml:"column"`
	Row     int          `yaml:"row"`
	Symbols Ordered[int] `yaml:"symbols"`
}

type RawBonus struct {
	Symbols Ordered[int] `yaml:"symbols"`
}

type RawRule struct {
	RewardMultiplier *Amount    `yaml:"reward_multiplier"`
	When             string     `yaml:"when"` // "same_symbols" | "linear_symbols"
	Count            int        `yaml:"count,omitempty"`
	Group            string     `yaml:"group"`
	CoveredAreas     [][]string `yaml:"covered_areas,omitempty"`
}

// Amount is a decimal read from its literal text, so 1.2 stays exactly 1.2.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", n.Line)
	}
	d, err := decimal.NewFromString(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %q is not a number", n.Line, n.Value)
	}
	a.Decimal = d
	return nil
}

// Entry is one key/value pair of an Ordered mapping.
type Entry[V any] struct {
	Key   string
	Value V
}

// Ordered is a mapping that keeps the order of the file. Weight tables are
// walked in this order and rules are evaluated in it.
type Ordered[V any] []Entry[V]

func (o *Ordered[V]) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", n.Line)
	}
	seen := make(map[string]bool, len(n.Content)/2)
	out := make(Ordered[V], 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		var key string
		if err := k.Decode(&key); err != nil {
			return err
		}
		if seen[key] {
			return fmt.Errorf("line %d: duplicate key %q", k.Line, key)
		}
		seen[key] = true

		var val V
		if err := v.Decode(&val); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		out = append(out, Entry[V]{Key: key, Value: val})
	}
	*o = out
	return nil
}

// Get returns the value stored under key.
func (o Ordered[V]) Get(key string) (V, bool) {
	for _, e := range o {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}
