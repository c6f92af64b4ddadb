package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation wraps every semantic problem found by ValidateRaw.
	ErrValidation = errors.New("config validation failed")
	// ErrDecode is returned for unknown type/impact/when discriminants.
	ErrDecode = errors.New("config decode failed")
)

const (
	typeStandard = "standard"
	typeBonus    = "bonus"

	impactMultiply = "multiply_reward"
	impactExtra    = "extra_bonus"
	impactMiss     = "miss"

	whenSame   = "same_symbols"
	whenLinear = "linear_symbols"
)

// ValidateRaw checks semantic constraints of a RawConfig. Repeated
// (row, column) probability entries are left to the draw step.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	// size
	if cfg.Rows < 1 {
		errs = append(errs, "rows must be >= 1")
	}
	if cfg.Columns < 1 {
		errs = append(errs, "columns must be >= 1")
	}

	// symbols
	if len(cfg.Symbols) == 0 {
		errs = append(errs, "symbols must not be empty")
	}
	for _, e := range cfg.Symbols {
		s := e.Value
		switch s.Type {
		case typeStandard:
			if !positive(s.RewardMultiplier) {
				errs = append(errs, fmt.Sprintf("symbols.%s.reward_multiplier must be > 0", e.Key))
			}
		case typeBonus:
			switch s.Impact {
			case impactMultiply:
				if !positive(s.RewardMultiplier) {
					errs = append(errs, fmt.Sprintf("symbols.%s.reward_multiplier must be > 0 for impact=%s", e.Key, impactMultiply))
				}
			case impactExtra:
				if s.Extra == nil {
					errs = append(errs, fmt.Sprintf("symbols.%s.extra is required for impact=%s", e.Key, impactExtra))
				}
			case impactMiss:
			default:
				errs = append(errs, fmt.Sprintf("symbols.%s.impact must be one of: %s, %s, %s", e.Key, impactMultiply, impactExtra, impactMiss))
			}
		default:
			errs = append(errs, fmt.Sprintf("symbols.%s.type must be one of: %s, %s", e.Key, typeStandard, typeBonus))
		}
	}

	// probabilities
	if len(cfg.Probabilities.StandardSymbols) == 0 {
		errs = append(errs, "probabilities.standard_symbols must not be empty")
	}
	for i, c := range cfg.Probabilities.StandardSymbols {
		path := fmt.Sprintf("probabilities.standard_symbols[%d]", i)
		if c.Row < 0 || c.Column < 0 {
			errs = append(errs, path+": row and column must be >= 0")
		}
		errs = append(errs, checkWeights(cfg, path, c.Symbols, typeStandard)...)
	}
	errs = append(errs, checkWeights(cfg, "probabilities.bonus_symbols", cfg.Probabilities.BonusSymbols.Symbols, typeBonus)...)

	// win_combinations
	for _, e := range cfg.WinCombinations {
		r := e.Value
		path := "win_combinations." + e.Key
		if !positive(r.RewardMultiplier) {
			errs = append(errs, path+".reward_multiplier must be > 0")
		}
		switch r.When {
		case whenSame:
			if r.Count < 1 || r.Count > cfg.Rows*cfg.Columns {
				errs = append(errs, fmt.Sprintf("%s.count must satisfy 1 <= count <= %d", path, cfg.Rows*cfg.Columns))
			}
		case whenLinear:
			if len(r.CoveredAreas) == 0 {
				errs = append(errs, path+".covered_areas must not be empty for when="+whenLinear)
			}
		default:
			errs = append(errs, fmt.Sprintf("%s.when must be one of: %s, %s", path, whenSame, whenLinear))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(errs, "; "))
	}
	return nil
}

// checkWeights verifies that a weight table only names declared symbols of
// the given type and has no negative weight.
func checkWeights(cfg RawConfig, path string, w Ordered[int], wantType string) []string {
	var errs []string
	for _, e := range w {
		s, ok := cfg.Symbols.Get(e.Key)
		switch {
		case !ok:
			errs = append(errs, fmt.Sprintf("%s: unknown symbol %q", path, e.Key))
		case s.Type != wantType:
			errs = append(errs, fmt.Sprintf("%s: symbol %q is not %s", path, e.Key, wantType))
		}
		if e.Value < 0 {
			errs = append(errs, fmt.Sprintf("%s: weight of %q must be >= 0", path, e.Key))
		}
	}
	return errs
}

func positive(a *Amount) bool {
	return a != nil && a.IsPositive()
}
