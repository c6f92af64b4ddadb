package slot

// countStandard counts occurrences of each standard symbol. Bonus and
// unknown keys are not counted.
func countStandard(cfg *Config, m Matrix) map[string]int {
	counts := make(map[string]int)
	for _, row := range m {
		for _, key := range row {
			if cfg.isStandard(key) {
				counts[key]++
			}
		}
	}
	return counts
}

// CountMatches evaluates every "same symbols" rule: a symbol matches a rule
// when its occurrence count equals the rule's count exactly.
func CountMatches(cfg *Config, m Matrix) MatchMap {
	counts := countStandard(cfg, m)
	out := MatchMap{}
	for _, rule := range cfg.Rules {
		if rule.When != WhenCount {
			continue
		}
		for symbol, n := range counts {
			if n == rule.Count {
				out = out.with(symbol, rule.Name)
			}
		}
	}
	return out
}
