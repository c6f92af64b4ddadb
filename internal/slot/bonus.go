package slot

// FindBonus scans m in row-major order and returns the first bonus symbol
// whose impact is not a miss, or "" when there is none.
func FindBonus(cfg *Config, m Matrix) string {
	for _, row := range m {
		for _, key := range row {
			sym, ok := cfg.Symbol(key)
			if ok && sym.IsBonus() && sym.Impact != ImpactMiss {
				return key
			}
		}
	}
	return ""
}
