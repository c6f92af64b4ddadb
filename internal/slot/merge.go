package slot

// with returns mm with rule appended to symbol's list.
func (mm MatchMap) with(symbol, rule string) MatchMap {
	if mm == nil {
		mm = MatchMap{}
	}
	mm[symbol] = append(mm[symbol], rule)
	return mm
}

// Merge folds the maps left to right into a fresh map. Lists of a symbol
// present in several maps are concatenated in argument order, without
// deduplication. The inputs are not modified.
func Merge(maps ...MatchMap) MatchMap {
	out := MatchMap{}
	for _, mm := range maps {
		for symbol, rules := range mm {
			for _, rule := range rules {
				out = out.with(symbol, rule)
			}
		}
	}
	return out
}
