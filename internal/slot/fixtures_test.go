package slot

import "github.com/shopspring/decimal"

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func standard(key, mult string) Symbol {
	return Symbol{Key: key, Kind: KindStandard, Multiplier: dec(mult)}
}

func bonusMultiply(key, mult string) Symbol {
	return Symbol{Key: key, Kind: KindBonus, Impact: ImpactMultiply, Multiplier: dec(mult)}
}

func bonusExtra(key, extra string) Symbol {
	return Symbol{Key: key, Kind: KindBonus, Impact: ImpactExtra, Extra: dec(extra)}
}

func symbolTable(syms ...Symbol) map[string]Symbol {
	out := make(map[string]Symbol, len(syms))
	for _, s := range syms {
		out[s.Key] = s
	}
	return out
}

func countRule(name string, count int, mult string) Rule {
	return Rule{Name: name, When: WhenCount, Group: GroupSame, Count: count, Multiplier: dec(mult)}
}

func areaRule(name string, group Group, mult string, areas ...[]string) Rule {
	return Rule{Name: name, When: WhenArea, Group: group, Multiplier: dec(mult), Areas: areas}
}

// testSymbols is the 3x3 symbol table used across the evaluation tests.
func testSymbols() map[string]Symbol {
	return symbolTable(
		standard("A", "5"),
		standard("B", "3"),
		standard("C", "2.5"),
		standard("D", "2"),
		standard("E", "1.2"),
		standard("F", "1"),
		bonusMultiply("10x", "10"),
		bonusMultiply("5x", "5"),
		bonusExtra("+1000", "1000"),
		bonusExtra("+500", "500"),
		Symbol{Key: "MISS", Kind: KindBonus, Impact: ImpactMiss},
	)
}

func testRules() []Rule {
	return []Rule{
		countRule("same_symbol_3_times", 3, "1"),
		countRule("same_symbol_4_times", 4, "2"),
		countRule("same_symbol_5_times", 5, "5"),
		countRule("same_symbol_6_times", 6, "8"),
		countRule("same_symbol_7_times", 7, "10"),
		countRule("same_symbol_8_times", 8, "15"),
		countRule("same_symbol_9_times", 9, "20"),
		areaRule("same_symbols_horizontally", GroupHorizontal, "2",
			[]string{"0:0", "0:1", "0:2"},
			[]string{"1:0", "1:1", "1:2"},
			[]string{"2:0", "2:1", "2:2"},
		),
		areaRule("same_symbols_vertically", GroupVertical, "2",
			[]string{"0:0", "1:0", "2:0"},
			[]string{"0:1", "1:1", "2:1"},
			[]string{"0:2", "1:2", "2:2"},
		),
		areaRule("same_symbols_diagonally_left_to_right", GroupDiagLTR, "5",
			[]string{"0:0", "1:1", "2:2"},
		),
		areaRule("same_symbols_diagonally_right_to_left", GroupDiagRTL, "5",
			[]string{"0:2", "1:1", "2:0"},
		),
	}
}

func uniformStandard() Weights {
	return Weights{{"A", 1}, {"B", 2}, {"C", 3}, {"D", 4}, {"E", 5}, {"F", 6}}
}

func testBonusWeights() Weights {
	return Weights{{"10x", 1}, {"5x", 2}, {"+1000", 3}, {"+500", 4}, {"MISS", 5}}
}

func testConfig() *Config {
	var cells []CellWeights
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			cells = append(cells, CellWeights{Row: r, Column: c, Weights: uniformStandard()})
		}
	}
	return &Config{
		Rows:    3,
		Columns: 3,
		Symbols: testSymbols(),
		Probabilities: Probabilities{
			Standard: cells,
			Bonus:    testBonusWeights(),
		},
		Rules: testRules(),
	}
}

// single returns a table where only key can be drawn.
func single(key string) Weights {
	w := Weights{{"A", 0}, {"B", 0}, {"C", 0}, {"D", 0}, {"E", 0}, {"F", 0}}
	for i := range w {
		if w[i].Symbol == key {
			w[i].Weight = 1
		}
	}
	return w
}

// deterministicConfig pins every declared cell to one symbol and disables
// bonus draws. Undeclared cells fall back to the (0,0) entry.
func deterministicConfig() *Config {
	cfg := testConfig()
	cfg.Probabilities = Probabilities{
		Standard: []CellWeights{
			{Row: 0, Column: 0, Weights: single("A")},
			{Row: 1, Column: 0, Weights: single("B")},
			{Row: 2, Column: 0, Weights: single("C")},
			{Row: 0, Column: 1, Weights: single("D")},
			{Row: 1, Column: 1, Weights: single("E")},
			{Row: 2, Column: 1, Weights: single("F")},
			{Row: 0, Column: 2, Weights: single("A")},
			{Row: 1, Column: 2, Weights: single("B")},
			{Row: 2, Column: 2, Weights: single("C")},
		},
		Bonus: Weights{{"10x", 0}, {"5x", 0}, {"+1000", 0}, {"+500", 0}, {"MISS", 0}},
	}
	return cfg
}

// fixedRNG returns the queued values in order, then repeats the last one.
type fixedRNG struct {
	vals []int
	i    int
}

func (f *fixedRNG) IntN(n int) int {
	v := f.vals[len(f.vals)-1]
	if f.i < len(f.vals) {
		v = f.vals[f.i]
		f.i++
	}
	return v % n
}
