package slot

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestPickInvalidTables(t *testing.T) {
	cases := []struct {
		name string
		w    Weights
	}{
		{"empty", nil},
		{"all zero", Weights{{"A", 0}, {"B", 0}}},
		{"negative", Weights{{"A", 3}, {"B", -1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Pick(tc.w, NewSeededRNG(1)); !errors.Is(err, ErrInvalidDraw) {
				t.Fatalf("want ErrInvalidDraw, got %v", err)
			}
		})
	}
}

func TestPickBounds(t *testing.T) {
	w := Weights{{"A", 1}, {"B", 2}, {"C", 3}}
	// r = IntN(6)+1, so IntN 0 selects the first symbol and 5 the last.
	cases := []struct {
		n    int
		want string
	}{
		{0, "A"}, {1, "B"}, {2, "B"}, {3, "C"}, {5, "C"},
	}
	for _, tc := range cases {
		got, err := Pick(w, &fixedRNG{vals: []int{tc.n}})
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Fatalf("IntN=%d: got %s want %s", tc.n, got, tc.want)
		}
	}
}

func TestPickSkipsZeroWeight(t *testing.T) {
	w := Weights{{"A", 0}, {"B", 1}, {"C", 0}}
	rng := NewSeededRNG(7)
	for i := 0; i < 1000; i++ {
		got, err := Pick(w, rng)
		if err != nil {
			t.Fatal(err)
		}
		if got != "B" {
			t.Fatalf("zero-weight symbol %s drawn", got)
		}
	}
}

func TestPickStatApprox(t *testing.T) {
	const n = 100000
	w := Weights{{"A", 1}, {"B", 3}}
	rng := NewSeededRNG(42)
	hitA := 0
	for i := 0; i < n; i++ {
		got, err := Pick(w, rng)
		if err != nil {
			t.Fatal(err)
		}
		if got == "A" {
			hitA++
		}
	}
	freq := float64(hitA) / float64(n)
	// should be around 0.25
	if diff := freq - 0.25; diff > 0.01 || diff < -0.01 {
		t.Fatalf("freq=%f not close to 0.25", freq)
	}
}

func TestPickReturnsMember(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		w := make(Weights, n)
		positive := false
		for i := range w {
			w[i] = Weight{
				Symbol: string(rune('A' + i)),
				Weight: rapid.IntRange(0, 50).Draw(t, "weight"),
			}
			positive = positive || w[i].Weight > 0
		}
		if !positive {
			w[0].Weight = 1
		}
		seed := rapid.Uint64().Draw(t, "seed")

		got, err := Pick(w, NewSeededRNG(seed))
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		for _, e := range w {
			if e.Symbol == got {
				if e.Weight == 0 {
					t.Fatalf("picked zero-weight symbol %s", got)
				}
				return
			}
		}
		t.Fatalf("picked %s outside the table", got)
	})
}

func TestSelectorUsesCellTable(t *testing.T) {
	p := NewProvider(deterministicConfig().Probabilities)
	s := NewSelector(p, NewSeededRNG(3))
	got, err := s.Select(1, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != "E" {
		t.Fatalf("got %s want E", got)
	}
}
