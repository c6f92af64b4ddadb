package slot

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Stats summarizes a simulation run.
type Stats struct {
	Rounds     int
	TotalStake decimal.Decimal
	TotalWin   decimal.Decimal
	RTP        float64 // TotalWin / TotalStake
	HitRate    float64 // share of rounds with a positive reward
	BonusRate  float64 // share of rounds where a bonus symbol was applied

	// per-round reward distribution
	Mean   float64
	Var    float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
	MaxWin float64
}

// calcStats computes mean/variance/percentiles of the per-round rewards.
func calcStats(xs []float64) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += v
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := v - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return cp[0]
		}
		if p >= 1 {
			return cp[n-1]
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return cp[i]
		}
		return cp[i]*(1-f) + cp[i+1]*f
	}

	return Stats{
		Mean:   mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
		MaxWin: cp[n-1],
	}
}

// Simulate plays rounds independent rounds of bet with one random source and
// returns summary stats. Rounds share nothing but rng.
func Simulate(e *Engine, bet decimal.Decimal, rounds int, rng RandomSource) (Stats, error) {
	if rounds <= 0 {
		return Stats{}, nil
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	samples := make([]float64, rounds)
	totalWin := decimal.Zero
	hits, bonuses := 0, 0
	for i := 0; i < rounds; i++ {
		res, err := e.Play(bet, rng)
		if err != nil {
			return Stats{}, err
		}
		totalWin = totalWin.Add(res.Reward)
		samples[i] = res.Reward.InexactFloat64()
		if res.Reward.IsPositive() {
			hits++
		}
		if res.BonusSymbol != "" {
			bonuses++
		}
	}

	st := calcStats(samples)
	st.Rounds = rounds
	st.TotalStake = bet.Mul(decimal.NewFromInt(int64(rounds)))
	st.TotalWin = totalWin
	if st.TotalStake.IsPositive() {
		st.RTP = totalWin.Div(st.TotalStake).InexactFloat64()
	}
	st.HitRate = float64(hits) / float64(rounds)
	st.BonusRate = float64(bonuses) / float64(rounds)
	return st, nil
}
