// Package report renders round results and simulation stats as JSON.
package report

import (
	"bytes"
	stdjson "encoding/json"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/xtding233/slot-backend/internal/slot"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GameResult is the printed outcome of one round.
type GameResult struct {
	Matrix                     [][]string          `json:"matrix"`
	Reward                     float64             `json:"reward"`
	AppliedWinningCombinations map[string][]string `json:"applied_winning_combinations"`
	AppliedBonusSymbol         *string             `json:"applied_bonus_symbol"` // null when none
}

// FromResult converts an engine result; the reward is rounded to cents.
func FromResult(r slot.Result) GameResult {
	out := GameResult{
		Matrix:                     r.Matrix,
		Reward:                     r.Reward.Round(2).InexactFloat64(),
		AppliedWinningCombinations: map[string][]string(r.Matches),
	}
	if out.AppliedWinningCombinations == nil {
		out.AppliedWinningCombinations = map[string][]string{}
	}
	if r.BonusSymbol != "" {
		bonus := r.BonusSymbol
		out.AppliedBonusSymbol = &bonus
	}
	return out
}

// Simulation is the printed summary of a simulation run.
type Simulation struct {
	Rounds     int     `json:"rounds"`
	TotalStake float64 `json:"total_stake"`
	TotalWin   float64 `json:"total_win"`
	RTP        float64 `json:"rtp"`
	HitRate    float64 `json:"hit_rate"`
	BonusRate  float64 `json:"bonus_rate"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"stddev"`
	P50        float64 `json:"p50"`
	P90        float64 `json:"p90"`
	P99        float64 `json:"p99"`
	MaxWin     float64 `json:"max_win"`
}

func FromStats(st slot.Stats) Simulation {
	return Simulation{
		Rounds:     st.Rounds,
		TotalStake: st.TotalStake.Round(2).InexactFloat64(),
		TotalWin:   st.TotalWin.Round(2).InexactFloat64(),
		RTP:        st.RTP,
		HitRate:    st.HitRate,
		BonusRate:  st.BonusRate,
		Mean:       st.Mean,
		StdDev:     st.StdDev,
		P50:        st.P50,
		P90:        st.P90,
		P99:        st.P99,
		MaxWin:     st.MaxWin,
	}
}

// WriteResult pretty-prints r to w.
func WriteResult(w io.Writer, r slot.Result) error {
	return write(w, FromResult(r))
}

// WriteStats pretty-prints st to w.
func WriteStats(w io.Writer, st slot.Stats) error {
	return write(w, FromStats(st))
}

func write(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	// jsoniter indents empty maps across lines; reindent the compact form
	var buf bytes.Buffer
	if err := stdjson.Indent(&buf, b, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}
