package slot

import (
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Engine evaluates matrices against one configuration. It holds no state
// between calls.
type Engine struct {
	cfg      *Config
	provider *Provider
	calc     *Calculator
	log      *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for skipped area rules.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine creates an engine for cfg.
func NewEngine(cfg *Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("slot: nil config")
	}
	e := &Engine{
		cfg:      cfg,
		provider: NewProvider(cfg.Probabilities),
		calc:     NewCalculator(cfg),
		log:      zap.NewNop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// Evaluate runs both evaluators on m, merges their matches (count first) and
// computes the reward. With no match the reward is zero and no bonus is
// reported, even when one is on the matrix.
func (e *Engine) Evaluate(bet decimal.Decimal, m Matrix) (Result, error) {
	counted := CountMatches(e.cfg, m)
	linear, warnings := AreaMatches(e.cfg, m)
	for _, w := range warnings {
		e.log.Warn("area rule skipped",
			zap.String("rule", w.Rule),
			zap.Int("set", w.Set),
			zap.String("reason", w.Reason),
		)
	}

	matches := Merge(counted, linear)
	if len(matches) == 0 {
		return Result{Matrix: m, Reward: decimal.Zero, Matches: matches, Warnings: warnings}, nil
	}

	bonus := FindBonus(e.cfg, m)
	reward, err := e.calc.Reward(bet, matches, bonus)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Matrix:      m,
		Reward:      reward,
		Matches:     matches,
		BonusSymbol: bonus,
		Warnings:    warnings,
	}, nil
}

// Play generates a matrix of the configured size with rng and evaluates it.
func (e *Engine) Play(bet decimal.Decimal, rng RandomSource) (Result, error) {
	gen := NewGenerator(e.cfg, NewSelector(e.provider, rng))
	m, err := gen.Generate(e.cfg.Rows, e.cfg.Columns)
	if err != nil {
		return Result{}, err
	}
	e.log.Debug("matrix generated", zap.Any("matrix", m))
	return e.Evaluate(bet, m)
}
