package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/xtding233/slot-backend/internal/conf"
	"github.com/xtding233/slot-backend/internal/game"
	"github.com/xtding233/slot-backend/internal/report"
	"github.com/xtding233/slot-backend/internal/slot"
	"github.com/xtding233/slot-backend/internal/wager"
)

type options struct {
	config   string
	bet      string
	seed     uint64
	simulate int
}

func parseFlags(args []string, s *conf.Settings) (options, error) {
	var o options
	fs := flag.NewFlagSet("slot", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", game.DefaultFile, "game config file, relative to SLOT_CONFIG_DIR")
	fs.StringVar(&o.bet, "betting-amount", "", "stake of one round (required)")
	fs.Uint64Var(&o.seed, "seed", s.Seed, "random seed; 0 uses crypto/rand")
	fs.IntVar(&o.simulate, "simulate", 0, "play N rounds and print statistics instead of one result")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.simulate < 0 {
		return options{}, fmt.Errorf("simulate must be >= 0, got %d", o.simulate)
	}
	return o, nil
}

func run(args []string, stdout io.Writer) error {
	settings, err := conf.Load()
	if err != nil {
		return err
	}
	opts, err := parseFlags(args, settings)
	if err != nil {
		return err
	}
	bet, err := wager.Parse(opts.bet)
	if err != nil {
		return err
	}

	logger, err := settings.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := game.NewLoader(settings.ConfigDir).Load(opts.config)
	if err != nil {
		return err
	}
	engine, err := slot.NewEngine(cfg, slot.WithLogger(logger))
	if err != nil {
		return err
	}

	rng := slot.DefaultRNG()
	if opts.seed != 0 {
		rng = slot.NewSeededRNG(opts.seed)
	}

	if opts.simulate > 0 {
		logger.Info("simulation started",
			zap.Int("rounds", opts.simulate),
			zap.String("bet", bet.String()),
			zap.String("stake", bet.TotalForRounds(opts.simulate).String()),
		)
		st, err := slot.Simulate(engine, bet.Amount, opts.simulate, rng)
		if err != nil {
			return err
		}
		return report.WriteStats(stdout, st)
	}

	res, err := engine.Play(bet.Amount, rng)
	if err != nil {
		return err
	}
	logger.Debug("round finished",
		zap.String("reward", res.Reward.String()),
		zap.String("bonus", res.BonusSymbol),
	)
	return report.WriteResult(stdout, res)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "slot:", err)
		os.Exit(1)
	}
}
