package slot

import (
	"errors"
	"fmt"
)

// ErrConfig is the configuration inconsistency kind; every error below that
// describes a bad configuration wraps it.
var ErrConfig = errors.New("slot: configuration inconsistency")

var (
	ErrDuplicateCell     = fmt.Errorf("%w: repeated row and column in standard probabilities", ErrConfig)
	ErrNoStandardWeights = fmt.Errorf("%w: no standard symbol probabilities", ErrConfig)
	ErrSymbolType        = fmt.Errorf("%w: standard symbol required", ErrConfig)
	ErrUnknownSymbol     = fmt.Errorf("%w: unknown symbol", ErrConfig)
	ErrUnknownRule       = fmt.Errorf("%w: unknown winning rule", ErrConfig)
)

var (
	// ErrInvalidDraw is returned for an empty weight table, a negative weight
	// or a non-positive total weight.
	ErrInvalidDraw = errors.New("slot: invalid draw input")
	// ErrDrawExhausted means the weighted walk ended below the drawn value.
	ErrDrawExhausted = errors.New("slot: invalid random value")
)
