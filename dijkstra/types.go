package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathlab/route"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNotFound indicates that no path leads from source to target.
	ErrNotFound = errors.New("dijkstra: no path found")

	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrEmptyTarget indicates that the target vertex ID is empty.
	ErrEmptyTarget = errors.New("dijkstra: target vertex ID is empty")

	// ErrOptionViolation indicates an invalid functional option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrRoundBudget indicates that WithMaxRounds was exhausted.
	ErrRoundBudget = errors.New("dijkstra: round budget exhausted")

	// ErrDistanceOverflow indicates that the next vertex to settle lies
	// farther than math.MaxInt64 from the source.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflows int64")
)

// Strategy selects how the frontier edge set is obtained each round.
type Strategy int

const (
	// StrategyIncremental maintains the frontier across rounds.
	StrategyIncremental Strategy = iota

	// StrategyRescan rebuilds the frontier with an explicit scan loop.
	StrategyRescan

	// StrategyDeclarative rebuilds the frontier as a filtered edge sequence.
	StrategyDeclarative
)

// Strategies lists every strategy, default first.
func Strategies() []Strategy {
	return []Strategy{StrategyIncremental, StrategyRescan, StrategyDeclarative}
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyIncremental:
		return "incremental"
	case StrategyRescan:
		return "rescan"
	case StrategyDeclarative:
		return "declarative"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name (case-insensitive) back to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if strings.EqualFold(strings.TrimSpace(name), s.String()) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// Options configures a ShortestPath call.
type Options struct {
	// Strategy selects the frontier strategy. Default StrategyIncremental.
	Strategy Strategy

	// Ctx allows cancellation; checked once per round.
	Ctx context.Context

	// MaxRounds caps the number of settled vertices (0 = no cap).
	MaxRounds int

	// Logger, if non-nil, receives a Debug entry per settled vertex.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for ShortestPath.
type Option func(*Options)

// DefaultOptions returns the incremental strategy, a background context,
// no round cap and no logger.
func DefaultOptions() Options {
	return Options{
		Strategy:  StrategyIncremental,
		Ctx:       context.Background(),
		MaxRounds: 0,
	}
}

// WithStrategy selects the frontier strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case StrategyIncremental, StrategyRescan, StrategyDeclarative:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxRounds caps the number of rounds (settled vertices).
//
//	n > 0: at most n rounds
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// WithLogger enables a Debug trace of every settled vertex.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Result is the outcome of a successful ShortestPath call.
type Result struct {
	// Distance is the sum of edge weights along Path.
	Distance int64

	// Path lists vertices from source to target inclusive.
	Path []string

	// Visited holds every vertex settled before the search stopped.
	Visited route.Visited

	// Rounds is the number of vertices settled (the source not included).
	Rounds int

	// Strategy is the frontier strategy that produced this result.
	Strategy Strategy
}
