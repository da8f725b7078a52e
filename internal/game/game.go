package game

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"guessing-toolbox/internal/events"
)

// Game holds a hidden target number inside a closed-open range and answers
// guesses with hints. The target is chosen once at construction and never
// changes afterwards.
type Game struct {
	rangeMin int
	rangeMax int
	target   int
	state    Hint
	started  bool
	log      logrus.FieldLogger
	events   *events.Manager
}

// New creates a game with a target drawn uniformly from [rangeMin, rangeMax).
// The random source is injected so callers control seeding; the event manager
// may be nil for the silent mode used throughout benchmarking.
func New(rangeMin, rangeMax int, rng *rand.Rand, log logrus.FieldLogger, em *events.Manager) (*Game, error) {
	if rangeMin >= rangeMax {
		return nil, InvalidArgumentError("lower bound must be lower than upper bound")
	}
	g := &Game{
		rangeMin: rangeMin,
		rangeMax: rangeMax,
		target:   rangeMin + rng.Intn(rangeMax-rangeMin),
		log:      log,
		events:   em,
	}
	g.log.Debugf("New game on <%d,%d), target %d", rangeMin, rangeMax, g.target)
	return g, nil
}

// NewWithTarget creates a game with a fixed target instead of a random one.
// Used by tests and the watch mode to make a play-through deterministic.
func NewWithTarget(rangeMin, rangeMax, target int, log logrus.FieldLogger, em *events.Manager) (*Game, error) {
	if rangeMin >= rangeMax {
		return nil, InvalidArgumentError("lower bound must be lower than upper bound")
	}
	if target < rangeMin || target >= rangeMax {
		return nil, InvalidArgumentError("target must lie within the range")
	}
	return &Game{
		rangeMin: rangeMin,
		rangeMax: rangeMax,
		target:   target,
		log:      log,
		events:   em,
	}, nil
}

// NumberRange returns the closed-open bounds of the hidden number.
func (g *Game) NumberRange() (int, int) {
	return g.rangeMin, g.rangeMax
}

// State returns the most recent hint. The boolean is false until the first
// guess has been made.
func (g *Game) State() (Hint, bool) {
	return g.state, g.started
}

// IsOver reports whether the most recent hint was a Hit.
func (g *Game) IsOver() bool {
	return g.started && g.state == HintHit
}

// Guess compares n to the hidden target and returns a hint. It fails with
// ErrGameOver once the game is won, and with an InvalidGuessError when n
// lies outside the range.
func (g *Game) Guess(n int) (Hint, error) {
	if g.IsOver() {
		return 0, ErrGameOver
	}
	if n < g.rangeMin || n >= g.rangeMax {
		return 0, &InvalidGuessError{Guess: n, Min: g.rangeMin, Max: g.rangeMax}
	}

	switch {
	case n == g.target:
		g.state = HintHit
	case n < g.target:
		g.state = HintHigher
	default:
		g.state = HintLower
	}
	g.started = true

	if g.events != nil {
		g.events.Publish(events.GuessEvent{Number: n, Symbol: g.state.String()})
	}
	return g.state, nil
}
