package bench

import (
	"math/rand"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"guessing-toolbox/internal/ai"
	"guessing-toolbox/internal/config"
	"guessing-toolbox/internal/events"
	"guessing-toolbox/internal/game"
)

// Tester runs many independent trials per (strategy, range) pair and
// collects the guess-count distributions. Every trial gets a fresh game
// with a new random target and a fresh guesser bound to it.
type Tester struct {
	strategies []ai.Strategy
	ranges     []Range
	trials     int
	maxGuesses int
	workers    int
	rand       *rand.Rand
	log        logrus.FieldLogger
	events     *events.Manager
}

// NewTester resolves the configured strategy names and builds a Tester.
// The event manager receives progress events and may not be nil; pass a
// fresh manager when no renderer is subscribed.
func NewTester(cfg *config.BenchConfig, rng *rand.Rand, log logrus.FieldLogger, em *events.Manager) (*Tester, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Tester{
		trials:     cfg.Trials,
		maxGuesses: cfg.MaxGuesses,
		workers:    cfg.Workers,
		rand:       rng,
		log:        log,
		events:     em,
	}
	for _, name := range cfg.Strategies {
		s, ok := ai.ByName(name)
		if !ok {
			return nil, game.InvalidArgumentError("unknown strategy " + name)
		}
		t.strategies = append(t.strategies, s)
	}
	for _, r := range cfg.Ranges {
		t.ranges = append(t.ranges, Range{Min: r[0], Max: r[1]})
	}
	return t, nil
}

// RunTests executes the full benchmark suite. If any trial inside a
// (strategy, range) pair exhausts the guess budget, the whole per-range
// series for that strategy is reported as "no result" rather than a partial
// list. Contract violations abort the run.
func (t *Tester) RunTests() (*ResultSet, error) {
	names := make([]string, len(t.strategies))
	for i, s := range t.strategies {
		names[i] = s.Name
	}
	t.events.Publish(events.SuiteStartedEvent{Strategies: names, Ranges: len(t.ranges), Trials: t.trials})

	rs := newResultSet()
	for _, s := range t.strategies {
		t.events.Publish(events.StrategyStartedEvent{Strategy: s.Name})
		for _, r := range t.ranges {
			counts, err := t.runRange(s, r)
			if err != nil {
				return nil, err
			}
			rs.add(s.Name, r.Size(), counts)
			t.events.Publish(events.RangeCompletedEvent{
				Strategy:  s.Name,
				RangeMin:  r.Min,
				RangeMax:  r.Max,
				RangeSize: r.Size(),
				Trials:    t.trials,
				Converged: counts != nil,
			})
		}
	}
	t.events.Publish(events.SuiteCompletedEvent{})
	return rs, nil
}

// runRange collects the guess counts for one (strategy, range) pair.
// A nil, nil return is the poisoned "no result" outcome.
func (t *Tester) runRange(s ai.Strategy, r Range) ([]int, error) {
	if t.workers > 1 {
		return t.runRangeParallel(s, r)
	}
	counts := make([]int, 0, t.trials)
	for i := 0; i < t.trials; i++ {
		n, ok, err := t.runTrial(s, r, rand.New(rand.NewSource(t.rand.Int63())))
		if err != nil {
			return nil, err
		}
		if !ok {
			t.log.Debugf("%s exhausted its budget on <%d,%d), discarding the series", s.Name, r.Min, r.Max)
			return nil, nil
		}
		counts = append(counts, n)
	}
	return counts, nil
}

// runRangeParallel fans the trials of one pair out over a bounded worker
// pool. Trials share no mutable state; per-trial seeds are drawn up front
// from the parent source so the fan-out does not change the seed stream.
func (t *Tester) runRangeParallel(s ai.Strategy, r Range) ([]int, error) {
	seeds := make([]int64, t.trials)
	for i := range seeds {
		seeds[i] = t.rand.Int63()
	}

	counts := make([]int, t.trials)
	var exhausted atomic.Bool
	var eg errgroup.Group
	eg.SetLimit(t.workers)
	for i := 0; i < t.trials; i++ {
		i := i
		eg.Go(func() error {
			n, ok, err := t.runTrial(s, r, rand.New(rand.NewSource(seeds[i])))
			if err != nil {
				return err
			}
			if !ok {
				exhausted.Store(true)
				return nil
			}
			counts[i] = n
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if exhausted.Load() {
		t.log.Debugf("%s exhausted its budget on <%d,%d), discarding the series", s.Name, r.Min, r.Max)
		return nil, nil
	}
	return counts, nil
}

// runTrial plays one complete game in silent mode.
func (t *Tester) runTrial(s ai.Strategy, r Range, trialRand *rand.Rand) (int, bool, error) {
	g, err := game.New(r.Min, r.Max, trialRand, t.log, nil)
	if err != nil {
		return 0, false, err
	}
	return ai.RunUntilHit(g, s.New(g, trialRand), t.maxGuesses)
}
