package bench

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guessing-toolbox/internal/ai"
	"guessing-toolbox/internal/config"
	"guessing-toolbox/internal/events"
	"guessing-toolbox/internal/game"
)

func newTestLogger(t *testing.T) *logrus.Logger {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// stubbornGuesser keeps guessing the range minimum, so it converges only
// when the target happens to be that minimum. It makes budget exhaustion
// deterministic enough for the poisoning tests.
type stubbornGuesser struct {
	guess int
}

func (s *stubbornGuesser) GenerateGuess() int      { return s.guess }
func (s *stubbornGuesser) ReceiveHint(h game.Hint) {}

func stubbornStrategy() ai.Strategy {
	return ai.Strategy{
		Name: "stubborn",
		New: func(g *game.Game, rng *rand.Rand) ai.Guesser {
			min, _ := g.NumberRange()
			return &stubbornGuesser{guess: min}
		},
	}
}

// eventRecorder captures every published event for inspection.
type eventRecorder struct {
	events []events.Event
}

func (r *eventRecorder) HandleEvent(e events.Event) {
	r.events = append(r.events, e)
}

func TestRunTestsCollectsFullSeries(t *testing.T) {
	cfg := &config.BenchConfig{
		Trials:     25,
		MaxGuesses: 10000,
		Workers:    1,
		Ranges:     [][2]int{{0, 16}, {-10, 5}},
		Strategies: []string{"binary", "sequential"},
	}
	tester, err := NewTester(cfg, rand.New(rand.NewSource(1)), newTestLogger(t), events.NewManager())
	require.NoError(t, err)

	rs, err := tester.RunTests()
	require.NoError(t, err)

	assert.Equal(t, []string{"binary", "sequential"}, rs.Strategies(), "strategy order must be preserved")
	assert.Equal(t, []int{15, 16}, rs.RangeSizes())

	for _, name := range rs.Strategies() {
		for _, size := range rs.RangeSizes() {
			counts, ok := rs.Series(name, size)
			require.True(t, ok, "missing series for %s size %d", name, size)
			require.NotNil(t, counts, "%s should converge on size %d", name, size)
			assert.Len(t, counts, cfg.Trials, "every trial must contribute exactly one count")
			for _, n := range counts {
				assert.GreaterOrEqual(t, n, 1, "guess counts are 1-based")
			}
		}
	}
}

func TestRunTestsPoisonsRangeOnExhaustion(t *testing.T) {
	recorder := &eventRecorder{}
	em := events.NewManager()
	em.Subscribe(recorder)

	tester := &Tester{
		strategies: []ai.Strategy{stubbornStrategy()},
		ranges:     []Range{{Min: 0, Max: 100}},
		trials:     20,
		maxGuesses: 5,
		workers:    1,
		rand:       rand.New(rand.NewSource(1)),
		log:        newTestLogger(t),
		events:     em,
	}

	rs, err := tester.RunTests()
	require.NoError(t, err)

	counts, ok := rs.Series("stubborn", 100)
	require.True(t, ok, "the poisoned range must still appear in the result set")
	assert.Nil(t, counts, "a single exhausted trial must discard the whole series")

	var rangeEvents []events.RangeCompletedEvent
	for _, e := range recorder.events {
		if re, isRange := e.(events.RangeCompletedEvent); isRange {
			rangeEvents = append(rangeEvents, re)
		}
	}
	require.Len(t, rangeEvents, 1)
	assert.False(t, rangeEvents[0].Converged)
}

func TestRunTestsParallelMatchesTrialCount(t *testing.T) {
	cfg := &config.BenchConfig{
		Trials:     50,
		MaxGuesses: 10000,
		Workers:    4,
		Ranges:     [][2]int{{0, 40}},
		Strategies: []string{"binary"},
	}
	tester, err := NewTester(cfg, rand.New(rand.NewSource(7)), newTestLogger(t), events.NewManager())
	require.NoError(t, err)

	rs, err := tester.RunTests()
	require.NoError(t, err)

	counts, ok := rs.Series("binary", 40)
	require.True(t, ok)
	require.NotNil(t, counts)
	assert.Len(t, counts, cfg.Trials)
	for _, n := range counts {
		assert.GreaterOrEqual(t, n, 1)
	}
}

func TestNewTesterRejectsUnknownStrategy(t *testing.T) {
	cfg := config.Default()
	cfg.Strategies = []string{"binary", "psychic"}

	_, err := NewTester(cfg, rand.New(rand.NewSource(1)), newTestLogger(t), events.NewManager())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "psychic")
}

func TestRunTestsPublishesProgressEvents(t *testing.T) {
	recorder := &eventRecorder{}
	em := events.NewManager()
	em.Subscribe(recorder)

	cfg := &config.BenchConfig{
		Trials:     5,
		MaxGuesses: 10000,
		Workers:    1,
		Ranges:     [][2]int{{0, 10}, {3, 5}},
		Strategies: []string{"binary", "signed"},
	}
	tester, err := NewTester(cfg, rand.New(rand.NewSource(1)), newTestLogger(t), em)
	require.NoError(t, err)

	_, err = tester.RunTests()
	require.NoError(t, err)

	var started, strategies, ranges, completed int
	for _, e := range recorder.events {
		switch e.(type) {
		case events.SuiteStartedEvent:
			started++
		case events.StrategyStartedEvent:
			strategies++
		case events.RangeCompletedEvent:
			ranges++
		case events.SuiteCompletedEvent:
			completed++
		}
	}
	assert.Equal(t, 1, started)
	assert.Equal(t, 2, strategies)
	assert.Equal(t, 4, ranges, "one event per (strategy, range) pair")
	assert.Equal(t, 1, completed)
}

func TestRangeSize(t *testing.T) {
	assert.Equal(t, 15, Range{Min: -10, Max: 5}.Size())
	assert.Equal(t, 2, Range{Min: 3, Max: 5}.Size())
}
