package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"guessing-toolbox/internal/ai"
	"guessing-toolbox/internal/bench"
	"guessing-toolbox/internal/config"
	"guessing-toolbox/internal/events"
	"guessing-toolbox/internal/game"
)

// Default range for the interactive and watch modes when none is given.
const (
	defaultRangeMin = 0
	defaultRangeMax = 100
)

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
	}
}

// Run is the main entry point for the CLI application.
func (c *CLI) Run(args []string, cfg *config.BenchConfig, rng *rand.Rand) error {
	defer c.line.Close()
	if len(args) < 1 {
		c.printUsage()
		return errors.New("no command provided")
	}

	switch args[0] {
	case "play":
		return c.runPlayMode(args[1:], rng)
	case "watch":
		return c.runWatchMode(cfg, args[1:], rng)
	case "bench":
		return c.runBenchMode(cfg, rng)
	default:
		c.printUsage()
		return fmt.Errorf("unknown command '%s'", args[0])
	}
}

// runPlayMode lets a human play one game against a random target.
func (c *CLI) runPlayMode(args []string, rng *rand.Rand) error {
	min, max, err := parseRangeArgs(args)
	if err != nil {
		return err
	}

	em := events.NewManager()
	em.Subscribe(&GameRenderer{})
	g, err := game.New(min, max, rng, c.log, em)
	if err != nil {
		return err
	}

	C.Header.Printf("--- I picked a number in <%d,%d). Find it. ---\n", min, max)
	guesses := 0
	for !g.IsOver() {
		n := c.promptForInt(fmt.Sprintf("Your guess [%d..%d]: ", min, max-1), min, max-1)
		hint, err := g.Guess(n)
		if err != nil {
			return err
		}
		guesses++
		switch hint {
		case game.HintHit:
			C.Yes.Printf("Correct! You needed %d guesses.\n", guesses)
		case game.HintHigher:
			C.Info.Println("Go higher.")
		case game.HintLower:
			C.Info.Println("Go lower.")
		}
	}
	return nil
}

// runWatchMode plays one verbose game with the chosen strategy, echoing
// every guess and hint.
func (c *CLI) runWatchMode(cfg *config.BenchConfig, args []string, rng *rand.Rand) error {
	if len(args) < 1 {
		c.printUsage()
		return errors.New("watch needs a strategy name")
	}
	strategy, ok := ai.ByName(args[0])
	if !ok {
		return fmt.Errorf("unknown strategy '%s'", args[0])
	}
	min, max, err := parseRangeArgs(args[1:])
	if err != nil {
		return err
	}

	em := events.NewManager()
	em.Subscribe(&GameRenderer{})
	g, err := game.New(min, max, rng, c.log, em)
	if err != nil {
		return err
	}

	C.Header.Printf("--- Watching %s on <%d,%d) ---\n", ColorizeStrategy(strategy.Name), min, max)
	guesses, hit, err := ai.RunUntilHit(g, strategy.New(g, rng), cfg.MaxGuesses)
	if err != nil {
		return err
	}
	if !hit {
		C.Warn.Printf("%s did not find the number within %d guesses.\n", strategy.Name, cfg.MaxGuesses)
		return nil
	}
	C.Yes.Printf("%s found the number in %d guesses.\n", strategy.Name, guesses)
	return nil
}

// runBenchMode runs the full benchmark suite and renders the report.
func (c *CLI) runBenchMode(cfg *config.BenchConfig, rng *rand.Rand) error {
	em := events.NewManager()
	em.Subscribe(&BenchRenderer{})

	tester, err := bench.NewTester(cfg, rng, c.log, em)
	if err != nil {
		return fmt.Errorf("failed to build tester: %w", err)
	}
	results, err := tester.RunTests()
	if err != nil {
		return fmt.Errorf("benchmark aborted: %w", err)
	}
	fmt.Println()
	return RenderReport(os.Stdout, results)
}

// parseRangeArgs reads an optional "min max" pair, falling back to the
// default range.
func parseRangeArgs(args []string) (int, int, error) {
	if len(args) == 0 {
		return defaultRangeMin, defaultRangeMax, nil
	}
	if len(args) != 2 {
		return 0, 0, errors.New("expected either no range or both min and max")
	}
	min, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range minimum '%s'", args[0])
	}
	max, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range maximum '%s'", args[1])
	}
	if min >= max {
		return 0, 0, game.InvalidArgumentError("lower bound must be lower than upper bound")
	}
	return min, max, nil
}
