package cli

import (
	"guessing-toolbox/internal/events"
)

// GameRenderer implements the events.Listener interface to echo each guess
// and its hint symbol during an interactive or watched game.
type GameRenderer struct{}

func (r *GameRenderer) HandleEvent(e events.Event) {
	if event, ok := e.(events.GuessEvent); ok {
		C.Info.Printf("%d? ", event.Number)
		C.Info.Println(ColorizeSymbol(event.Symbol))
	}
}

// BenchRenderer implements the events.Listener interface to print the
// progress of a benchmark run.
type BenchRenderer struct{}

func (r *BenchRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.SuiteStartedEvent:
		C.Header.Printf("--- Benchmarking %d strategies over %d ranges, %d trials each ---\n",
			len(event.Strategies), event.Ranges, event.Trials)
	case events.StrategyStartedEvent:
		C.Info.Printf("\nTesting %s\n", ColorizeStrategy(event.Strategy))
	case events.RangeCompletedEvent:
		if event.Converged {
			C.Info.Printf("  <%d,%d) size %2d: %d trials done\n",
				event.RangeMin, event.RangeMax, event.RangeSize, event.Trials)
		} else {
			C.Warn.Printf("  <%d,%d) size %2d: budget exhausted, no result\n",
				event.RangeMin, event.RangeMax, event.RangeSize)
		}
	case events.SuiteCompletedEvent:
		C.Header.Println("\n--- Benchmark complete ---")
	}
}
