package ai

import (
	"errors"
	"testing"

	"guessing-toolbox/internal/game"
)

func TestRunUntilHitRejectsBadBudget(t *testing.T) {
	// GIVEN a valid game and guesser
	log := newTestLogger(t)
	g, err := game.NewWithTarget(0, 10, 4, log, nil)
	if err != nil {
		t.Fatalf("Failed to build game: %v", err)
	}

	// WHEN the budget is not positive
	for _, budget := range []int{0, -5} {
		_, _, err := RunUntilHit(g, NewBinaryGuesser(g), budget)

		// THEN the trial fails with an InvalidArgumentError
		var argErr game.InvalidArgumentError
		if !errors.As(err, &argErr) {
			t.Errorf("Expected InvalidArgumentError for budget %d, got %v", budget, err)
		}
	}
}

func TestRunUntilHitReturnsNoResultOnExhaustion(t *testing.T) {
	// GIVEN a sequential guesser that needs 10 guesses for the last target
	log := newTestLogger(t)
	g, err := game.NewWithTarget(0, 10, 9, log, nil)
	if err != nil {
		t.Fatalf("Failed to build game: %v", err)
	}

	// WHEN the budget is too small
	guesses, hit, err := RunUntilHit(g, NewSequentialGuesser(g), 3)

	// THEN the trial reports no result without an error
	if err != nil {
		t.Fatalf("Expected no error on budget exhaustion, got %v", err)
	}
	if hit {
		t.Error("Expected the trial to miss within 3 guesses")
	}
	if guesses != 0 {
		t.Errorf("Expected a zero guess count on no result, got %d", guesses)
	}
}

func TestRunUntilHitStopsOnHit(t *testing.T) {
	// GIVEN a game whose target is the guesser's first probe
	log := newTestLogger(t)
	g, err := game.NewWithTarget(0, 10, 0, log, nil)
	if err != nil {
		t.Fatalf("Failed to build game: %v", err)
	}

	// WHEN the trial runs
	guesses, hit, err := RunUntilHit(g, NewSequentialGuesser(g), DefaultMaxGuesses)
	if err != nil {
		t.Fatalf("Trial failed: %v", err)
	}

	// THEN it returns a 1-based count of 1 and the game is over
	if !hit || guesses != 1 {
		t.Errorf("Expected a hit on guess 1, got hit=%v guesses=%d", hit, guesses)
	}
	if !g.IsOver() {
		t.Error("Expected the game to be over after the hit")
	}
}

func TestStrategyRegistry(t *testing.T) {
	// GIVEN the canonical strategy registry
	strategies := AllStrategies()

	t.Run("it lists the four strategies in display order", func(t *testing.T) {
		want := []string{"random", "sequential", "signed", "binary"}
		if len(strategies) != len(want) {
			t.Fatalf("Expected %d strategies, got %d", len(want), len(strategies))
		}
		for i, name := range want {
			if strategies[i].Name != name {
				t.Errorf("Expected strategy %d to be %s, got %s", i, name, strategies[i].Name)
			}
		}
	})

	t.Run("it resolves known names and rejects unknown ones", func(t *testing.T) {
		if _, ok := ByName("binary"); !ok {
			t.Error("Expected to resolve 'binary'")
		}
		if _, ok := ByName("psychic"); ok {
			t.Error("Expected 'psychic' to be unknown")
		}
	})
}
