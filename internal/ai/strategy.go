package ai

import (
	"math/rand"

	"guessing-toolbox/internal/game"
)

// Factory builds a fresh Guesser bound to the given game. The random source
// is only used by strategies that actually draw from it.
type Factory func(g *game.Game, rng *rand.Rand) Guesser

// Strategy is a named guesser factory, the unit the benchmark harness and
// the CLI select on.
type Strategy struct {
	Name string
	New  Factory
}

// AllStrategies returns the canonical strategies in display order.
func AllStrategies() []Strategy {
	return []Strategy{
		{Name: "random", New: func(g *game.Game, rng *rand.Rand) Guesser { return NewRandomGuesser(g, rng) }},
		{Name: "sequential", New: func(g *game.Game, rng *rand.Rand) Guesser { return NewSequentialGuesser(g) }},
		{Name: "signed", New: func(g *game.Game, rng *rand.Rand) Guesser { return NewSignedSequentialGuesser(g) }},
		{Name: "binary", New: func(g *game.Game, rng *rand.Rand) Guesser { return NewBinaryGuesser(g) }},
	}
}

// ByName looks a strategy up by its name.
func ByName(name string) (Strategy, bool) {
	for _, s := range AllStrategies() {
		if s.Name == name {
			return s, true
		}
	}
	return Strategy{}, false
}
