package ai

import "guessing-toolbox/internal/game"

// DefaultMaxGuesses is the guess budget used when no other limit is configured.
const DefaultMaxGuesses = 10000

// RunUntilHit plays one full trial: it keeps asking the guesser for numbers
// and feeding hints back until the game is won or the budget runs out.
// On a Hit it returns the 1-based guess count without delivering the final
// hint to the guesser. Exhausting the budget is not an error; it returns
// ok=false. Contract violations by the guesser (out-of-range guesses)
// propagate as errors from the game.
func RunUntilHit(g *game.Game, guesser Guesser, maxGuesses int) (guesses int, ok bool, err error) {
	if maxGuesses <= 0 {
		return 0, false, game.InvalidArgumentError("max guesses must be positive")
	}
	for i := 1; i <= maxGuesses; i++ {
		hint, err := g.Guess(guesser.GenerateGuess())
		if err != nil {
			return 0, false, err
		}
		if g.IsOver() {
			return i, true, nil
		}
		guesser.ReceiveHint(hint)
	}
	return 0, false, nil
}
