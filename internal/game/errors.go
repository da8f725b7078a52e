package game

import (
	"errors"
	"fmt"
)

// ErrGameOver is returned when a guess is submitted after the game
// already reported a Hit.
var ErrGameOver = errors.New("game is already over, stop guessing")

// InvalidArgumentError reports a contract violation at construction time,
// such as an inverted range or a non-positive guess budget.
type InvalidArgumentError string

func (e InvalidArgumentError) Error() string { return "invalid argument: " + string(e) }

// InvalidGuessError reports a guess outside the game's valid range.
type InvalidGuessError struct {
	Guess int
	Min   int
	Max   int
}

func (e *InvalidGuessError) Error() string {
	return fmt.Sprintf("guess %d is outside the valid range <%d,%d)", e.Guess, e.Min, e.Max)
}
