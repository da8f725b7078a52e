package game

// Hint is the three-valued signal a Game gives back for a guess.
// Higher means the hidden number is above the guess, Lower that it is below.
type Hint int

const (
	HintLower Hint = iota
	HintHit
	HintHigher
)

// String returns the classic console symbol for the hint.
func (h Hint) String() string {
	return []string{"-", "!", "+"}[h]
}
