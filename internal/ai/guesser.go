package ai

import (
	"math/rand"

	"guessing-toolbox/internal/game"
)

// Guesser is the capability every guessing strategy implements: propose a
// number within the game's range, and digest the hint that came back.
// Each variant carries only the state it needs.
type Guesser interface {
	GenerateGuess() int
	ReceiveHint(h game.Hint)
}

// --- RandomGuesser ---

// RandomGuesser draws a fresh uniform guess on every call and ignores all
// hints. It has no convergence guarantee.
type RandomGuesser struct {
	rangeMin int
	rangeMax int
	rand     *rand.Rand
}

func NewRandomGuesser(g *game.Game, rng *rand.Rand) *RandomGuesser {
	min, max := g.NumberRange()
	return &RandomGuesser{rangeMin: min, rangeMax: max, rand: rng}
}

func (r *RandomGuesser) GenerateGuess() int {
	return r.rangeMin + r.rand.Intn(r.rangeMax-r.rangeMin)
}

func (r *RandomGuesser) ReceiveHint(h game.Hint) {}

// --- SequentialGuesser ---

// SequentialGuesser enumerates the range from its minimum upwards, ignoring
// hints. It converges in at most rangeMax-rangeMin guesses.
type SequentialGuesser struct {
	cursor int
}

func NewSequentialGuesser(g *game.Game) *SequentialGuesser {
	min, _ := g.NumberRange()
	return &SequentialGuesser{cursor: min}
}

func (s *SequentialGuesser) GenerateGuess() int {
	guess := s.cursor
	s.cursor++
	return guess
}

func (s *SequentialGuesser) ReceiveHint(h game.Hint) {}

// --- SignedSequentialGuesser ---

// SignedSequentialGuesser starts at the midpoint of the range and walks one
// step per turn in the direction of the most recent hint.
type SignedSequentialGuesser struct {
	cursor int
	sign   int
}

func NewSignedSequentialGuesser(g *game.Game) *SignedSequentialGuesser {
	min, max := g.NumberRange()
	return &SignedSequentialGuesser{cursor: floorDiv(min+max, 2)}
}

func (s *SignedSequentialGuesser) GenerateGuess() int {
	s.cursor += s.sign
	return s.cursor
}

func (s *SignedSequentialGuesser) ReceiveHint(h game.Hint) {
	switch h {
	case game.HintHigher:
		s.sign = 1
	case game.HintLower:
		s.sign = -1
	}
}

// --- BinaryGuesser ---

// BinaryGuesser runs a textbook binary search over a live inclusive interval
// [lower, upper], seeded with [rangeMin, rangeMax-1]. The target always lies
// within the interval after any hint, and the interval at least halves each
// turn, so it converges in at most ceil(log2(range size)) + 1 guesses.
type BinaryGuesser struct {
	lower     int
	upper     int
	lastGuess int
}

func NewBinaryGuesser(g *game.Game) *BinaryGuesser {
	min, max := g.NumberRange()
	return &BinaryGuesser{lower: min, upper: max - 1}
}

func (b *BinaryGuesser) GenerateGuess() int {
	b.lastGuess = floorDiv(b.lower+b.upper, 2)
	return b.lastGuess
}

func (b *BinaryGuesser) ReceiveHint(h game.Hint) {
	if h == game.HintHigher {
		b.lower = b.lastGuess + 1
	} else {
		b.upper = b.lastGuess - 1
	}
}

// floorDiv halves toward negative infinity. Go's integer division truncates
// toward zero, which would bias midpoints on negative ranges.
func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}
	return q
}
