package game

import "math/rand"

// MineSelector picks which of the remaining unmined cells receives the next
// mine.
type MineSelector interface {
	// PickIndex returns an index in [0, remaining). remaining is always > 0.
	PickIndex(remaining int) int
}

// RandomMineSelector draws a non-negative pseudo-random integer and reduces it
// modulo the number of remaining cells. Not suitable for anything needing
// cryptographic randomness.
type RandomMineSelector struct {
	rand *rand.Rand
}

func NewRandomMineSelector(seed int64) *RandomMineSelector {
	return &RandomMineSelector{rand: rand.New(rand.NewSource(seed))}
}

func (selector *RandomMineSelector) PickIndex(remaining int) int {
	return selector.rand.Int() % remaining
}
