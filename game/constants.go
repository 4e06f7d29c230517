package game

import "fmt"

// Tag is the player-visible state of a cell. Tags are ordered: every tag at
// or above ExposedMine counts as exposed.
type Tag uint8

type State int

const (
	Covered Tag = iota
	Flagged
	Questioned
	ExposedMine     // the mine that was clicked
	AutoExposedMine // revealed when the game was lost
	WronglyFlagged
	ExposedZero
	ExposedOne
	ExposedTwo
	ExposedThree
	ExposedFour
	ExposedFive
	ExposedSix
	ExposedSeven
	ExposedEight
)

var Tags = []Tag{
	Covered,
	Flagged,
	Questioned,
	ExposedMine,
	AutoExposedMine,
	WronglyFlagged,
	ExposedZero,
	ExposedOne,
	ExposedTwo,
	ExposedThree,
	ExposedFour,
	ExposedFive,
	ExposedSix,
	ExposedSeven,
	ExposedEight,
}

const (
	Running State = iota
	Won
	Lost
)

const (
	DefaultRows    = 8
	DefaultColumns = 8
	DefaultMines   = 10
)

// ExposedCount returns the tag of an exposed safe cell with n adjacent mines.
func ExposedCount(n int) Tag {
	if n < 0 || n > 8 {
		panic(fmt.Sprintf("adjacent mine count out of range: %d", n))
	}
	return ExposedZero + Tag(n)
}

func (tag Tag) IsExposed() bool {
	return tag >= ExposedMine
}

// Count returns the adjacent mine count shown by an exposed safe cell, and
// false for every other tag.
func (tag Tag) Count() (int, bool) {
	if tag < ExposedZero {
		return 0, false
	}
	return int(tag - ExposedZero), true
}

func (tag Tag) IsChordEligible() bool {
	return tag > ExposedZero
}

func (tag Tag) String() string {
	switch tag {
	case Covered:
		return "Covered"
	case Flagged:
		return "Flagged"
	case Questioned:
		return "Questioned"
	case ExposedMine:
		return "ExposedMine"
	case AutoExposedMine:
		return "AutoExposedMine"
	case WronglyFlagged:
		return "WronglyFlagged"
	}
	if n, ok := tag.Count(); ok && n <= 8 {
		return fmt.Sprintf("ExposedCount(%d)", n)
	}
	return fmt.Sprintf("Tag(%d)", uint8(tag))
}

func (state State) String() string {
	switch state {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprint(int(state))
	}
}
