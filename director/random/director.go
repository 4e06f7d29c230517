package random

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/game"
)

// Director exposes covered cells in a random order fixed at Init.
type Director struct {
	rand    *rand.Rand
	session *game.Session
	cells   []game.Point
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.cells = make([]game.Point, 0, session.Rows()*session.Columns())
	for row := 0; row < session.Rows(); row++ {
		for column := 0; column < session.Columns(); column++ {
			director.cells = append(director.cells, game.Point{Row: row, Column: column})
		}
	}

	director.rand.Shuffle(len(director.cells), func(i, j int) {
		director.cells[i], director.cells[j] = director.cells[j], director.cells[i]
	})
}

func (director *Director) Act() bool {
	if director.session == nil || director.session.State() != game.Running {
		return false
	}

	for _, cell := range director.cells {
		tag, err := director.session.Tag(cell.Row, cell.Column)
		if err != nil {
			logrus.WithError(err).Error("random director lost track of the board")
			return false
		}
		if tag.IsExposed() || tag == game.Flagged {
			continue
		}

		if err := director.session.ExposeCell(cell.Row, cell.Column); err != nil {
			logrus.WithError(err).Error("random director could not expose cell")
			return false
		}
		return true
	}
	return false
}
