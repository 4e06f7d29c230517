package constraint

import (
	"math"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/util/collections"
)

// Director makes moves that follow from a single numbered cell. When there
// are none it exposes the covered cell least likely to hold a mine, and
// guesses at random when no numbered cell says anything.
type Director struct {
	session  *game.Session
	rand     *rand.Rand
	fallback *random.Director
	log      logrus.FieldLogger
}

func New(seed int64) *Director {
	return &Director{
		rand:     rand.New(rand.NewSource(seed)),
		fallback: random.New(seed),
		log:      logrus.WithField("director", "constraint"),
	}
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.fallback.Init(session)
}

func (director *Director) Act() bool {
	if director.session == nil || director.session.State() != game.Running {
		return false
	}

	observations, err := director.observeAll()
	if err != nil {
		director.log.WithError(err).Error("cannot read the board")
		return false
	}

	actors := []func([]*Observation) (bool, error){
		director.actDeliberate,
		director.actLowestProbability,
	}
	for _, actor := range actors {
		acted, err := actor(observations)
		if err != nil {
			director.log.WithError(err).Error("move failed")
			return false
		}
		if acted {
			return true
		}
	}

	return director.fallback.Act()
}

// Observation is what one exposed numbered cell says about its neighbors.
type Observation struct {
	origin   game.Point
	numMines int
	flagged  collections.Set[game.Point]
	unknown  collections.Set[game.Point]
}

func (director *Director) observe(origin game.Point, numMines int) (*Observation, error) {
	neighbors, err := director.session.Neighbors(origin.Row, origin.Column)
	if err != nil {
		return nil, err
	}

	covered := make(collections.Set[game.Point])
	flagged := make(collections.Set[game.Point])
	for _, neighbor := range neighbors {
		tag, err := director.session.Tag(neighbor.Row, neighbor.Column)
		if err != nil {
			return nil, err
		}

		if !tag.IsExposed() {
			covered.Add(neighbor)
		}
		if tag == game.Flagged {
			flagged.Add(neighbor)
		}
	}

	return &Observation{
		origin:   origin,
		numMines: numMines,
		flagged:  flagged,
		unknown:  covered.Difference(flagged),
	}, nil
}

// MineProbability is the chance that any one unknown cell holds a mine.
func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines-len(observation.flagged)) / float64(len(observation.unknown))
}

// observeAll collects an Observation for every numbered cell that still
// borders unknown cells, in row-major order.
func (director *Director) observeAll() ([]*Observation, error) {
	session := director.session

	var observations []*Observation
	for row := 0; row < session.Rows(); row++ {
		for column := 0; column < session.Columns(); column++ {
			tag, err := session.Tag(row, column)
			if err != nil {
				return nil, err
			}
			if !tag.IsChordEligible() {
				continue
			}
			numMines, _ := tag.Count()

			observation, err := director.observe(game.Point{Row: row, Column: column}, numMines)
			if err != nil {
				return nil, err
			}
			if len(observation.unknown) > 0 {
				observations = append(observations, observation)
			}
		}
	}
	return observations, nil
}

// actDeliberate acts on the first observation whose unknown cells are either
// all mines or all safe.
func (director *Director) actDeliberate(observations []*Observation) (bool, error) {
	for _, observation := range observations {
		switch {
		case len(observation.flagged) == observation.numMines:
			director.log.WithField("cell", observation.origin).Debug("clearing around")
			return true, director.session.ClearAround(observation.origin.Row, observation.origin.Column)

		case len(observation.flagged)+len(observation.unknown) == observation.numMines:
			director.log.WithField("cell", observation.origin).Debug("flagging neighbors")
			for cell := range observation.unknown {
				if err := director.flag(cell); err != nil {
					return false, err
				}
			}
			return true, nil
		}
	}

	return false, nil
}

// actLowestProbability exposes one of the unknown cells with the lowest mine
// probability. A cell seen by several observations takes the lowest of them.
func (director *Director) actLowestProbability(observations []*Observation) (bool, error) {
	lowestProbability := math.Inf(1)
	cellProbabilities := make(map[game.Point]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()
		if probability < lowestProbability {
			lowestProbability = probability
		}

		for cell := range observation.unknown {
			if past, ok := cellProbabilities[cell]; !ok || probability < past {
				cellProbabilities[cell] = probability
			}
		}
	}

	var lowestProbabilityCells []game.Point
	for cell, probability := range cellProbabilities {
		if probability <= lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}
	if len(lowestProbabilityCells) == 0 {
		return false, nil
	}

	// Map order is random; sort first so the seed alone decides the pick
	sort.Slice(lowestProbabilityCells, func(i, j int) bool {
		a, b := lowestProbabilityCells[i], lowestProbabilityCells[j]
		return a.Row < b.Row || (a.Row == b.Row && a.Column < b.Column)
	})
	cell := lowestProbabilityCells[director.rand.Intn(len(lowestProbabilityCells))]

	director.log.WithFields(logrus.Fields{
		"cell":        cell,
		"probability": lowestProbability,
		"candidates":  len(lowestProbabilityCells),
	}).Debug("exposing least likely mine")
	return true, director.session.ExposeCell(cell.Row, cell.Column)
}

// flag rotates a covered cell's tag until it is Flagged.
func (director *Director) flag(cell game.Point) error {
	for i := 0; i < 3; i++ {
		tag, err := director.session.Tag(cell.Row, cell.Column)
		if err != nil || tag == game.Flagged {
			return err
		}
		if _, err := director.session.RotateTag(cell.Row, cell.Column); err != nil {
			return err
		}
	}
	return nil
}
