package game

import (
	"github.com/sirupsen/logrus"
)

// Session is one minefield and the player's progress on it. It is not safe
// for concurrent use; hosts that drive it from several goroutines must
// serialize calls themselves.
type Session struct {
	grid
	allowQuestionMark bool

	layout  *MineLayout
	tags    *TagGrid
	exposer exposer

	numMines       int
	exposedCount   int
	unminedCount   int
	minesRemaining int
	state          State

	config GameConfig
	log    logrus.FieldLogger
}

// NewSession validates the grid dimensions and starts the first game.
func NewSession(config GameConfig) (*Session, error) {
	session, err := newSession(config)
	if err != nil {
		return nil, err
	}

	session.NewGame(config.Mines)
	return session, nil
}

func newSession(config GameConfig) (*Session, error) {
	g, err := newGrid(config.Rows, config.Columns)
	if err != nil {
		return nil, err
	}

	layout := newMineLayout(g, config.selector())
	tags := newTagGrid(g)

	return &Session{
		grid:              g,
		allowQuestionMark: config.AllowQuestionMark,
		layout:            layout,
		tags:              tags,
		exposer:           exposer{layout: layout, tags: tags},
		config:            config,
		log: config.logger().WithFields(logrus.Fields{
			"rows":    g.rows,
			"columns": g.columns,
		}),
	}, nil
}

func clampMines(numMines, numCells int) int {
	if numMines >= numCells {
		numMines = numCells - 1
	}
	if numMines < 1 {
		numMines = 1
	}
	return numMines
}

// NewGame covers every cell, lays a fresh set of mines and resumes play.
// numMines is silently clamped into [1, cells-1].
func (session *Session) NewGame(numMines int) {
	session.tags.reset()
	session.layout.clear()

	numMines = clampMines(numMines, session.numCells())
	session.layout.LayMines(numMines, session.numCells())

	session.start(numMines)
}

func (session *Session) start(numMines int) {
	session.numMines = numMines
	session.exposedCount = 0
	session.unminedCount = session.numCells() - numMines
	session.minesRemaining = numMines
	session.state = Running

	session.log.WithField("mines", numMines).Debug("new game")
}

func (session *Session) Rows() int {
	return session.rows
}

func (session *Session) Columns() int {
	return session.columns
}

// Mines is the number of mines laid in the current game.
func (session *Session) Mines() int {
	return session.numMines
}

// MinesRemaining is the mine counter shown to the player: mines minus flags.
// It goes negative when more cells are flagged than there are mines.
func (session *Session) MinesRemaining() int {
	return session.minesRemaining
}

func (session *Session) State() State {
	return session.state
}

func (session *Session) ExposedCount() int {
	return session.exposedCount
}

func (session *Session) UnminedCount() int {
	return session.unminedCount
}

func (session *Session) AllowsQuestionMark() bool {
	return session.allowQuestionMark
}

func (session *Session) Tag(row, column int) (Tag, error) {
	if err := session.check(row, column); err != nil {
		return Covered, err
	}
	return session.tags.Get(row, column), nil
}

// Neighbors lists the up to eight cells surrounding a cell, in row-major order.
func (session *Session) Neighbors(row, column int) ([]Point, error) {
	if err := session.check(row, column); err != nil {
		return nil, err
	}
	return session.neighbors(row, column), nil
}

// TakeDirtyRegion returns the bounding box of cells whose tag changed since
// the previous call, or false if none did.
func (session *Session) TakeDirtyRegion() (Region, bool) {
	return session.tags.TakeDirtyRegion()
}

func (session *Session) canPlay() bool {
	return session.state == Running
}

func (session *Session) isWon() bool {
	return session.exposedCount == session.unminedCount
}

// RotateTag cycles a covered cell through Covered, Flagged, Questioned (when
// enabled) and back. It reports whether the tag changed.
func (session *Session) RotateTag(row, column int) (bool, error) {
	if err := session.check(row, column); err != nil {
		return false, err
	}
	if !session.canPlay() {
		return false, nil
	}

	var tag Tag
	switch session.tags.Get(row, column) {
	case Covered:
		tag = Flagged
		session.minesRemaining--
	case Flagged:
		if session.allowQuestionMark {
			tag = Questioned
		} else {
			tag = Covered
		}
		session.minesRemaining++
	case Questioned:
		tag = Covered
	default:
		return false, nil
	}

	session.tags.Set(row, column, tag)
	return true, nil
}

// ExposeCell reveals a covered, unflagged cell. The first exposure of a game
// never hits a mine: a mine under it is moved elsewhere first.
func (session *Session) ExposeCell(row, column int) error {
	if err := session.check(row, column); err != nil {
		return err
	}
	if !session.canPlay() || !session.exposer.canExpose(row, column) {
		return nil
	}

	isMined := session.layout.IsMined(row, column)
	if session.exposedCount == 0 && isMined {
		session.layout.RelocateOneMine(session.unminedCount)
		session.layout.setMined(row, column, false)
		isMined = false

		session.log.WithFields(logrus.Fields{
			"row":    row,
			"column": column,
		}).Debug("relocated mine under first exposed cell")
	}

	if isMined {
		session.tags.Set(row, column, ExposedMine)
		session.lose()
		return nil
	}

	if session.exposedCount == 0 && session.config.Observer != nil {
		session.config.Observer.Started(session)
	}

	session.exposedCount++
	session.exposedCount += session.exposer.exposeSafeCell(row, column)

	if session.isWon() {
		session.win()
	}
	return nil
}

// ClearAround exposes every unflagged neighbor of an exposed numbered cell,
// provided exactly as many neighbors are flagged as the number shows.
func (session *Session) ClearAround(row, column int) error {
	if err := session.check(row, column); err != nil {
		return err
	}
	if !session.canPlay() {
		return nil
	}

	tag := session.tags.Get(row, column)
	if !tag.IsChordEligible() {
		return nil
	}
	numAdjMines, _ := tag.Count()

	neighbors := session.neighbors(row, column)

	numAdjFlags := 0
	for _, neighbor := range neighbors {
		if session.tags.Get(neighbor.Row, neighbor.Column) == Flagged {
			numAdjFlags++
		}
	}
	if numAdjFlags != numAdjMines {
		return nil
	}

	lost := false
	for _, neighbor := range neighbors {
		if !session.exposer.canExpose(neighbor.Row, neighbor.Column) {
			continue
		}

		if session.layout.IsMined(neighbor.Row, neighbor.Column) {
			session.tags.Set(neighbor.Row, neighbor.Column, ExposedMine)
			lost = true
		} else {
			session.exposedCount++
			session.exposedCount += session.exposer.exposeSafeCell(neighbor.Row, neighbor.Column)
		}
	}

	if lost {
		session.lose()
	} else if session.isWon() {
		session.win()
	}
	return nil
}

func (session *Session) lose() {
	session.state = Lost
	session.revealLoss()

	session.log.WithField("exposed", session.exposedCount).Debug("game lost")
	session.config.onGameEnd(session)
}

func (session *Session) revealLoss() {
	for row := 0; row < session.rows; row++ {
		for column := 0; column < session.columns; column++ {
			tag := session.tags.Get(row, column)
			if tag == ExposedMine {
				continue
			}

			isMined := session.layout.IsMined(row, column)
			isFlagged := tag == Flagged

			if isMined && !isFlagged {
				session.tags.Set(row, column, AutoExposedMine)
			} else if !isMined && isFlagged {
				session.tags.Set(row, column, WronglyFlagged)
			}
		}
	}
}

func (session *Session) win() {
	session.state = Won
	session.minesRemaining = 0
	session.revealWin()

	session.log.WithField("exposed", session.exposedCount).Debug("game won")
	session.config.onGameEnd(session)
}

func (session *Session) revealWin() {
	for row := 0; row < session.rows; row++ {
		for column := 0; column < session.columns; column++ {
			switch session.tags.Get(row, column) {
			case Covered, Questioned:
				session.tags.Set(row, column, Flagged)
			}
		}
	}
}
