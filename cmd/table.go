package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/they4kman/minefield/game"
)

// table connects one session to the terminal. Everything runs on the calling
// goroutine, so session commands never overlap.
type table struct {
	session  *game.Session
	director game.Director
	clock    *clock
	replays  *replayRecorder
	out      io.Writer

	// Mines requested for each new game
	mines int
}

func newTable(config game.GameConfig, name directorValue, out io.Writer) (*table, error) {
	t := &table{
		director: newDirector(name, config.Seed),
		clock:    newClock(),
		replays:  newReplayRecorder(config.SavedSnapshotsDir),
		out:      out,
		mines:    config.Mines,
	}

	config.Observer = t
	session, err := game.NewSession(config)
	if err != nil {
		return nil, errors.Wrap(err, "cannot start game")
	}

	t.session = session
	if t.director != nil {
		t.director.Init(session)
	}
	return t, nil
}

func (t *table) Started(session *game.Session) {
	t.clock.Started(session)
}

func (t *table) Ended(session *game.Session) {
	t.clock.Ended(session)
	t.replays.save(session)
}

func (t *table) newGame(mines int) {
	t.session.NewGame(mines)
	t.clock.reset()
	if t.director != nil {
		t.director.Init(t.session)
	}
}

func (t *table) play(in io.Reader) error {
	if err := render(t.out, t.session, t.clock); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := t.execute(scanner.Text())
		if err != nil {
			fmt.Fprintln(t.out, err)
			continue
		}
		if quit {
			return nil
		}

		if err := render(t.out, t.session, t.clock); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (t *table) autoplay(delay time.Duration) error {
	var tick <-chan time.Time
	if delay > 0 {
		tick = time.Tick(delay)
	}

	if err := render(t.out, t.session, t.clock); err != nil {
		return err
	}

	for t.session.State() == game.Running && t.director.Act() {
		if err := render(t.out, t.session, t.clock); err != nil {
			return err
		}
		if tick != nil {
			<-tick
		}
	}

	fmt.Fprintf(t.out, "game %s\n", t.session.State())
	return nil
}

// execute runs one command line. quit is true for the quit command.
func (t *table) execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "q":
		return true, nil

	case "n":
		mines := t.mines
		if len(fields) > 1 {
			if mines, err = strconv.Atoi(fields[1]); err != nil {
				return false, errors.Wrapf(err, "bad mine count %q", fields[1])
			}
		}
		t.newGame(mines)

	case "s":
		if t.director == nil {
			return false, errors.New("no director; start with --director")
		}
		t.director.Act()

	case "x", "f", "c":
		row, column, err := parseCell(fields[1:])
		if err != nil {
			return false, err
		}

		switch fields[0] {
		case "x":
			err = t.session.ExposeCell(row, column)
		case "f":
			_, err = t.session.RotateTag(row, column)
		case "c":
			err = t.session.ClearAround(row, column)
		}
		return false, err

	default:
		return false, errors.Errorf("unknown command %q", fields[0])
	}

	return false, nil
}

func parseCell(args []string) (row, column int, err error) {
	if len(args) != 2 {
		return 0, 0, errors.New("expected ROW COL")
	}
	if row, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, errors.Wrapf(err, "bad row %q", args[0])
	}
	if column, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, errors.Wrapf(err, "bad column %q", args[1])
	}
	return row, column, nil
}
