package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot records a mine layout and how far play got, one line per row:
//
//	'*'  exposed (losing) mine
//	'F'  flagged mine
//	'O'  any other mine
//	'f'  flagged cell without a mine
//	'.'  exposed safe cell
//	'#'  covered safe cell
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "loading snapshot")
	}
	return &snapshot, nil
}

func (session *Session) Snapshot() *BoardSnapshot {
	var board strings.Builder
	for row := 0; row < session.rows; row++ {
		if row > 0 {
			board.WriteByte('\n')
		}
		for column := 0; column < session.columns; column++ {
			board.WriteByte(session.serializeCell(row, column))
		}
	}

	return &BoardSnapshot{
		Seed:            session.config.Seed,
		SerializedBoard: board.String(),
	}
}

func (session *Session) serializeCell(row, column int) byte {
	tag := session.tags.Get(row, column)

	switch {
	case session.layout.IsMined(row, column):
		switch tag {
		case ExposedMine:
			return '*'
		case Flagged:
			return 'F'
		default:
			return 'O'
		}
	case tag == Flagged || tag == WronglyFlagged:
		return 'f'
	case tag.IsExposed():
		return '.'
	default:
		return '#'
	}
}

func (snapshot *BoardSnapshot) rows() ([]string, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidSnapshot, "empty board")
	}

	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "row %d has %d cells, expected %d", i, len(row), len(rows[0]))
		}
	}
	return rows, nil
}

// NewSessionFromSnapshot starts a fresh game on the snapshot's mine layout.
// Every cell starts covered; tags and progress in the snapshot are ignored.
// Rows and Columns of config are replaced by the snapshot's dimensions.
func NewSessionFromSnapshot(snapshot *BoardSnapshot, config GameConfig) (*Session, error) {
	rows, err := snapshot.rows()
	if err != nil {
		return nil, err
	}

	config.Rows = len(rows)
	config.Columns = len(rows[0])
	config.Seed = snapshot.Seed

	session, err := newSession(config)
	if err != nil {
		return nil, err
	}

	numMines := 0
	for r, row := range rows {
		for c, char := range []byte(row) {
			switch char {
			case '*', 'F', 'O':
				session.layout.setMined(r, c, true)
				numMines++
			case 'f', '.', '#':
			default:
				return nil, errors.Wrapf(ErrInvalidSnapshot, "unknown cell %q at (%d, %d)", char, r, c)
			}
		}
	}

	if numMines != clampMines(numMines, session.numCells()) {
		return nil, errors.Wrapf(ErrInvalidSnapshot, "%d mines in %d cells", numMines, session.numCells())
	}

	session.start(numMines)
	return session, nil
}
