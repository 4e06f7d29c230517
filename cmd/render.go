package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/game"
)

var tagSymbols = map[game.Tag]byte{
	game.Covered:         '#',
	game.Flagged:         'F',
	game.Questioned:      '?',
	game.ExposedMine:     '*',
	game.AutoExposedMine: 'O',
	game.WronglyFlagged:  'X',
	game.ExposedZero:     '.',
	game.ExposedOne:      '1',
	game.ExposedTwo:      '2',
	game.ExposedThree:    '3',
	game.ExposedFour:     '4',
	game.ExposedFive:     '5',
	game.ExposedSix:      '6',
	game.ExposedSeven:    '7',
	game.ExposedEight:    '8',
}

var stateFaces = map[game.State]string{
	game.Running: ":)",
	game.Won:     "B)",
	game.Lost:    "X(",
}

// render draws the counter, face, clock and the whole grid.
func render(w io.Writer, session *game.Session, c *clock) error {
	if region, ok := session.TakeDirtyRegion(); ok {
		logrus.WithFields(logrus.Fields{
			"from": region.Min,
			"to":   region.Max,
		}).Debug("redrawing changed cells")
	}

	var out strings.Builder

	fmt.Fprintf(&out, "%03d  %s  %03d\n", session.MinesRemaining(), stateFaces[session.State()], c.Seconds())

	out.WriteString("    ")
	for column := 0; column < session.Columns(); column++ {
		fmt.Fprintf(&out, "%d", column%10)
	}
	out.WriteByte('\n')

	for row := 0; row < session.Rows(); row++ {
		fmt.Fprintf(&out, "%3d ", row)
		for column := 0; column < session.Columns(); column++ {
			tag, err := session.Tag(row, column)
			if err != nil {
				return err
			}
			out.WriteByte(tagSymbols[tag])
		}
		out.WriteByte('\n')
	}

	_, err := io.WriteString(w, out.String())
	return err
}
