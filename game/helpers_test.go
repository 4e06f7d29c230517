package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sequenceSelector replays fixed picks and records how many cells were
// available for each one.
type sequenceSelector struct {
	picks     []int
	remaining []int
}

func (selector *sequenceSelector) PickIndex(remaining int) int {
	selector.remaining = append(selector.remaining, remaining)
	if len(selector.picks) == 0 {
		return 0
	}
	pick := selector.picks[0]
	selector.picks = selector.picks[1:]
	return pick % remaining
}

type recordingObserver struct {
	started, ended int
	endState       State
}

func (observer *recordingObserver) Started(*Session) {
	observer.started++
}

func (observer *recordingObserver) Ended(session *Session) {
	observer.ended++
	observer.endState = session.State()
}

func sessionFromBoard(t *testing.T, board string, config GameConfig) *Session {
	t.Helper()

	session, err := NewSessionFromSnapshot(&BoardSnapshot{SerializedBoard: board}, config)
	require.NoError(t, err)
	return session
}

func tagAt(t *testing.T, session *Session, row, column int) Tag {
	t.Helper()

	tag, err := session.Tag(row, column)
	require.NoError(t, err)
	return tag
}

func countTags(session *Session, match func(Tag) bool) int {
	count := 0
	for row := 0; row < session.Rows(); row++ {
		for column := 0; column < session.Columns(); column++ {
			if match(session.tags.Get(row, column)) {
				count++
			}
		}
	}
	return count
}

func isExposedCount(tag Tag) bool {
	_, ok := tag.Count()
	return ok
}
