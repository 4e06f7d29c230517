package game

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameConfig_OverlaysDefaults(t *testing.T) {
	config, err := ParseGameConfig([]byte("rows: 16\ncolumns: 30\nquestion_marks: false\n"))
	require.NoError(t, err)

	assert.Equal(t, 16, config.Rows)
	assert.Equal(t, 30, config.Columns)
	assert.Equal(t, DefaultMines, config.Mines)
	assert.False(t, config.AllowQuestionMark)
}

func TestParseGameConfig_RejectsUnknownKeys(t *testing.T) {
	_, err := ParseGameConfig([]byte("rows: 16\nheight: 4\n"))
	assert.Error(t, err)
}

func TestLoadGameConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("mines: 40\nseed: 7\nsnapshots_dir: out\n"), 0666))

	config, err := LoadGameConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40, config.Mines)
	assert.Equal(t, int64(7), config.Seed)
	assert.Equal(t, "out", config.SavedSnapshotsDir)

	_, err = LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGameEnd_NotifiesObserverOnly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snapshots")
	observer := &recordingObserver{}
	config := NewGameConfig()
	config.SavedSnapshotsDir = dir
	config.Observer = observer
	session := sessionFromBoard(t, "O###", config)

	require.NoError(t, session.ExposeCell(0, 3))
	require.Equal(t, Won, session.State())
	assert.Equal(t, 1, observer.ended)

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
