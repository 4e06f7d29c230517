package cmd

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/minefield/game"
)

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	savedConfig, savedPath, savedNoQ := gameConfig, configPath, noQuestionMarks
	defer func() {
		gameConfig, configPath, noQuestionMarks = savedConfig, savedPath, savedNoQ
	}()

	configPath = filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, ioutil.WriteFile(configPath, []byte("rows: 4\ncolumns: 6\nmines: 3\nseed: 42\n"), 0666))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.IntVar(&gameConfig.Rows, "rows", game.DefaultRows, "")
	flags.IntVar(&gameConfig.Columns, "columns", game.DefaultColumns, "")
	flags.IntVar(&gameConfig.Mines, "mines", game.DefaultMines, "")
	require.NoError(t, flags.Set("columns", "9"))
	noQuestionMarks = true

	config, err := resolveConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, 4, config.Rows)
	assert.Equal(t, 9, config.Columns)
	assert.Equal(t, 3, config.Mines)
	assert.Equal(t, int64(42), config.Seed)
	assert.False(t, config.AllowQuestionMark)
	assert.NotNil(t, config.Logger)
}

func TestResolveConfig_SeedsFromClock(t *testing.T) {
	savedPath := configPath
	defer func() { configPath = savedPath }()
	configPath = ""

	config, err := resolveConfig(pflag.NewFlagSet("test", pflag.ContinueOnError))
	require.NoError(t, err)
	assert.NotZero(t, config.Seed)
}

func TestDirectorValue(t *testing.T) {
	var value directorValue = directorNone

	require.NoError(t, value.Set("constraint"))
	assert.Equal(t, "constraint", value.String())
	assert.NotNil(t, newDirector(value, 1))

	assert.Error(t, value.Set("psychic"))
	assert.Nil(t, newDirector(directorNone, 1))
}

func TestClock(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := &clock{now: func() time.Time { return now }}
	assert.Equal(t, 0, c.Seconds())

	c.Started(nil)
	assert.Equal(t, 1, c.Seconds())

	now = now.Add(2500 * time.Millisecond)
	assert.Equal(t, 3, c.Seconds())

	c.Ended(nil)
	now = now.Add(time.Hour)
	assert.Equal(t, 3, c.Seconds(), "stopped")

	c.Started(nil)
	now = now.Add(time.Hour)
	assert.Equal(t, maxClockSeconds, c.Seconds())

	c.reset()
	assert.Equal(t, 0, c.Seconds())
}

func TestRootCommand_LeavesErrorToExecute(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"--director", "psychic"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "psychic")
	assert.False(t, strings.Contains(out.String()+errOut.String(), err.Error()), "printed once, by Execute")
}
