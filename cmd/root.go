package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/minefield/director/constraint"
	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/game"
)

var gameConfig = game.NewGameConfig()

var (
	configPath      string
	noQuestionMarks bool
	directorName    = directorNone
	autoplay        bool
	delay           time.Duration
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "minefield",
	Short: "Play manual or computer-driven Minesweeper in the terminal",

	// Execute prints the error itself
	SilenceErrors: true,
	Long: `minefield is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually
	minefield

Commands are read one per line:
	x ROW COL   expose a cell
	f ROW COL   rotate a cell's tag (flag, question mark, covered)
	c ROW COL   clear around a numbered cell
	s           let the director make a move
	n [MINES]   start a new game
	q           quit

Use the director flag to make the computer play for you
	minefield --director constraint --autoplay
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		config, err := resolveConfig(cmd.Flags())
		if err != nil {
			return err
		}

		t, err := newTable(config, directorName, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		if autoplay {
			if t.director == nil {
				return errors.New("--autoplay needs a --director")
			}
			return t.autoplay(delay)
		}
		return t.play(cmd.InOrStdin())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig layers the config file (if any) under explicitly set flags.
func resolveConfig(flags *pflag.FlagSet) (game.GameConfig, error) {
	config := gameConfig
	if configPath != "" {
		loaded, err := game.LoadGameConfig(configPath)
		if err != nil {
			return config, err
		}

		config = loaded
		if flags.Changed("rows") {
			config.Rows = gameConfig.Rows
		}
		if flags.Changed("columns") {
			config.Columns = gameConfig.Columns
		}
		if flags.Changed("mines") {
			config.Mines = gameConfig.Mines
		}
		if flags.Changed("seed") {
			config.Seed = gameConfig.Seed
		}
		if flags.Changed("snapshots-dir") {
			config.SavedSnapshotsDir = gameConfig.SavedSnapshotsDir
		}
	}

	if noQuestionMarks {
		config.AllowQuestionMark = false
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	config.Logger = logrus.StandardLogger()

	return config, nil
}

func newDirector(name directorValue, seed int64) game.Director {
	switch name {
	case directorRandom:
		return random.New(seed)
	case directorConstraint:
		return constraint.New(seed)
	default:
		return nil
	}
}

type directorValue string

const (
	directorNone       directorValue = "none"
	directorRandom     directorValue = "random"
	directorConstraint directorValue = "constraint"
)

func (director *directorValue) String() string {
	return string(*director)
}

func (director *directorValue) Set(value string) error {
	switch directorValue(value) {
	case directorNone, directorRandom, directorConstraint:
		*director = directorValue(value)
		return nil
	default:
		return fmt.Errorf("invalid director %q", value)
	}
}

func (director *directorValue) Type() string {
	return "director"
}

func init() {
	rootCmd.Flags().IntVarP(&gameConfig.Rows, "rows", "r", game.DefaultRows, "Number of rows in the minefield")
	rootCmd.Flags().IntVarP(&gameConfig.Columns, "columns", "c", game.DefaultColumns, "Number of columns in the minefield")
	rootCmd.Flags().IntVarP(&gameConfig.Mines, "mines", "m", game.DefaultMines, "Number of mines to place in the minefield")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (default: current time)")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory to save a snapshot of every finished game to")
	rootCmd.Flags().BoolVar(&noQuestionMarks, "no-question-marks", false, "Skip the question mark when rotating a cell's tag")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with rows, columns, mines, question_marks, seed and snapshots_dir")
	rootCmd.Flags().VarP(&directorName, "director", "d", `Make the computer play.
random: expose covered cells at random
constraint: flag and clear what the numbers prove, guess otherwise`)
	rootCmd.Flags().BoolVar(&autoplay, "autoplay", false, "Let the director play until the game ends")
	rootCmd.Flags().DurationVar(&delay, "delay", 200*time.Millisecond, "Pause between director moves with --autoplay")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log game events")
}
