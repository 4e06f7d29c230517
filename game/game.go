package game

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Rows              int   `yaml:"rows"`
	Columns           int   `yaml:"columns"`
	Mines             int   `yaml:"mines"`
	AllowQuestionMark bool  `yaml:"question_marks"`
	Seed              int64 `yaml:"seed"`

	// Directory the host saves final board snapshots to
	SavedSnapshotsDir string `yaml:"snapshots_dir"`

	// Picks mine positions; defaults to a RandomMineSelector seeded with Seed
	Selector MineSelector `yaml:"-"`

	Observer Observer           `yaml:"-"`
	Logger   logrus.FieldLogger `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Rows:              DefaultRows,
		Columns:           DefaultColumns,
		Mines:             DefaultMines,
		AllowQuestionMark: true,
	}
}

// ParseGameConfig reads a YAML config document, keeping defaults for any key
// it does not mention.
func ParseGameConfig(in []byte) (GameConfig, error) {
	config := NewGameConfig()
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return config, errors.Wrap(err, "parsing game config")
	}
	return config, nil
}

func LoadGameConfig(path string) (GameConfig, error) {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return NewGameConfig(), errors.Wrapf(err, "reading game config %s", path)
	}
	return ParseGameConfig(in)
}

func (config GameConfig) logger() logrus.FieldLogger {
	if config.Logger == nil {
		return logrus.StandardLogger()
	}
	return config.Logger
}

func (config GameConfig) selector() MineSelector {
	if config.Selector == nil {
		return NewRandomMineSelector(config.Seed)
	}
	return config.Selector
}

func (config GameConfig) onGameEnd(session *Session) {
	if config.Observer != nil {
		config.Observer.Ended(session)
	}
}
