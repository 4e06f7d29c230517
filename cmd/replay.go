package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/game"
)

// replayRecorder writes a snapshot of every finished game into dir.
type replayRecorder struct {
	dir string
	now func() time.Time
	log logrus.FieldLogger
}

func newReplayRecorder(dir string) *replayRecorder {
	return &replayRecorder{
		dir: dir,
		now: time.Now,
		log: logrus.WithField("dir", dir),
	}
}

func (recorder *replayRecorder) save(session *game.Session) {
	if recorder == nil || recorder.dir == "" {
		return
	}

	stat, err := os.Stat(recorder.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			recorder.log.WithError(err).Warn("cannot save snapshot")
			return
		}
		if err := os.MkdirAll(recorder.dir, 0777); err != nil {
			recorder.log.WithError(err).Warn("cannot create snapshot directory")
			return
		}
	} else if !stat.Mode().IsDir() {
		recorder.log.Warn("snapshot path is not a directory; cannot save snapshots to it")
		return
	}

	// TODO: prevent duplicate filenames when two games end within a second
	filename := replayFilename(session.State(), recorder.now())
	snapshot := session.Snapshot()
	if err := ioutil.WriteFile(filepath.Join(recorder.dir, filename), []byte(snapshot.Serialize()), 0666); err != nil {
		recorder.log.WithError(err).Warn("cannot write snapshot")
		return
	}
	recorder.log.WithField("file", filename).Debug("saved snapshot")
}

var replayOutcomes = map[game.State]string{
	game.Won:  "win",
	game.Lost: "loss",
}

func replayFilename(state game.State, at time.Time) string {
	outcome, ok := replayOutcomes[state]
	if !ok {
		outcome = "other"
	}
	return at.Format("20060102_150405_") + outcome + ".yaml"
}
