package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/critter/constants"
)

// setupLogging routes the logger to logs/critter.log when debug is set
// Output is discarded otherwise, the terminal owns stdout and stderr.
// A file over the size limit is rotated to .1 before opening.
func setupLogging(debug bool) (*logrus.Logger, *os.File) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.SetOutput(io.Discard)
	if !debug {
		log.SetLevel(logrus.WarnLevel)
		return log, nil
	}
	log.SetLevel(logrus.DebugLevel)

	if err := os.MkdirAll(constants.LogDir, 0o755); err != nil {
		return log, nil
	}
	path := filepath.Join(constants.LogDir, constants.LogFile)
	if info, err := os.Stat(path); err == nil && info.Size() > constants.LogMaxFileSize {
		_ = os.Rename(path, path+".1")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log, nil
	}
	log.SetOutput(f)
	log.WithField("pid", os.Getpid()).Info("Logging started")
	return log, f
}
