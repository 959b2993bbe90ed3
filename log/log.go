// Package log writes diagnostics to a daily file under the logs directory.
// Nothing is emitted unless logs.write is enabled.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vidsel/vidsel/filesystem"
	"github.com/vidsel/vidsel/key"
	"github.com/vidsel/vidsel/where"
)

var logger = discard()

func discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// File returns the path of today's log file.
func File() string {
	return filepath.Join(where.Logs(), time.Now().Format(time.DateOnly)+".log")
}

// Setup points the logger at today's file when logs.write is set.
// An unknown logs.level falls back to info.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		logger = discard()
		return nil
	}

	out, err := filesystem.API().OpenFile(File(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	logger = l
	return nil
}

func Error(args ...any) { logger.Error(args...) }

func Warnf(format string, args ...any) { logger.Warnf(format, args...) }

func Infof(format string, args ...any) { logger.Infof(format, args...) }

func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
