package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before InitLogger runs.
var Log = logrus.New()

// InitLogger sets level and output. Output goes to out (stderr when nil) and,
// when filePath is set, to that file as well. Stdout is left to command
// output. An unknown level falls back to info.
func InitLogger(levelStr string, filePath string, out io.Writer) error {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if out == nil {
		out = os.Stderr
	}
	if filePath != "" {
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		out = io.MultiWriter(out, file)
	}
	l.SetOutput(out)

	Log = l
	return nil
}
