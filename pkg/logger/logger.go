package logger

import (
	"fmt"
	"io"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

// SetupLogger configures the global logrus logger. Unknown levels fall back to info.
func SetupLogger(level string) {
	log.SetReportCaller(true)
	log.SetFormatter(&log.JSONFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
		},
		TimestampFormat: timestampFormat,
	})

	loggerLevel, err := log.ParseLevel(level)
	if err != nil {
		log.Infof("Level setup default INFO, err: %v", err)
		log.SetLevel(log.InfoLevel)
		return
	}
	log.SetLevel(loggerLevel)
}

// SetOutput redirects the global logger, mostly for tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}
