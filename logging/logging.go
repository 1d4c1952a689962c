package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/blogem/petition-desk/config"
)

// Setup configures the global logrus logger from cfg. The returned closer
// flushes the rotated log file, if one was configured.
func Setup(cfg *config.Config) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	log.SetFormatter(newFormatter(cfg.LogFormat))

	if cfg.LogFile == "" {
		log.SetOutput(os.Stdout)
		return nopCloser{}, nil
	}

	rotated := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotated))
	return rotated, nil
}

func newFormatter(format string) log.Formatter {
	if format == "json" {
		return &log.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"}
	}
	return &prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		ForceFormatting: true,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
