package logging

import (
	"context"
	"fmt"
	"os"
	"path"

	stdlog "log"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

/*
 *  Provides diagnostics logging facilities
 */

type logger struct {
	logger  *logrus.Entry
	logFile *os.File
}

// The one singleton logger
var gLogger logger
var gInstanceID string

// Logger returns the global logger. The context parameter is accepted
// for call-site compatibility; no per-context fields are attached.
func Logger(_ context.Context) *logrus.Entry {
	return gLogger.logger
}

func init() {
	// Viper defaults
	viper.SetDefault("logging.location", "stderr")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.level", "info")

	// The app instantiation ID
	gInstanceID = uuid.New().String()

	gLogger.logger = logrus.WithFields(logrus.Fields{
		"pid":      os.Getpid(),
		"exe":      path.Base(os.Args[0]),
		"instance": gInstanceID,
	})
}

// Configure sets the log level and output location/format
func Configure(cfg *viper.Viper) error {
	switch loc := cfg.GetString("logging.location"); loc {
	case "stdout":
		logrus.SetOutput(os.Stdout)
		gLogger.logger = logrus.WithFields(logrus.Fields{})
	case "stderr":
		logrus.SetOutput(os.Stderr)
		gLogger.logger = logrus.WithFields(logrus.Fields{})
	default:
		file, err := os.OpenFile(loc, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}

		gLogger.logger.Debugf("Switching system log to %s", loc)
		logrus.SetOutput(file)

		if gLogger.logFile != nil {
			gLogger.logFile.Close()
		}

		gLogger.logFile = file

		gLogger.logger = logrus.WithFields(logrus.Fields{
			"pid":      os.Getpid(),
			"exe":      path.Base(os.Args[0]),
			"instance": gInstanceID,
		})
	}

	// Obey the level setting in the config if not already in debug mode
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		level := cfg.GetString("logging.level")
		val, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("bad log level: [%s]", level)
		}
		logrus.SetLevel(val)
	}

	if cfg.GetString("logging.format") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// Override the standard system logger
	stdlog.SetOutput(Logger(nil).WriterLevel(logrus.DebugLevel))

	return nil
}
