package logging

import (
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// InitLogger sets up the shared logger at the given level
func InitLogger(level logrus.Level) {
	logger = logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// GetLogger returns the shared logger, initializing it at Info level if needed
func GetLogger() *logrus.Logger {
	if logger == nil {
		InitLogger(logrus.InfoLevel)
	}
	return logger
}
