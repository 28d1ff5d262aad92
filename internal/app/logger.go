package app

import (
	"github.com/bannermatch/bannermatch/internal/config"
	"github.com/bannermatch/bannermatch/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
