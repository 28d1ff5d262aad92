package app

import (
	"github.com/bannermatch/bannermatch/internal/http/middleware"
	"github.com/bannermatch/bannermatch/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
