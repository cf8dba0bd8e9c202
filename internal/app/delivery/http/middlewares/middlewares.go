package middlewares

import (
	"carehome-service/internal/app/config"
	"carehome-service/internal/app/services/shared/session"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	Authenticator  session.Authenticator
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, authenticator session.Authenticator, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		Authenticator:  authenticator,
		InternalConfig: internalConfig,
	}
}
