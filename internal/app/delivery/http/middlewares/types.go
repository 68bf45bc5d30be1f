package middlewares

import (
	"healthfirst-service/internal/app/config"
	"healthfirst-service/internal/app/services/auth"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    auth.AuthUsecase
	InternalConfig *config.InternalConfig
}

func New(log *zap.Logger, authUsecase auth.AuthUsecase, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            log,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}
