package routers

import (
	"time"

	"healthfirst-service/internal/app/config"
	"healthfirst-service/internal/app/delivery/http/middlewares"
	"healthfirst-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, internalConfig *config.InternalConfig, authController *auth.AuthController) {
	loginLimiter := middlewares.NewRateLimiter(
		internalConfig.App.LoginMaxAttemptsPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.LoginBlockTimeInMinutes)*time.Minute,
	)

	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.Post("/logout", authController.Logout)
}
