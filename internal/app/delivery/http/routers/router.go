package routers

import (
	"fmt"
	"net/http"
	"time"

	"healthfirst-service/internal/app/config"
	"healthfirst-service/internal/app/delivery/http/middlewares"
	"healthfirst-service/internal/app/services/auth"
	"healthfirst-service/internal/app/services/patients"
	"healthfirst-service/internal/app/services/providers"
	"healthfirst-service/internal/app/services/registration"
	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	registrationController *registration.RegistrationController,
	providerController *providers.ProviderController,
	patientController *patients.PatientController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	router.Handle("/metrics", promhttp.Handler())

	// Unknown paths behave like the client's catch-all route: back to login.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusNotFound, "", map[string]string{
			"landing": constvars.ViewLogin,
		})
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, internalConfig, authController)
			})

			r.Route("/registrations", func(r chi.Router) {
				attachRegistrationRoutes(r, registrationController)
			})

			r.Route("/providers", func(r chi.Router) {
				attachProviderRoutes(r, middlewares, providerController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})
		})
	})
}
