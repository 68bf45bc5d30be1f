package routers

import (
	"healthfirst-service/internal/app/delivery/http/middlewares"
	"healthfirst-service/internal/app/services/providers"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(router chi.Router, middlewares *middlewares.Middlewares, providerController *providers.ProviderController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", providerController.GetProviders)
	router.Get("/{providerID}", providerController.GetProvider)
	router.Delete("/{providerID}", providerController.DeleteProvider)
}
