package routers

import (
	"healthfirst-service/internal/app/services/registration"

	"github.com/go-chi/chi/v5"
)

// Registration wizards are reachable without a session: registering is how an
// account comes to exist.
func attachRegistrationRoutes(router chi.Router, registrationController *registration.RegistrationController) {
	router.Post("/password-strength", registrationController.PasswordStrength)
	router.Post("/{kind}", registrationController.CreateWizard)

	router.Route("/wizards/{wizardID}", func(r chi.Router) {
		r.Get("/", registrationController.GetWizard)
		r.Delete("/", registrationController.DeleteWizard)
		r.Patch("/fields/{fieldName}", registrationController.SetField)
		r.Post("/fields/{fieldName}/blur", registrationController.BlurField)
		r.Post("/next", registrationController.Next)
		r.Post("/back", registrationController.Back)
		r.Put("/sections/{sectionName}", registrationController.ToggleSection)
		r.Post("/items/{fieldName}", registrationController.AppendItem)
		r.Delete("/items/{fieldName}", registrationController.RemoveItem)
		r.Post("/submit", registrationController.Submit)
	})
}
