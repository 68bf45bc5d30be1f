package routers

import (
	"healthfirst-service/internal/app/delivery/http/middlewares"
	"healthfirst-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", patientController.GetPatients)
	router.Get("/{patientID}", patientController.GetPatient)
}
