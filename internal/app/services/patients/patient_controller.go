package patients

import (
	"net/http"

	"healthfirst-service/internal/app/models"
	"healthfirst-service/internal/app/services/auth"
	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/exceptions"
	"healthfirst-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	PatientUsecase PatientUsecase
	AuthUsecase    auth.AuthUsecase
	Log            *zap.Logger
}

func NewPatientController(patientUsecase PatientUsecase, authUsecase auth.AuthUsecase, log *zap.Logger) *PatientController {
	return &PatientController{
		PatientUsecase: patientUsecase,
		AuthUsecase:    authUsecase,
		Log:            log,
	}
}

// respondError forces the session out before answering when the data access
// came back unauthorized, so the client lands on login with a clean slate.
func (ctrl *PatientController) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if exceptions.IsUnauthorized(err) {
		if session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session); ok {
			_ = ctrl.AuthUsecase.HandleUnauthorized(r.Context(), session.SessionID)
		}
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

func (ctrl *PatientController) GetPatients(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	response, err := ctrl.PatientUsecase.GetPatients(r.Context(), search)
	if err != nil {
		ctrl.respondError(w, r, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientsGetSuccess, response)
}

func (ctrl *PatientController) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")

	response, err := ctrl.PatientUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		ctrl.respondError(w, r, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientsGetSuccess, response)
}
