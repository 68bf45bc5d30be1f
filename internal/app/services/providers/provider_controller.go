package providers

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

type ProviderController struct {
	ProviderUsecase ProviderUsecase
	AuthUsecase     auth.AuthUsecase
	Log             *zap.Logger
}

func NewProviderController(providerUsecase ProviderUsecase, authUsecase auth.AuthUsecase, log *zap.Logger) *ProviderController {
	return &ProviderController{
		ProviderUsecase: providerUsecase,
		AuthUsecase:     authUsecase,
		Log:             log,
	}
}

// respondError forces the session out before answering when the data access
// came back unauthorized, so the client lands on login with a clean slate.
func (ctrl *ProviderController) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if exceptions.IsUnauthorized(err) {
		if session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session); ok {
			_ = ctrl.AuthUsecase.HandleUnauthorized(r.Context(), session.SessionID)
		}
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

func (ctrl *ProviderController) GetProviders(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	response, err := ctrl.ProviderUsecase.GetProviders(r.Context(), search)
	if err != nil {
		ctrl.respondError(w, r, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProvidersGetSuccess, response)
}

func (ctrl *ProviderController) GetProvider(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerID")

	response, err := ctrl.ProviderUsecase.GetProvider(r.Context(), providerID)
	if err != nil {
		ctrl.respondError(w, r, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProvidersGetSuccess, response)
}

func (ctrl *ProviderController) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerID")

	if err := ctrl.ProviderUsecase.DeleteProvider(r.Context(), providerID); err != nil {
		ctrl.respondError(w, r, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProviderDeletedSuccess, nil)
}
