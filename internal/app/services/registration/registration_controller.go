package registration

import (
	"context"
	"net/http"
	"time"

	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/dto/requests"
	"healthfirst-service/internal/pkg/exceptions"
	"healthfirst-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RegistrationController struct {
	RegistrationUsecase RegistrationUsecase
	Log                 *zap.Logger
}

func NewRegistrationController(registrationUsecase RegistrationUsecase, log *zap.Logger) *RegistrationController {
	return &RegistrationController{
		RegistrationUsecase: registrationUsecase,
		Log:                 log,
	}
}

func (ctrl *RegistrationController) CreateWizard(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	request := new(requests.CreateWizard)
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	response, err := ctrl.RegistrationUsecase.CreateWizard(r.Context(), kind, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WizardCreatedSuccess, response)
}

func (ctrl *RegistrationController) GetWizard(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "wizardID")

	response, err := ctrl.RegistrationUsecase.GetWizard(r.Context(), wizardID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardStateSuccess, response)
}

func (ctrl *RegistrationController) DeleteWizard(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "wizardID")

	if err := ctrl.RegistrationUsecase.DeleteWizard(r.Context(), wizardID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.WriteHeader(constvars.StatusNoContent)
}

func (ctrl *RegistrationController) SetField(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "wizardID")
	fieldName := chi.URLParam(r, "fieldName")

	request := new(requests.SetWizardField)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.RegistrationUsecase.SetField(r.Context(), wizardID, fieldName, request.Value)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardFieldSetSuccess, response)
}

func (ctrl *RegistrationController) BlurField(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "wizardID")
	fieldName := chi.URLParam(r, "fieldName")

	response, err := ctrl.RegistrationUsecase.BlurField(r.Context(), wizardID, fieldName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardFieldSetSuccess, response)
}

func (ctrl *RegistrationController) Next(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "wizardID")

	response, err := ctrl.RegistrationUsecase.Next(r.Context(), wizardID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardStepSuccess, response)
}

func (ctrl *RegistrationController) Back(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "wizardID")

	response, err := ctrl.RegistrationUsecase.Back(r.Context(), wizardID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardStepSuccess, response)
}

func (ctrl *RegistrationController) ToggleSection(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "wizardID")
	sectionName := chi.URLParam(r, "sectionName")

	request := new(requests.ToggleWizardSection)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.RegistrationUsecase.ToggleSection(r.Context(), wizardID, sectionName, request.On)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardSectionSuccess, response)
}

func (ctrl *RegistrationController) AppendItem(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "wizardID")
	fieldName := chi.URLParam(r, "fieldName")

	request := new(requests.AppendWizardItem)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.RegistrationUsecase.AppendItem(r.Context(), wizardID, fieldName, request.Item)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardItemAppendedSuccess, response)
}

func (ctrl *RegistrationController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "wizardID")
	fieldName := chi.URLParam(r, "fieldName")

	request := new(requests.RemoveWizardItem)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.RegistrationUsecase.RemoveItem(r.Context(), wizardID, fieldName, request.Item)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardItemAppendedSuccess, response)
}

func (ctrl *RegistrationController) Submit(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "wizardID")

	// The simulated persistence latency sits inside this window.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.RegistrationUsecase.Submit(ctx, wizardID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardSubmittedSuccess, response)
}

func (ctrl *RegistrationController) PasswordStrength(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PasswordStrength)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response := ctrl.RegistrationUsecase.PasswordStrength(request.Password)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardStateSuccess, response)
}
