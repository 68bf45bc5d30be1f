package patients

import (
	"context"
	"errors"
	"strings"
	"time"

	"healthfirst-service/internal/app/models"
	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/exceptions"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository PatientRepository, log *zap.Logger) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               log,
	}
}

func (uc *patientUsecase) GetPatients(ctx context.Context, search string) ([]models.Patient, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return patients, nil
	}

	needle := strings.ToLower(search)
	return lo.Filter(patients, func(patient models.Patient, _ int) bool {
		haystack := strings.ToLower(patient.FirstName + " " + patient.LastName + " " + patient.Email)
		return strings.Contains(haystack, needle)
	}), nil
}

func (uc *patientUsecase) GetPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrRecordNotFound(errors.New("patient not found: "+patientID), constvars.RecordKindPatient)
	}
	return patient, nil
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, payload map[string]interface{}) (*models.Patient, error) {
	patient := patientFromPayload(payload, &models.Patient{})
	patient.UserID = "A8431"
	patient.Status = "Active"
	patient.LastLogin = time.Now().Format("Mon, 02-01-2006")
	patient.CreatedAt = time.Now()

	patientID, err := uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	uc.Log.Info("patient registered", zap.String("patient_id", patientID))
	return patient, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, payload map[string]interface{}) (*models.Patient, error) {
	existing, err := uc.GetPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	patient := patientFromPayload(payload, existing)
	patient.UpdatedAt = time.Now()

	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		return nil, err
	}

	uc.Log.Info("patient updated", zap.String("patient_id", patientID))
	return patient, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	if err := uc.PatientRepository.Delete(ctx, patientID); err != nil {
		return err
	}
	uc.Log.Info("patient deleted", zap.String("patient_id", patientID))
	return nil
}

func patientFromPayload(payload map[string]interface{}, base *models.Patient) *models.Patient {
	patient := *base
	setString(payload, "first_name", &patient.FirstName)
	setString(payload, "last_name", &patient.LastName)
	setString(payload, "email", &patient.Email)
	setString(payload, "phone_number", &patient.PhoneNumber)
	setString(payload, "date_of_birth", &patient.DateOfBirth)
	setString(payload, "gender", &patient.Gender)
	setString(payload, "street", &patient.Street)
	setString(payload, "city", &patient.City)
	setString(payload, "state", &patient.State)
	setString(payload, "zip", &patient.Zip)
	setString(payload, "emergency_contact_name", &patient.EmergencyContactName)
	setString(payload, "emergency_contact_phone", &patient.EmergencyContactPhone)
	setString(payload, "emergency_contact_relationship", &patient.EmergencyContactRelationship)
	setString(payload, "insurance_provider", &patient.InsuranceProvider)
	setString(payload, "policy_number", &patient.PolicyNumber)
	if value, found := payload["medical_history"]; found {
		patient.MedicalHistory = toStringSlice(value)
	}
	return &patient
}

func setString(payload map[string]interface{}, key string, target *string) {
	value, found := payload[key]
	if !found {
		return
	}
	if s, ok := value.(string); ok {
		*target = strings.TrimSpace(s)
	}
}

func toStringSlice(value interface{}) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return items
	default:
		return nil
	}
}
