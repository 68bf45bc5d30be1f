package patients

import (
	"context"

	"healthfirst-service/internal/app/models"
)

type PatientRepository interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) (string, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, patientID string) error
}

type PatientUsecase interface {
	GetPatients(ctx context.Context, search string) ([]models.Patient, error)
	GetPatient(ctx context.Context, patientID string) (*models.Patient, error)
	CreatePatient(ctx context.Context, payload map[string]interface{}) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, payload map[string]interface{}) (*models.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
}
