package patients

import (
	"context"
	"errors"
	"sync"
	"time"

	"healthfirst-service/internal/app/config"
	"healthfirst-service/internal/app/models"
	"healthfirst-service/internal/app/services/shared/latency"
	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/exceptions"
	"healthfirst-service/internal/pkg/utils"
)

type PatientMemoryRepository struct {
	mu        sync.RWMutex
	patients  map[string]models.Patient
	order     []string
	directory config.Directory
}

func NewPatientMemoryRepository(directory config.Directory) PatientRepository {
	repo := &PatientMemoryRepository{
		patients:  make(map[string]models.Patient),
		directory: directory,
	}
	if directory.SeedDemoRecords {
		for _, patient := range seedPatients() {
			repo.patients[patient.ID] = patient
			repo.order = append(repo.order, patient.ID)
		}
	}
	return repo
}

func seedPatients() []models.Patient {
	return []models.Patient{
		{
			ID: "1", UserID: "A8431", FirstName: "Cameron", LastName: "Williamson",
			Email: "cameron.williamson@example.com", PhoneNumber: "(569) 822-4144",
			DateOfBirth: "1990-05-15", Gender: "Male",
			Street: "123 Main St", City: "Fort Pierce", State: "FL", Zip: "34950",
			InsuranceProvider: "Blue Cross Blue Shield", PolicyNumber: "BCBS123456",
			EmergencyContactName: "Sarah Williamson", EmergencyContactPhone: "(569) 822-4145",
			EmergencyContactRelationship: "Spouse",
			MedicalHistory:               []string{"Hypertension", "Diabetes Type 2"},
			Status:                       "Active", LastLogin: "Mon, 24-06-2023",
		},
		{
			ID: "2", UserID: "A8431", FirstName: "Ronald", LastName: "Richards",
			Email: "ronald.richards@example.com", PhoneNumber: "(569) 822-4144",
			DateOfBirth: "1985-08-22", Gender: "Male",
			Street: "456 Oak Ave", City: "Fort Pierce", State: "FL", Zip: "34951",
			InsuranceProvider: "United Healthcare", PolicyNumber: "UHC789012",
			EmergencyContactName: "Mary Richards", EmergencyContactPhone: "(569) 822-4146",
			EmergencyContactRelationship: "Wife",
			MedicalHistory:               []string{"Asthma", "Allergies"},
			Status:                       "Active", LastLogin: "Mon, 24-06-2023",
		},
		{
			ID: "3", UserID: "A8431", FirstName: "Eleanor", LastName: "Pena",
			Email: "eleanor.pena@example.com", PhoneNumber: "(569) 822-4144",
			DateOfBirth: "1992-03-10", Gender: "Female",
			Street: "789 Pine Rd", City: "Fort Pierce", State: "FL", Zip: "34952",
			InsuranceProvider: "Aetna", PolicyNumber: "AET345678",
			EmergencyContactName: "John Pena", EmergencyContactPhone: "(569) 822-4147",
			EmergencyContactRelationship: "Husband",
			MedicalHistory:               []string{"Depression", "Anxiety"},
			Status:                       "Active", LastLogin: "Mon, 24-06-2023",
		},
		{
			ID: "4", UserID: "A8431", FirstName: "Darrell", LastName: "Steward",
			Email: "darrell.steward@example.com", PhoneNumber: "(569) 822-4144",
			DateOfBirth: "1988-11-05", Gender: "Female",
			Street: "321 Elm St", City: "Fort Pierce", State: "FL", Zip: "34953",
			InsuranceProvider: "Cigna", PolicyNumber: "CIG901234",
			EmergencyContactName: "Robert Steward", EmergencyContactPhone: "(569) 822-4148",
			EmergencyContactRelationship: "Brother",
			MedicalHistory:               []string{"Migraine", "Insomnia"},
			Status:                       "Active", LastLogin: "Mon, 24-06-2023",
		},
		{
			ID: "5", UserID: "A8431", FirstName: "Guy", LastName: "Hawkins",
			Email: "guy.hawkins@example.com", PhoneNumber: "(569) 822-4144",
			DateOfBirth: "1995-07-18", Gender: "Male",
			Street: "654 Maple Dr", City: "Fort Pierce", State: "FL", Zip: "34954",
			InsuranceProvider: "Humana", PolicyNumber: "HUM567890",
			EmergencyContactName: "Lisa Hawkins", EmergencyContactPhone: "(569) 822-4149",
			EmergencyContactRelationship: "Sister",
			MedicalHistory:               []string{"ADHD", "Learning Disability"},
			Status:                       "Active", LastLogin: "Mon, 24-06-2023",
		},
		{
			ID: "6", UserID: "A8431", FirstName: "Robert", LastName: "Fox",
			Email: "robert.fox@example.com", PhoneNumber: "(569) 822-4144",
			DateOfBirth: "1983-12-25", Gender: "Male",
			Street: "987 Cedar Ln", City: "Fort Pierce", State: "FL", Zip: "34955",
			InsuranceProvider: "Kaiser Permanente", PolicyNumber: "KAI234567",
			EmergencyContactName: "Jennifer Fox", EmergencyContactPhone: "(569) 822-4150",
			EmergencyContactRelationship: "Daughter",
			MedicalHistory:               []string{"Bipolar Disorder", "PTSD"},
			Status:                       "Active", LastLogin: "Mon, 24-06-2023",
		},
	}
}

func (repo *PatientMemoryRepository) delay(ctx context.Context, ms int) error {
	if !repo.directory.SimulateLatency {
		return nil
	}
	return latency.Sleep(ctx, time.Duration(ms)*time.Millisecond)
}

func (repo *PatientMemoryRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	if err := repo.delay(ctx, repo.directory.FetchDelayInMs); err != nil {
		return nil, err
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	patients := make([]models.Patient, 0, len(repo.order))
	for _, id := range repo.order {
		patients = append(patients, repo.patients[id])
	}
	return patients, nil
}

func (repo *PatientMemoryRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	if err := repo.delay(ctx, repo.directory.FetchDelayInMs); err != nil {
		return nil, err
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	patient, ok := repo.patients[patientID]
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

func (repo *PatientMemoryRepository) Create(ctx context.Context, patient *models.Patient) (string, error) {
	if err := repo.delay(ctx, repo.directory.CreateDelayInMs); err != nil {
		return "", err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if patient.ID == "" {
		patient.ID = utils.GenerateRecordID()
	}
	repo.patients[patient.ID] = *patient
	repo.order = append(repo.order, patient.ID)
	return patient.ID, nil
}

func (repo *PatientMemoryRepository) Update(ctx context.Context, patient *models.Patient) error {
	if err := repo.delay(ctx, repo.directory.UpdateDelayInMs); err != nil {
		return err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.patients[patient.ID]; !ok {
		return exceptions.ErrRecordNotFound(errors.New("patient not found: "+patient.ID), constvars.RecordKindPatient)
	}
	repo.patients[patient.ID] = *patient
	return nil
}

func (repo *PatientMemoryRepository) Delete(ctx context.Context, patientID string) error {
	if err := repo.delay(ctx, repo.directory.DeleteDelayInMs); err != nil {
		return err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.patients[patientID]; !ok {
		return exceptions.ErrRecordNotFound(errors.New("patient not found: "+patientID), constvars.RecordKindPatient)
	}
	delete(repo.patients, patientID)
	for i, id := range repo.order {
		if id == patientID {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)
			break
		}
	}
	return nil
}
