package providers

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

// ProviderMemoryRepository is the default backend: canned records plus
// simulated round-trip latency, tunable through the directory config.
type ProviderMemoryRepository struct {
	mu        sync.RWMutex
	providers map[string]models.Provider
	order     []string
	directory config.Directory
}

func NewProviderMemoryRepository(directory config.Directory) ProviderRepository {
	repo := &ProviderMemoryRepository{
		providers: make(map[string]models.Provider),
		directory: directory,
	}
	if directory.SeedDemoRecords {
		for _, provider := range seedProviders() {
			repo.providers[provider.ID] = provider
			repo.order = append(repo.order, provider.ID)
		}
	}
	return repo
}

func seedProviders() []models.Provider {
	return []models.Provider{
		{
			ID: "1", FirstName: "Dr. John", LastName: "Smith",
			Email: "john.smith@example.com", PhoneNumber: "+1 (555) 123-4567",
			Specialization: "Psychiatry", LicenseNumber: "PSY123456", YearsOfExperience: 15,
			Street: "123 Medical Center Dr", City: "Fort Pierce", State: "FL", Zip: "34950",
			Status: "active",
		},
		{
			ID: "2", FirstName: "Dr. Sarah", LastName: "Johnson",
			Email: "sarah.johnson@example.com", PhoneNumber: "+1 (555) 234-5678",
			Specialization: "Clinical Psychology", LicenseNumber: "PSY789012", YearsOfExperience: 8,
			Street: "456 Health Plaza", City: "Fort Pierce", State: "FL", Zip: "34951",
			Status: "active",
		},
		{
			ID: "3", FirstName: "Dr. Michael", LastName: "Brown",
			Email: "michael.brown@example.com", PhoneNumber: "+1 (555) 345-6789",
			Specialization: "Child Psychiatry", LicenseNumber: "PSY345678", YearsOfExperience: 12,
			Street: "789 Wellness Blvd", City: "Fort Pierce", State: "FL", Zip: "34952",
			Status: "pending",
		},
	}
}

func (repo *ProviderMemoryRepository) delay(ctx context.Context, ms int) error {
	if !repo.directory.SimulateLatency {
		return nil
	}
	return latency.Sleep(ctx, time.Duration(ms)*time.Millisecond)
}

func (repo *ProviderMemoryRepository) FindAll(ctx context.Context) ([]models.Provider, error) {
	if err := repo.delay(ctx, repo.directory.FetchDelayInMs); err != nil {
		return nil, err
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	providers := make([]models.Provider, 0, len(repo.order))
	for _, id := range repo.order {
		providers = append(providers, repo.providers[id])
	}
	return providers, nil
}

func (repo *ProviderMemoryRepository) FindByID(ctx context.Context, providerID string) (*models.Provider, error) {
	if err := repo.delay(ctx, repo.directory.FetchDelayInMs); err != nil {
		return nil, err
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	provider, ok := repo.providers[providerID]
	if !ok {
		return nil, nil
	}
	return &provider, nil
}

func (repo *ProviderMemoryRepository) Create(ctx context.Context, provider *models.Provider) (string, error) {
	if err := repo.delay(ctx, repo.directory.CreateDelayInMs); err != nil {
		return "", err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if provider.ID == "" {
		provider.ID = utils.GenerateRecordID()
	}
	repo.providers[provider.ID] = *provider
	repo.order = append(repo.order, provider.ID)
	return provider.ID, nil
}

func (repo *ProviderMemoryRepository) Update(ctx context.Context, provider *models.Provider) error {
	if err := repo.delay(ctx, repo.directory.UpdateDelayInMs); err != nil {
		return err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.providers[provider.ID]; !ok {
		return exceptions.ErrRecordNotFound(errors.New("provider not found: "+provider.ID), constvars.RecordKindProvider)
	}
	repo.providers[provider.ID] = *provider
	return nil
}

func (repo *ProviderMemoryRepository) Delete(ctx context.Context, providerID string) error {
	if err := repo.delay(ctx, repo.directory.DeleteDelayInMs); err != nil {
		return err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.providers[providerID]; !ok {
		return exceptions.ErrRecordNotFound(errors.New("provider not found: "+providerID), constvars.RecordKindProvider)
	}
	delete(repo.providers, providerID)
	for i, id := range repo.order {
		if id == providerID {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)
			break
		}
	}
	return nil
}
