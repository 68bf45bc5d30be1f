package providers

import (
	"context"

	"healthfirst-service/internal/app/models"
)

type ProviderRepository interface {
	FindAll(ctx context.Context) ([]models.Provider, error)
	FindByID(ctx context.Context, providerID string) (*models.Provider, error)
	Create(ctx context.Context, provider *models.Provider) (string, error)
	Update(ctx context.Context, provider *models.Provider) error
	Delete(ctx context.Context, providerID string) error
}

type ProviderUsecase interface {
	GetProviders(ctx context.Context, search string) ([]models.Provider, error)
	GetProvider(ctx context.Context, providerID string) (*models.Provider, error)
	CreateProvider(ctx context.Context, payload map[string]interface{}) (*models.Provider, error)
	UpdateProvider(ctx context.Context, providerID string, payload map[string]interface{}) (*models.Provider, error)
	DeleteProvider(ctx context.Context, providerID string) error
}
