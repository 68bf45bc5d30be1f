package providers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"healthfirst-service/internal/app/models"
	"healthfirst-service/internal/pkg/constvars"
	"healthfirst-service/internal/pkg/exceptions"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type providerUsecase struct {
	ProviderRepository ProviderRepository
	Log                *zap.Logger
}

func NewProviderUsecase(providerRepository ProviderRepository, log *zap.Logger) ProviderUsecase {
	return &providerUsecase{
		ProviderRepository: providerRepository,
		Log:                log,
	}
}

func (uc *providerUsecase) GetProviders(ctx context.Context, search string) ([]models.Provider, error) {
	providers, err := uc.ProviderRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return providers, nil
	}

	needle := strings.ToLower(search)
	return lo.Filter(providers, func(provider models.Provider, _ int) bool {
		haystack := strings.ToLower(provider.FirstName + " " + provider.LastName + " " + provider.Specialization + " " + provider.Email)
		return strings.Contains(haystack, needle)
	}), nil
}

func (uc *providerUsecase) GetProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	provider, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrRecordNotFound(errors.New("provider not found: "+providerID), constvars.RecordKindProvider)
	}
	return provider, nil
}

func (uc *providerUsecase) CreateProvider(ctx context.Context, payload map[string]interface{}) (*models.Provider, error) {
	provider := providerFromPayload(payload, &models.Provider{})
	provider.Status = "active"
	provider.CreatedAt = time.Now()

	providerID, err := uc.ProviderRepository.Create(ctx, provider)
	if err != nil {
		return nil, err
	}
	provider.ID = providerID

	uc.Log.Info("provider registered", zap.String("provider_id", providerID))
	return provider, nil
}

func (uc *providerUsecase) UpdateProvider(ctx context.Context, providerID string, payload map[string]interface{}) (*models.Provider, error) {
	existing, err := uc.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	provider := providerFromPayload(payload, existing)
	provider.UpdatedAt = time.Now()

	if err := uc.ProviderRepository.Update(ctx, provider); err != nil {
		return nil, err
	}

	uc.Log.Info("provider updated", zap.String("provider_id", providerID))
	return provider, nil
}

func (uc *providerUsecase) DeleteProvider(ctx context.Context, providerID string) error {
	if err := uc.ProviderRepository.Delete(ctx, providerID); err != nil {
		return err
	}
	uc.Log.Info("provider deleted", zap.String("provider_id", providerID))
	return nil
}

// providerFromPayload overlays wizard values onto a provider record. Absent
// keys leave the existing value untouched.
func providerFromPayload(payload map[string]interface{}, base *models.Provider) *models.Provider {
	provider := *base
	setString(payload, "first_name", &provider.FirstName)
	setString(payload, "last_name", &provider.LastName)
	setString(payload, "email", &provider.Email)
	setString(payload, "phone_number", &provider.PhoneNumber)
	setString(payload, "specialization", &provider.Specialization)
	setString(payload, "license_number", &provider.LicenseNumber)
	setInt(payload, "years_of_experience", &provider.YearsOfExperience)
	setString(payload, "street", &provider.Street)
	setString(payload, "city", &provider.City)
	setString(payload, "state", &provider.State)
	setString(payload, "zip", &provider.Zip)
	return &provider
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

func setInt(payload map[string]interface{}, key string, target *int) {
	value, found := payload[key]
	if !found {
		return
	}
	switch v := value.(type) {
	case float64:
		*target = int(v)
	case int:
		*target = v
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*target = n
		}
	}
}
