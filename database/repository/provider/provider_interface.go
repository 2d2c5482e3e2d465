package providerRepo

import "mandapbook/models"

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	GetByID(id string) (*models.Provider, error)
	GetByEmail(email string) (*models.Provider, error)
	GetAll(page, limit int) ([]models.Provider, error)
	Search(query string, page, limit int) ([]models.Provider, error)
	Create(provider *models.Provider) error
	Update(provider *models.Provider) error
	SetApproved(id string, approved bool) error
	SoftDelete(id string) error
}
