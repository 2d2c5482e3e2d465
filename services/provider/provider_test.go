package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mandapbook/models"
	"mandapbook/utils"
)

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) GetByID(id string) (*models.Provider, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Provider), args.Error(1)
}

func (m *MockProviderRepository) GetByEmail(email string) (*models.Provider, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Provider), args.Error(1)
}

func (m *MockProviderRepository) GetAll(page, limit int) ([]models.Provider, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Provider), args.Error(1)
}

func (m *MockProviderRepository) Search(query string, page, limit int) ([]models.Provider, error) {
	args := m.Called(query, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Provider), args.Error(1)
}

func (m *MockProviderRepository) Create(provider *models.Provider) error {
	args := m.Called(provider)
	return args.Error(0)
}

func (m *MockProviderRepository) Update(provider *models.Provider) error {
	args := m.Called(provider)
	return args.Error(0)
}

func (m *MockProviderRepository) SetApproved(id string, approved bool) error {
	args := m.Called(id, approved)
	return args.Error(0)
}

func (m *MockProviderRepository) SoftDelete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func testProvider() *models.Provider {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return &models.Provider{
		ID:          "provider-1",
		Name:        "Shree Mandap Services",
		Email:       "shree@example.com",
		PhoneNumber: "9800000000",
		IsApproved:  true,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestUpdateProviderProfile_PatchesNameAndPhone(t *testing.T) {
	repo := new(MockProviderRepository)
	repo.On("GetByID", "provider-1").Return(testProvider(), nil)
	repo.On("Update", mock.AnythingOfType("*models.Provider")).Return(nil)

	svc := &DefaultProviderService{Repo: repo}
	updated, err := svc.UpdateProfile("provider-1", map[string]any{
		"name":        "Shree Mandap & Events",
		"phoneNumber": "9811111111",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Shree Mandap & Events", updated.Name)
	assert.Equal(t, "9811111111", updated.PhoneNumber)
	repo.AssertCalled(t, "Update", mock.AnythingOfType("*models.Provider"))
}

func TestUpdateProviderProfile_RejectsUnknownField(t *testing.T) {
	repo := new(MockProviderRepository)
	repo.On("GetByID", "provider-1").Return(testProvider(), nil)

	svc := &DefaultProviderService{Repo: repo}
	_, err := svc.UpdateProfile("provider-1", map[string]any{"email": "new@example.com"})

	assert.True(t, utils.IsValidation(err))
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateProviderProfile_EmptyNameRejected(t *testing.T) {
	repo := new(MockProviderRepository)
	repo.On("GetByID", "provider-1").Return(testProvider(), nil)

	svc := &DefaultProviderService{Repo: repo}
	_, err := svc.UpdateProfile("provider-1", map[string]any{"name": ""})

	assert.True(t, utils.IsValidation(err))
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateProviderProfile_EmptyPatchRejected(t *testing.T) {
	repo := new(MockProviderRepository)
	repo.On("GetByID", "provider-1").Return(testProvider(), nil)

	svc := &DefaultProviderService{Repo: repo}
	_, err := svc.UpdateProfile("provider-1", map[string]any{})

	assert.True(t, utils.IsValidation(err))
	repo.AssertNotCalled(t, "Update", mock.Anything)
}
