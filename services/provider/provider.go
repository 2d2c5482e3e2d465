// Package provider implements provider onboarding and sign-in. A new
// provider lands in a pending state; an admin resolves the approval
// request before the account can sign in and list venues.
package provider

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	approvalRepo "mandapbook/database/repository/approval"
	providerRepo "mandapbook/database/repository/provider"
	"mandapbook/models"
	"mandapbook/services/notification"
	"mandapbook/utils"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthResponse is returned on successful provider sign-in.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// RegisterRequest carries a new provider's credentials and profile basics.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
}

// ProviderService is the provider account surface.
type ProviderService interface {
	Register(req RegisterRequest) (*models.Provider, error)
	Login(email, password string) (*AuthResponse, error)
	GetProfile(providerID string) (*models.Provider, error)
	UpdateProfile(providerID string, patch map[string]any) (*models.Provider, error)
	RegisterDevice(providerID, fcmToken string) error
}

// DefaultProviderService is the production provider service.
type DefaultProviderService struct {
	Repo      providerRepo.ProviderRepository
	Approvals approvalRepo.ApprovalRepository
	Notifier  notification.Dispatcher
}

// Register creates an unapproved provider and files the approval request
// the admin dashboard works from. No token is issued until approval.
func (s *DefaultProviderService) Register(req RegisterRequest) (*models.Provider, error) {
	logger := utils.GetLogger()

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" {
		return nil, utils.Validationf("name is required")
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, utils.Validationf("a valid email is required")
	}
	if len(req.Password) < 8 {
		return nil, utils.Validationf("password must be at least 8 characters long")
	}

	if existing, err := s.Repo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("a provider with this email already exists: %w", utils.ErrConflict)
	} else if err != nil && !errors.Is(err, utils.ErrNotFound) {
		logger.Error("existing-provider check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("password hash failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	provider := &models.Provider{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		PhoneNumber:  req.PhoneNumber,
		IsApproved:   false,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(provider); err != nil {
		return nil, err
	}

	request := &models.ApprovalRequest{
		ID:         uuid.New().String(),
		ProviderID: provider.ID,
		Status:     models.ApprovalPending,
		CreatedAt:  now,
	}
	if err := s.Approvals.Create(request); err != nil {
		logger.Error("approval request creation failed",
			zap.String("providerId", provider.ID), zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	if s.Notifier != nil {
		go s.Notifier.Notify(context.Background(), notification.EventProviderRegistered, map[string]string{
			"providerId": provider.ID,
			"message":    fmt.Sprintf("provider %s awaits approval", provider.Name),
		})
	}

	logger.Info("provider registered, approval pending", zap.String("providerId", provider.ID))
	return provider, nil
}

// Login verifies credentials and returns a token. Unapproved providers are
// told why instead of getting the generic credentials error.
func (s *DefaultProviderService) Login(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	provider, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.Validationf("invalid email or password")
		}
		return nil, err
	}
	if !provider.IsActive {
		return nil, utils.Validationf("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(provider.PasswordHash), []byte(password)) != nil {
		return nil, utils.Validationf("invalid email or password")
	}
	if !provider.IsApproved {
		// A pending request means the application is still in the queue.
		// Its absence means an admin already declined it.
		if _, aerr := s.Approvals.GetPendingByProvider(provider.ID); aerr != nil && errors.Is(aerr, utils.ErrNotFound) {
			return nil, fmt.Errorf("provider application was declined: %w", utils.ErrForbidden)
		}
		return nil, fmt.Errorf("provider account is awaiting admin approval: %w", utils.ErrForbidden)
	}

	token, err := utils.GenerateToken(provider.ID, utils.RoleProvider, provider.Email, utils.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign-in failed, please try again")
	}
	return &AuthResponse{ID: provider.ID, Name: provider.Name, Email: provider.Email, Token: token}, nil
}

// GetProfile returns the provider's own account.
func (s *DefaultProviderService) GetProfile(providerID string) (*models.Provider, error) {
	return s.Repo.GetByID(providerID)
}

// UpdateProfile patches the mutable profile fields. Credentials and the
// approval flag are not patchable here.
func (s *DefaultProviderService) UpdateProfile(providerID string, patch map[string]any) (*models.Provider, error) {
	provider, err := s.Repo.GetByID(providerID)
	if err != nil {
		return nil, err
	}

	changed := false
	for field, value := range patch {
		str, _ := value.(string)
		switch field {
		case "name":
			if str == "" {
				return nil, utils.Validationf("name cannot be empty")
			}
			provider.Name = str
			changed = true
		case "phoneNumber":
			provider.PhoneNumber = str
			changed = true
		default:
			return nil, utils.Validationf("field %q cannot be updated", field)
		}
	}
	if !changed {
		return nil, utils.Validationf("no updatable fields in request")
	}

	provider.UpdatedAt = time.Now()
	if err := s.Repo.Update(provider); err != nil {
		return nil, err
	}
	return provider, nil
}

// RegisterDevice stores the device's push token on the provider account.
func (s *DefaultProviderService) RegisterDevice(providerID, fcmToken string) error {
	if fcmToken == "" {
		return utils.Validationf("fcmToken is required")
	}
	provider, err := s.Repo.GetByID(providerID)
	if err != nil {
		return err
	}
	provider.FCMToken = fcmToken
	provider.UpdatedAt = time.Now()
	return s.Repo.Update(provider)
}
