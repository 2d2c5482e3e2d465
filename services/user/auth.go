package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"mandapbook/models"
	"mandapbook/utils"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// verifyPasswordComplexity requires a minimum length plus one uppercase
// letter, one lowercase letter and one digit.
func verifyPasswordComplexity(pw string) error {
	if len(pw) < 8 {
		return utils.Validationf("password must be at least 8 characters long")
	}
	if !regexp.MustCompile(`[A-Z]`).MatchString(pw) {
		return utils.Validationf("password must include at least one uppercase letter")
	}
	if !regexp.MustCompile(`[a-z]`).MatchString(pw) {
		return utils.Validationf("password must include at least one lowercase letter")
	}
	if !regexp.MustCompile(`[0-9]`).MatchString(pw) {
		return utils.Validationf("password must include at least one number")
	}
	return nil
}

// Register creates an account and returns a signed token.
func (s *DefaultUserService) Register(req RegisterRequest) (*AuthResponse, error) {
	logger := utils.GetLogger()

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" {
		return nil, utils.Validationf("name is required")
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, utils.Validationf("a valid email is required")
	}
	if err := verifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	if existing, err := s.Repo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("an account with this email already exists: %w", utils.ErrConflict)
	} else if err != nil && !errors.Is(err, utils.ErrNotFound) {
		logger.Error("existing-account check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("password hash failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	account := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		PhoneNumber:  req.PhoneNumber,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(account); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(account.ID, utils.RoleUser, account.Email, utils.TokenTTL)
	if err != nil {
		logger.Error("token generation failed", zap.String("userId", account.ID), zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	logger.Info("user registered", zap.String("userId", account.ID))
	return &AuthResponse{ID: account.ID, Name: account.Name, Email: account.Email, Token: token}, nil
}

// Login verifies credentials and returns a fresh token. Missing account and
// wrong password are indistinguishable to the caller.
func (s *DefaultUserService) Login(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.Validationf("invalid email or password")
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, utils.Validationf("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, utils.Validationf("invalid email or password")
	}

	token, err := utils.GenerateToken(account.ID, utils.RoleUser, account.Email, utils.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign-in failed, please try again")
	}
	return &AuthResponse{ID: account.ID, Name: account.Name, Email: account.Email, Token: token}, nil
}
