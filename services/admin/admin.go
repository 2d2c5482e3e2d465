// Package admin implements the back-office surface: resolving provider
// approval requests, the persistent notification feed and the platform-wide
// booking view.
package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	approvalRepo "mandapbook/database/repository/approval"
	providerRepo "mandapbook/database/repository/provider"
	userRepo "mandapbook/database/repository/user"
	"mandapbook/models"
	"mandapbook/services/notification"
	"mandapbook/utils"
)

// AdminService is the back-office surface.
type AdminService interface {
	ListPendingApprovals() ([]models.ApprovalRequest, error)
	ApproveProvider(requestID, remark string) error
	RejectProvider(requestID, remark string) error

	ListProviders(page, limit int) ([]models.Provider, error)
	ListUsers(page, limit int) ([]models.User, error)
	SearchProviders(query string, page, limit int) ([]models.Provider, error)
	SearchUsers(query string, page, limit int) ([]models.User, error)

	ListNotifications(unreadOnly bool) ([]models.AdminNotification, error)
	MarkNotificationRead(id string) error
}

// DefaultAdminService is the production back-office service.
type DefaultAdminService struct {
	Approvals approvalRepo.ApprovalRepository
	Providers providerRepo.ProviderRepository
	Users     userRepo.UserRepository
	Notifier  notification.Dispatcher
}

// ListPendingApprovals returns unresolved provider approval requests.
func (s *DefaultAdminService) ListPendingApprovals() ([]models.ApprovalRequest, error) {
	return s.Approvals.ListPending()
}

// ApproveProvider resolves the request, flips the provider's approved flag
// and notifies them.
func (s *DefaultAdminService) ApproveProvider(requestID, remark string) error {
	return s.resolve(requestID, models.ApprovalApproved, remark)
}

// RejectProvider resolves the request as rejected and notifies the
// provider. The account stays unapproved and cannot sign in.
func (s *DefaultAdminService) RejectProvider(requestID, remark string) error {
	return s.resolve(requestID, models.ApprovalRejected, remark)
}

func (s *DefaultAdminService) resolve(requestID, status, remark string) error {
	request, err := s.pendingRequest(requestID)
	if err != nil {
		return err
	}

	if err := s.Approvals.Resolve(request.ID, status, remark); err != nil {
		return err
	}

	approved := status == models.ApprovalApproved
	if err := s.Providers.SetApproved(request.ProviderID, approved); err != nil {
		return fmt.Errorf("approval flag update failed for provider %s: %w", request.ProviderID, err)
	}

	event := notification.EventProviderRejected
	message := "your provider registration was rejected"
	if approved {
		event = notification.EventProviderApproved
		message = "your provider registration was approved, you can now sign in"
	}
	if remark != "" {
		message = fmt.Sprintf("%s: %s", message, remark)
	}

	s.record(string(event), fmt.Sprintf("provider %s %s", request.ProviderID, status))
	if s.Notifier != nil {
		go s.Notifier.Notify(context.Background(), event, map[string]string{
			"providerId": request.ProviderID,
			"message":    message,
		})
	}

	utils.GetLogger().Info("approval request resolved",
		zap.String("requestId", request.ID),
		zap.String("providerId", request.ProviderID),
		zap.String("status", status))
	return nil
}

// pendingRequest loads a request and rejects double resolution.
func (s *DefaultAdminService) pendingRequest(requestID string) (*models.ApprovalRequest, error) {
	requests, err := s.Approvals.ListPending()
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID == requestID {
			return &requests[i], nil
		}
	}
	return nil, fmt.Errorf("pending approval request %s: %w", requestID, utils.ErrNotFound)
}

// record appends to the persistent admin notification feed. Feed failures
// only log; they never fail the action that produced them.
func (s *DefaultAdminService) record(event, message string) {
	n := &models.AdminNotification{
		ID:        uuid.New().String(),
		Event:     event,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.Approvals.CreateNotification(n); err != nil {
		utils.GetLogger().Warn("admin notification write failed", zap.Error(err))
	}
}

// ListProviders pages through every provider account, approved or not.
func (s *DefaultAdminService) ListProviders(page, limit int) ([]models.Provider, error) {
	return s.Providers.GetAll(page, limit)
}

// ListUsers pages through every user account.
func (s *DefaultAdminService) ListUsers(page, limit int) ([]models.User, error) {
	return s.Users.GetAll(page, limit)
}

// SearchProviders matches provider accounts by name or email.
func (s *DefaultAdminService) SearchProviders(query string, page, limit int) ([]models.Provider, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.Validationf("search query is required")
	}
	return s.Providers.Search(query, page, limit)
}

// SearchUsers matches user accounts by name or email.
func (s *DefaultAdminService) SearchUsers(query string, page, limit int) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.Validationf("search query is required")
	}
	return s.Users.Search(query, page, limit)
}

// ListNotifications returns the admin feed, optionally unread only.
func (s *DefaultAdminService) ListNotifications(unreadOnly bool) ([]models.AdminNotification, error) {
	return s.Approvals.ListNotifications(unreadOnly)
}

// MarkNotificationRead flags one feed entry as read.
func (s *DefaultAdminService) MarkNotificationRead(id string) error {
	return s.Approvals.MarkNotificationRead(id)
}
