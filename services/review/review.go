// Package review implements venue reviews. A review is tied to a completed
// booking and each booking carries at most one.
package review

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "mandapbook/database/repository/booking"
	reviewRepo "mandapbook/database/repository/review"
	"mandapbook/models"
	"mandapbook/utils"
)

// CreateReviewRequest carries a user's rating of a booked venue.
type CreateReviewRequest struct {
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// UpdateReviewRequest patches an existing review. Nil fields keep their
// current value.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// ReviewService is the review surface.
type ReviewService interface {
	CreateReview(userID string, req CreateReviewRequest) (*models.Review, error)
	UpdateReview(userID, reviewID string, req UpdateReviewRequest) (*models.Review, error)
	ListByVenue(venueID string) ([]models.Review, error)
	DeleteReview(userID, reviewID string) error
}

// DefaultReviewService is the production review service.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository
}

// CreateReview records a rating against the caller's own booking and flags
// the booking so a second review of it is refused.
func (s *DefaultReviewService) CreateReview(userID string, req CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.Validationf("rating must be between 1 and 5")
	}

	booking, err := s.Bookings.GetActiveByID(req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("booking %s does not belong to caller: %w", booking.ID, utils.ErrForbidden)
	}
	if booking.IsReviewAdded {
		return nil, fmt.Errorf("booking %s already has a review: %w", booking.ID, utils.ErrConflict)
	}

	now := time.Now()
	review := &models.Review{
		ID:        uuid.New().String(),
		VenueID:   booking.VenueID,
		UserID:    userID,
		BookingID: booking.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, err
	}
	if err := s.Bookings.SetReviewAdded(booking.ID, true); err != nil {
		utils.GetLogger().Warn("review flag update failed",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
	return review, nil
}

// UpdateReview edits the caller's own review in place.
func (s *DefaultReviewService) UpdateReview(userID, reviewID string, req UpdateReviewRequest) (*models.Review, error) {
	review, err := s.Repo.GetActiveByID(reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, fmt.Errorf("review %s does not belong to caller: %w", review.ID, utils.ErrForbidden)
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, utils.Validationf("rating must be between 1 and 5")
		}
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	review.UpdatedAt = time.Now()
	if err := s.Repo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListByVenue returns a venue's active reviews.
func (s *DefaultReviewService) ListByVenue(venueID string) ([]models.Review, error) {
	return s.Repo.GetActiveByVenue(venueID)
}

// DeleteReview soft-deletes the caller's own review and re-opens the
// booking's review slot.
func (s *DefaultReviewService) DeleteReview(userID, reviewID string) error {
	review, err := s.Repo.GetActiveByID(reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return fmt.Errorf("review %s does not belong to caller: %w", review.ID, utils.ErrForbidden)
	}
	if err := s.Repo.SoftDelete(review.ID); err != nil {
		return err
	}
	if err := s.Bookings.SetReviewAdded(review.BookingID, false); err != nil {
		utils.GetLogger().Warn("review flag reset failed",
			zap.String("bookingId", review.BookingID), zap.Error(err))
	}
	return nil
}
