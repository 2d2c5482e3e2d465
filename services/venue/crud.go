package venue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"mandapbook/models"
	"mandapbook/utils"
)

// CreateVenue lists a new venue under the provider. AvailableDates are
// normalized before storage so every later membership check is a plain
// string comparison.
func (s *DefaultVenueService) CreateVenue(providerID string, venue models.Venue) (*models.Venue, error) {
	if providerID == "" {
		return nil, fmt.Errorf("provider not authenticated: %w", utils.ErrForbidden)
	}
	if venue.Name == "" {
		return nil, utils.Validationf("venue name is required")
	}
	if venue.Address.City == "" {
		return nil, utils.Validationf("address city is required")
	}
	if venue.VenuePricing < 0 {
		return nil, utils.Validationf("venuePricing must be non-negative")
	}

	days, err := models.NormalizeDays(venue.AvailableDates)
	if err != nil {
		return nil, utils.Validationf("invalid date in availableDates: %v", err)
	}

	now := time.Now()
	venue.ID = uuid.New().String()
	venue.ProviderID = providerID
	venue.AvailableDates = days
	venue.IsActive = true
	venue.CreatedAt = now
	venue.UpdatedAt = now

	if err := s.Repo.Create(&venue); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("venue created",
		zap.String("venueId", venue.ID),
		zap.String("providerId", providerID),
		zap.String("name", venue.Name))
	s.invalidateListings()
	return &venue, nil
}

// Fields a provider may patch directly. availableDates is deliberately
// absent: calendar edits go through UpdateAvailableDates so booked days
// are protected.
var patchableFields = map[string]struct{}{
	"name": {}, "description": {}, "venueTypes": {}, "address": {},
	"venuePricing": {}, "securityDeposit": {}, "advancePayment": {},
	"guestCapacity": {}, "amenities": {}, "outdoorFacilities": {},
	"cancellationPolicy": {}, "venueImages": {}, "isExternalCateringAllowed": {},
}

// UpdateVenue applies a field patch to a venue the provider owns.
func (s *DefaultVenueService) UpdateVenue(providerID, venueID string, patch map[string]any) (*models.Venue, error) {
	venue, err := s.ownedVenue(providerID, venueID)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	for field, value := range patch {
		if _, ok := patchableFields[field]; !ok {
			return nil, utils.Validationf("field %q cannot be updated", field)
		}
		set[field] = value
	}
	if len(set) == 0 {
		return nil, utils.Validationf("no updatable fields in request")
	}
	set["updatedAt"] = time.Now()

	if err := s.Repo.UpdateWithDocument(venue.ID, bson.M{"$set": set}); err != nil {
		return nil, err
	}
	s.invalidateListings()
	return s.Repo.GetByID(venue.ID)
}

// UpdateAvailableDates replaces the venue's open calendar. The write goes
// through the booking ledger's transactional replacement, which carves the
// currently booked days out of the requested set inside the same
// transaction, so a provider edit can never re-open a sold day even while
// bookings commit concurrently.
func (s *DefaultVenueService) UpdateAvailableDates(providerID, venueID string, dates []string) (*models.Venue, error) {
	venue, err := s.ownedVenue(providerID, venueID)
	if err != nil {
		return nil, err
	}

	days, err := models.NormalizeDays(dates)
	if err != nil {
		return nil, utils.Validationf("invalid date in availableDates: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	open, err := s.Bookings.ReplaceOpenDates(ctx, venue.ID, days)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("venue calendar replaced",
		zap.String("venueId", venue.ID),
		zap.Int("openDays", len(open)),
		zap.Int("bookedDaysExcluded", len(days)-len(open)))
	s.invalidateListings()
	return s.Repo.GetByID(venue.ID)
}

// DeleteVenue soft-deletes a venue the provider owns. Existing bookings
// stay intact; the venue just stops appearing in the catalog.
func (s *DefaultVenueService) DeleteVenue(providerID, venueID string) error {
	venue, err := s.ownedVenue(providerID, venueID)
	if err != nil {
		return err
	}
	if err := s.Repo.SoftDelete(venue.ID, providerID); err != nil {
		return err
	}
	s.invalidateListings()
	return nil
}

// ownedVenue loads an active venue and checks provider ownership.
func (s *DefaultVenueService) ownedVenue(providerID, venueID string) (*models.Venue, error) {
	if providerID == "" {
		return nil, fmt.Errorf("provider not authenticated: %w", utils.ErrForbidden)
	}
	venue, err := s.Repo.GetActiveByID(venueID)
	if err != nil {
		return nil, err
	}
	if venue.ProviderID != providerID {
		return nil, fmt.Errorf("venue %s does not belong to provider: %w", venueID, utils.ErrForbidden)
	}
	return venue, nil
}

// GetVenue returns one active venue with its review aggregate.
func (s *DefaultVenueService) GetVenue(venueID string) (*VenueDetail, error) {
	venue, err := s.Repo.GetActiveByID(venueID)
	if err != nil {
		return nil, err
	}
	detail := &VenueDetail{Venue: *venue}
	if s.Reviews != nil {
		rating, err := s.Reviews.RatingForVenue(venueID)
		if err == nil {
			detail.Rating = rating
		} else if !errors.Is(err, utils.ErrNotFound) {
			utils.GetLogger().Warn("rating lookup failed", zap.String("venueId", venueID), zap.Error(err))
		}
	}
	return detail, nil
}

// ListByProvider lists the provider's own active venues.
func (s *DefaultVenueService) ListByProvider(providerID string) ([]models.Venue, error) {
	return s.Repo.GetByProvider(providerID)
}
