package user

import (
	"fmt"
	"time"

	"mandapbook/models"
	"mandapbook/utils"
)

// GetProfile returns the caller's own account.
func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// UpdateProfile patches the mutable profile fields. Credentials and
// favourites have dedicated paths and are not patchable here.
func (s *DefaultUserService) UpdateProfile(userID string, patch map[string]any) (*models.User, error) {
	account, err := s.Repo.GetByID(userID)
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
			account.Name = str
			changed = true
		case "phoneNumber":
			account.PhoneNumber = str
			changed = true
		default:
			return nil, utils.Validationf("field %q cannot be updated", field)
		}
	}
	if !changed {
		return nil, utils.Validationf("no updatable fields in request")
	}

	account.UpdatedAt = time.Now()
	if err := s.Repo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

// DeleteAccount soft-deletes the caller's account.
func (s *DefaultUserService) DeleteAccount(userID string) error {
	return s.Repo.SoftDelete(userID)
}

// RegisterDevice stores the device's push token on the account.
func (s *DefaultUserService) RegisterDevice(userID, fcmToken string) error {
	if fcmToken == "" {
		return utils.Validationf("fcmToken is required")
	}
	account, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	account.FCMToken = fcmToken
	account.UpdatedAt = time.Now()
	return s.Repo.Update(account)
}

// AddFavourite marks a venue as a favourite. The venue must exist and be
// active; the write itself is set-semantic so repeats are harmless.
func (s *DefaultUserService) AddFavourite(userID, venueID string) error {
	if _, err := s.Venues.GetActiveByID(venueID); err != nil {
		return fmt.Errorf("favourite target: %w", err)
	}
	return s.Repo.AddFavouriteVenue(userID, venueID)
}

// RemoveFavourite drops a venue from the favourites set.
func (s *DefaultUserService) RemoveFavourite(userID, venueID string) error {
	return s.Repo.RemoveFavouriteVenue(userID, venueID)
}

// ListFavourites resolves the favourite IDs to active venues. Venues that
// were deleted since favouriting are silently skipped.
func (s *DefaultUserService) ListFavourites(userID string) ([]models.Venue, error) {
	account, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	venues := make([]models.Venue, 0, len(account.FavouriteVenueIDs))
	for _, id := range account.FavouriteVenueIDs {
		if v, err := s.Venues.GetActiveByID(id); err == nil {
			venues = append(venues, *v)
		}
	}
	return venues, nil
}
