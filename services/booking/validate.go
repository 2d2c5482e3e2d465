package booking

import (
	"fmt"

	"mandapbook/models"
	"mandapbook/utils"
)

// validateResources checks that every referenced photographer, caterer and
// room exists, is active and belongs to the target venue. It reads only;
// the caller mutates nothing until every check has passed.
func (s *DefaultBookingService) validateResources(venueID string, photographerIDs, catererIDs []string, roomID string) error {
	if len(photographerIDs) > 0 {
		found, err := s.Photographers.FindActiveByIDsAndVenue(photographerIDs, venueID)
		if err != nil {
			return fmt.Errorf("photographer lookup failed: %w", err)
		}
		if len(found) != len(photographerIDs) {
			return utils.Validationf("one or more photographers not associated with this venue")
		}
	}
	if len(catererIDs) > 0 {
		found, err := s.Caterers.FindActiveByIDsAndVenue(catererIDs, venueID)
		if err != nil {
			return fmt.Errorf("caterer lookup failed: %w", err)
		}
		if len(found) != len(catererIDs) {
			return utils.Validationf("one or more caterers not associated with this venue")
		}
	}
	if roomID != "" {
		if _, err := s.Rooms.GetActiveByIDAndVenue(roomID, venueID); err != nil {
			return utils.Validationf("room not associated with this venue")
		}
	}
	return nil
}

// authorize loads the booking's venue and verifies the caller is either
// the booking's owning user or the venue's provider.
func (s *DefaultBookingService) authorize(caller Caller, booking *models.Booking) (*models.Venue, error) {
	venue, err := s.Venues.GetByID(booking.VenueID)
	if err != nil {
		return nil, fmt.Errorf("venue lookup for booking %s failed: %w", booking.ID, err)
	}
	if caller.UserID != "" && caller.UserID == booking.UserID {
		return venue, nil
	}
	if caller.ProviderID != "" && caller.ProviderID == venue.ProviderID {
		return venue, nil
	}
	return nil, fmt.Errorf("booking %s does not belong to caller: %w", booking.ID, utils.ErrForbidden)
}

// paymentStatusFor computes the status implied by the paid/total pair.
// Completed requires exact settlement of the total.
func paymentStatusFor(amountPaid, totalAmount int64) string {
	if amountPaid == totalAmount {
		return models.PaymentCompleted
	}
	return models.PaymentPartial
}

// validateAmounts rejects negative or overpaying amount pairs.
func validateAmounts(totalAmount, amountPaid int64) error {
	if totalAmount < 0 {
		return utils.Validationf("totalAmount must be non-negative")
	}
	if amountPaid < 0 {
		return utils.Validationf("amountPaid must be non-negative")
	}
	if amountPaid > totalAmount {
		return utils.Validationf("amountPaid cannot exceed totalAmount")
	}
	return nil
}
