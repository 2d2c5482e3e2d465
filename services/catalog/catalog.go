// Package catalog implements the venue-attached resources a booking can
// include: caterers, photographers and rooms. Mutations require the owning
// provider of the venue the resource hangs off; photographer edits check
// every associated venue.
package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	catererRepo "mandapbook/database/repository/caterer"
	photographerRepo "mandapbook/database/repository/photographer"
	roomRepo "mandapbook/database/repository/room"
	venueRepo "mandapbook/database/repository/venue"
	"mandapbook/models"
	"mandapbook/utils"
)

// CatalogService manages venue-attached resources.
type CatalogService interface {
	CreateCaterer(providerID string, caterer models.Caterer) (*models.Caterer, error)
	UpdateCaterer(providerID string, caterer models.Caterer) (*models.Caterer, error)
	DeleteCaterer(providerID, catererID string) error
	ListCaterersByVenue(venueID string) ([]models.Caterer, error)

	CreatePhotographer(providerID string, photographer models.Photographer) (*models.Photographer, error)
	UpdatePhotographer(providerID string, photographer models.Photographer) (*models.Photographer, error)
	DeletePhotographer(providerID, photographerID string) error
	ListPhotographersByVenue(venueID string) ([]models.Photographer, error)

	CreateRoom(providerID string, room models.Room) (*models.Room, error)
	UpdateRoom(providerID string, room models.Room) (*models.Room, error)
	DeleteRoom(providerID, roomID string) error
	ListRoomsByVenue(venueID string) ([]models.Room, error)
}

// DefaultCatalogService is the production resource catalog.
type DefaultCatalogService struct {
	Venues        venueRepo.VenueRepository
	Caterers      catererRepo.CatererRepository
	Photographers photographerRepo.PhotographerRepository
	Rooms         roomRepo.RoomRepository
}

// requireVenueOwnership checks that the provider owns the active venue.
func (s *DefaultCatalogService) requireVenueOwnership(providerID, venueID string) error {
	if providerID == "" {
		return fmt.Errorf("provider not authenticated: %w", utils.ErrForbidden)
	}
	venue, err := s.Venues.GetActiveByID(venueID)
	if err != nil {
		return err
	}
	if venue.ProviderID != providerID {
		return fmt.Errorf("venue %s does not belong to provider: %w", venueID, utils.ErrForbidden)
	}
	return nil
}

func (s *DefaultCatalogService) CreateCaterer(providerID string, caterer models.Caterer) (*models.Caterer, error) {
	if caterer.Name == "" {
		return nil, utils.Validationf("caterer name is required")
	}
	if err := s.requireVenueOwnership(providerID, caterer.VenueID); err != nil {
		return nil, err
	}
	now := time.Now()
	caterer.ID = uuid.New().String()
	caterer.IsActive = true
	caterer.CreatedAt = now
	caterer.UpdatedAt = now
	if err := s.Caterers.Create(&caterer); err != nil {
		return nil, err
	}
	return &caterer, nil
}

func (s *DefaultCatalogService) UpdateCaterer(providerID string, caterer models.Caterer) (*models.Caterer, error) {
	existing, err := s.Caterers.GetActiveByID(caterer.ID)
	if err != nil {
		return nil, err
	}
	if err := s.requireVenueOwnership(providerID, existing.VenueID); err != nil {
		return nil, err
	}
	caterer.VenueID = existing.VenueID // resources never move between venues
	caterer.IsActive = true
	caterer.CreatedAt = existing.CreatedAt
	caterer.UpdatedAt = time.Now()
	if err := s.Caterers.Update(&caterer); err != nil {
		return nil, err
	}
	return &caterer, nil
}

func (s *DefaultCatalogService) DeleteCaterer(providerID, catererID string) error {
	existing, err := s.Caterers.GetActiveByID(catererID)
	if err != nil {
		return err
	}
	if err := s.requireVenueOwnership(providerID, existing.VenueID); err != nil {
		return err
	}
	return s.Caterers.SoftDelete(catererID)
}

func (s *DefaultCatalogService) ListCaterersByVenue(venueID string) ([]models.Caterer, error) {
	return s.Caterers.GetActiveByVenue(venueID)
}

func (s *DefaultCatalogService) CreatePhotographer(providerID string, photographer models.Photographer) (*models.Photographer, error) {
	if photographer.Name == "" {
		return nil, utils.Validationf("photographer name is required")
	}
	if len(photographer.VenueIDs) == 0 {
		return nil, utils.Validationf("photographer must be associated with at least one venue")
	}
	for _, venueID := range photographer.VenueIDs {
		if err := s.requireVenueOwnership(providerID, venueID); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	photographer.ID = uuid.New().String()
	photographer.IsActive = true
	photographer.CreatedAt = now
	photographer.UpdatedAt = now
	if err := s.Photographers.Create(&photographer); err != nil {
		return nil, err
	}
	return &photographer, nil
}

func (s *DefaultCatalogService) UpdatePhotographer(providerID string, photographer models.Photographer) (*models.Photographer, error) {
	existing, err := s.Photographers.GetActiveByID(photographer.ID)
	if err != nil {
		return nil, err
	}
	for _, venueID := range existing.VenueIDs {
		if err := s.requireVenueOwnership(providerID, venueID); err != nil {
			return nil, err
		}
	}
	if len(photographer.VenueIDs) == 0 {
		return nil, utils.Validationf("photographer must be associated with at least one venue")
	}
	for _, venueID := range photographer.VenueIDs {
		if err := s.requireVenueOwnership(providerID, venueID); err != nil {
			return nil, err
		}
	}
	photographer.IsActive = true
	photographer.CreatedAt = existing.CreatedAt
	photographer.UpdatedAt = time.Now()
	if err := s.Photographers.Update(&photographer); err != nil {
		return nil, err
	}
	return &photographer, nil
}

func (s *DefaultCatalogService) DeletePhotographer(providerID, photographerID string) error {
	existing, err := s.Photographers.GetActiveByID(photographerID)
	if err != nil {
		return err
	}
	for _, venueID := range existing.VenueIDs {
		if err := s.requireVenueOwnership(providerID, venueID); err != nil {
			return err
		}
	}
	return s.Photographers.SoftDelete(photographerID)
}

func (s *DefaultCatalogService) ListPhotographersByVenue(venueID string) ([]models.Photographer, error) {
	return s.Photographers.GetActiveByVenue(venueID)
}

func (s *DefaultCatalogService) CreateRoom(providerID string, room models.Room) (*models.Room, error) {
	if room.AcRoom.Count == 0 && room.NonAcRoom.Count == 0 {
		return nil, utils.Validationf("room must declare at least one AC or non-AC class")
	}
	if err := s.requireVenueOwnership(providerID, room.VenueID); err != nil {
		return nil, err
	}
	now := time.Now()
	room.ID = uuid.New().String()
	room.IsActive = true
	room.CreatedAt = now
	room.UpdatedAt = now
	if err := s.Rooms.Create(&room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *DefaultCatalogService) UpdateRoom(providerID string, room models.Room) (*models.Room, error) {
	existing, err := s.Rooms.GetActiveByID(room.ID)
	if err != nil {
		return nil, err
	}
	if err := s.requireVenueOwnership(providerID, existing.VenueID); err != nil {
		return nil, err
	}
	room.VenueID = existing.VenueID
	room.IsActive = true
	room.CreatedAt = existing.CreatedAt
	room.UpdatedAt = time.Now()
	if err := s.Rooms.Update(&room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *DefaultCatalogService) DeleteRoom(providerID, roomID string) error {
	existing, err := s.Rooms.GetActiveByID(roomID)
	if err != nil {
		return err
	}
	if err := s.requireVenueOwnership(providerID, existing.VenueID); err != nil {
		return err
	}
	return s.Rooms.SoftDelete(roomID)
}

func (s *DefaultCatalogService) ListRoomsByVenue(venueID string) ([]models.Room, error) {
	return s.Rooms.GetActiveByVenue(venueID)
}
