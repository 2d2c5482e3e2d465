package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	venueRepo "mandapbook/database/repository/venue"
	"mandapbook/models"
	"mandapbook/utils"
)

// CreateVenueHandler lists a new venue for the authenticated provider.
func (hb *HandlerBundle) CreateVenueHandler(c *gin.Context) {
	var venue models.Venue
	if err := c.ShouldBindJSON(&venue); err != nil {
		utils.BindError(c, err)
		return
	}

	created, err := hb.Venues.CreateVenue(caller(c).ProviderID, venue)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateVenueHandler patches venue fields.
func (hb *HandlerBundle) UpdateVenueHandler(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BindError(c, err)
		return
	}

	venue, err := hb.Venues.UpdateVenue(caller(c).ProviderID, c.Param("id"), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venue)
}

// UpdateVenueDatesHandler replaces the venue's open calendar.
func (hb *HandlerBundle) UpdateVenueDatesHandler(c *gin.Context) {
	var req struct {
		AvailableDates []string `json:"availableDates"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	venue, err := hb.Venues.UpdateAvailableDates(caller(c).ProviderID, c.Param("id"), req.AvailableDates)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venue)
}

// DeleteVenueHandler soft-deletes a venue.
func (hb *HandlerBundle) DeleteVenueHandler(c *gin.Context) {
	if err := hb.Venues.DeleteVenue(caller(c).ProviderID, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "venue deleted"})
}

// GetVenueHandler returns one venue with its rating aggregate.
func (hb *HandlerBundle) GetVenueHandler(c *gin.Context) {
	detail, err := hb.Venues.GetVenue(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListVenuesHandler returns a page of the public catalog.
func (hb *HandlerBundle) ListVenuesHandler(c *gin.Context) {
	page, limit := pagination(c)
	venues, err := hb.Venues.ListVenues(page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}

// SearchVenuesHandler runs a filtered catalog query from query params.
func (hb *HandlerBundle) SearchVenuesHandler(c *gin.Context) {
	minCapacity, _ := strconv.Atoi(c.Query("minCapacity"))
	maxPricing, _ := strconv.ParseInt(c.Query("maxPricing"), 10, 64)
	criteria := venueRepo.VenueSearchCriteria{
		Query:       c.Query("q"),
		City:        c.Query("city"),
		VenueTypes:  c.QueryArray("venueType"),
		MinCapacity: minCapacity,
		MaxPricing:  maxPricing,
		AvailableOn: c.Query("availableOn"),
	}

	page, limit := pagination(c)
	venues, err := hb.Venues.SearchVenues(criteria, page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}

// ListMyVenuesHandler lists the authenticated provider's venues.
func (hb *HandlerBundle) ListMyVenuesHandler(c *gin.Context) {
	venues, err := hb.Venues.ListByProvider(caller(c).ProviderID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}
