package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mandapbook/models"
	"mandapbook/utils"
)

// Caterers

func (hb *HandlerBundle) CreateCatererHandler(c *gin.Context) {
	var caterer models.Caterer
	if err := c.ShouldBindJSON(&caterer); err != nil {
		utils.BindError(c, err)
		return
	}
	created, err := hb.Catalog.CreateCaterer(caller(c).ProviderID, caterer)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (hb *HandlerBundle) UpdateCatererHandler(c *gin.Context) {
	var caterer models.Caterer
	if err := c.ShouldBindJSON(&caterer); err != nil {
		utils.BindError(c, err)
		return
	}
	caterer.ID = c.Param("id")
	updated, err := hb.Catalog.UpdateCaterer(caller(c).ProviderID, caterer)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (hb *HandlerBundle) DeleteCatererHandler(c *gin.Context) {
	if err := hb.Catalog.DeleteCaterer(caller(c).ProviderID, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "caterer deleted"})
}

// Venue-scoped list endpoints take the venue under :id.
func (hb *HandlerBundle) ListCaterersByVenueHandler(c *gin.Context) {
	caterers, err := hb.Catalog.ListCaterersByVenue(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, caterers)
}

// Photographers

func (hb *HandlerBundle) CreatePhotographerHandler(c *gin.Context) {
	var photographer models.Photographer
	if err := c.ShouldBindJSON(&photographer); err != nil {
		utils.BindError(c, err)
		return
	}
	created, err := hb.Catalog.CreatePhotographer(caller(c).ProviderID, photographer)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (hb *HandlerBundle) UpdatePhotographerHandler(c *gin.Context) {
	var photographer models.Photographer
	if err := c.ShouldBindJSON(&photographer); err != nil {
		utils.BindError(c, err)
		return
	}
	photographer.ID = c.Param("id")
	updated, err := hb.Catalog.UpdatePhotographer(caller(c).ProviderID, photographer)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (hb *HandlerBundle) DeletePhotographerHandler(c *gin.Context) {
	if err := hb.Catalog.DeletePhotographer(caller(c).ProviderID, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "photographer deleted"})
}

func (hb *HandlerBundle) ListPhotographersByVenueHandler(c *gin.Context) {
	photographers, err := hb.Catalog.ListPhotographersByVenue(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, photographers)
}

// Rooms

func (hb *HandlerBundle) CreateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.BindError(c, err)
		return
	}
	created, err := hb.Catalog.CreateRoom(caller(c).ProviderID, room)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (hb *HandlerBundle) UpdateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.BindError(c, err)
		return
	}
	room.ID = c.Param("id")
	updated, err := hb.Catalog.UpdateRoom(caller(c).ProviderID, room)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (hb *HandlerBundle) DeleteRoomHandler(c *gin.Context) {
	if err := hb.Catalog.DeleteRoom(caller(c).ProviderID, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}

func (hb *HandlerBundle) ListRoomsByVenueHandler(c *gin.Context) {
	rooms, err := hb.Catalog.ListRoomsByVenue(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}
