package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mandapbook/middleware"
	userSvc "mandapbook/services/user"
	"mandapbook/utils"
)

// RegisterUserHandler creates a new user account.
func (hb *HandlerBundle) RegisterUserHandler(c *gin.Context) {
	var req userSvc.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	resp, err := hb.Users.Register(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginUserHandler authenticates a user and returns a token.
func (hb *HandlerBundle) LoginUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	resp, err := hb.Users.Login(req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the caller's token. Works for users and
// providers alike since revocation is keyed by the token itself.
func (hb *HandlerBundle) LogoutHandler(c *gin.Context) {
	if err := middleware.RevokeToken(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-out failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// GetProfileHandler returns the caller's own account.
func (hb *HandlerBundle) GetProfileHandler(c *gin.Context) {
	account, err := hb.Users.GetProfile(c.GetString(middleware.CtxUserID))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// UpdateProfileHandler patches the caller's profile fields.
func (hb *HandlerBundle) UpdateProfileHandler(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BindError(c, err)
		return
	}

	account, err := hb.Users.UpdateProfile(c.GetString(middleware.CtxUserID), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// DeleteAccountHandler soft-deletes the caller's account.
func (hb *HandlerBundle) DeleteAccountHandler(c *gin.Context) {
	if err := hb.Users.DeleteAccount(c.GetString(middleware.CtxUserID)); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// RegisterUserDeviceHandler stores the caller's push token.
func (hb *HandlerBundle) RegisterUserDeviceHandler(c *gin.Context) {
	var req struct {
		FCMToken string `json:"fcmToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}
	if err := hb.Users.RegisterDevice(c.GetString(middleware.CtxUserID), req.FCMToken); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "device registered"})
}

// AddFavouriteHandler marks a venue as a favourite.
func (hb *HandlerBundle) AddFavouriteHandler(c *gin.Context) {
	if err := hb.Users.AddFavourite(c.GetString(middleware.CtxUserID), c.Param("venueId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favourite added"})
}

// RemoveFavouriteHandler drops a venue from the favourites set.
func (hb *HandlerBundle) RemoveFavouriteHandler(c *gin.Context) {
	if err := hb.Users.RemoveFavourite(c.GetString(middleware.CtxUserID), c.Param("venueId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "favourite removed"})
}

// ListFavouritesHandler resolves the caller's favourites to venues.
func (hb *HandlerBundle) ListFavouritesHandler(c *gin.Context) {
	venues, err := hb.Users.ListFavourites(c.GetString(middleware.CtxUserID))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}
