package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mandapbook/middleware"
	providerSvc "mandapbook/services/provider"
	"mandapbook/utils"
)

// RegisterProviderHandler creates a provider account pending approval.
func (hb *HandlerBundle) RegisterProviderHandler(c *gin.Context) {
	var req providerSvc.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	provider, err := hb.Providers.Register(req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"provider": provider,
		"message":  "registration received, awaiting admin approval",
	})
}

// LoginProviderHandler authenticates an approved provider.
func (hb *HandlerBundle) LoginProviderHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	resp, err := hb.Providers.Login(req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProviderProfileHandler returns the caller's provider account.
func (hb *HandlerBundle) GetProviderProfileHandler(c *gin.Context) {
	provider, err := hb.Providers.GetProfile(c.GetString(middleware.CtxProviderID))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

// UpdateProviderProfileHandler patches the caller's provider account.
func (hb *HandlerBundle) UpdateProviderProfileHandler(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BindError(c, err)
		return
	}

	provider, err := hb.Providers.UpdateProfile(c.GetString(middleware.CtxProviderID), patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

// RegisterProviderDeviceHandler stores the provider's push token.
func (hb *HandlerBundle) RegisterProviderDeviceHandler(c *gin.Context) {
	var req struct {
		FCMToken string `json:"fcmToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}
	if err := hb.Providers.RegisterDevice(c.GetString(middleware.CtxProviderID), req.FCMToken); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "device registered"})
}
