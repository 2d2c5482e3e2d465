package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mandapbook/utils"
)

// ListPendingApprovalsHandler returns unresolved provider registrations.
func (hb *HandlerBundle) ListPendingApprovalsHandler(c *gin.Context) {
	requests, err := hb.Admin.ListPendingApprovals()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ResolveApprovalHandler approves or rejects a provider registration.
func (hb *HandlerBundle) ResolveApprovalHandler(c *gin.Context) {
	var req struct {
		Approve bool   `json:"approve"`
		Remark  string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	var err error
	if req.Approve {
		err = hb.Admin.ApproveProvider(c.Param("id"), req.Remark)
	} else {
		err = hb.Admin.RejectProvider(c.Param("id"), req.Remark)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "approval request resolved"})
}

// ListProvidersHandler pages through all provider accounts.
func (hb *HandlerBundle) ListProvidersHandler(c *gin.Context) {
	page, limit := pagination(c)
	providers, err := hb.Admin.ListProviders(page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// ListUsersHandler pages through all user accounts.
func (hb *HandlerBundle) ListUsersHandler(c *gin.Context) {
	page, limit := pagination(c)
	users, err := hb.Admin.ListUsers(page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// SearchProvidersHandler matches provider accounts by name or email.
func (hb *HandlerBundle) SearchProvidersHandler(c *gin.Context) {
	page, limit := pagination(c)
	providers, err := hb.Admin.SearchProviders(c.Query("q"), page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// SearchUsersHandler matches user accounts by name or email.
func (hb *HandlerBundle) SearchUsersHandler(c *gin.Context) {
	page, limit := pagination(c)
	users, err := hb.Admin.SearchUsers(c.Query("q"), page, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListAdminNotificationsHandler returns the back-office feed.
func (hb *HandlerBundle) ListAdminNotificationsHandler(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	notifications, err := hb.Admin.ListNotifications(unreadOnly)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationReadHandler flags one feed entry as read.
func (hb *HandlerBundle) MarkNotificationReadHandler(c *gin.Context) {
	if err := hb.Admin.MarkNotificationRead(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification read"})
}
