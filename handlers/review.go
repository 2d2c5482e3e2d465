package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mandapbook/middleware"
	reviewSvc "mandapbook/services/review"
	"mandapbook/utils"
)

// CreateReviewHandler records a rating against the caller's booking.
func (hb *HandlerBundle) CreateReviewHandler(c *gin.Context) {
	var req reviewSvc.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	review, err := hb.Reviews.CreateReview(c.GetString(middleware.CtxUserID), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// UpdateReviewHandler edits the caller's own review.
func (hb *HandlerBundle) UpdateReviewHandler(c *gin.Context) {
	var req reviewSvc.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindError(c, err)
		return
	}

	review, err := hb.Reviews.UpdateReview(c.GetString(middleware.CtxUserID), c.Param("id"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// ListVenueReviewsHandler returns a venue's active reviews.
func (hb *HandlerBundle) ListVenueReviewsHandler(c *gin.Context) {
	reviews, err := hb.Reviews.ListByVenue(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// DeleteReviewHandler removes the caller's own review.
func (hb *HandlerBundle) DeleteReviewHandler(c *gin.Context) {
	if err := hb.Reviews.DeleteReview(c.GetString(middleware.CtxUserID), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
