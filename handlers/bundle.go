package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"mandapbook/middleware"
	adminSvc "mandapbook/services/admin"
	bookingSvc "mandapbook/services/booking"
	catalogSvc "mandapbook/services/catalog"
	providerSvc "mandapbook/services/provider"
	reviewSvc "mandapbook/services/review"
	"mandapbook/services/storage"
	userSvc "mandapbook/services/user"
	venueSvc "mandapbook/services/venue"
)

// HandlerBundle groups every endpoint's dependencies into one struct wired
// in main.
type HandlerBundle struct {
	Bookings  bookingSvc.BookingService
	Venues    venueSvc.VenueService
	Catalog   catalogSvc.CatalogService
	Users     userSvc.UserService
	Providers providerSvc.ProviderService
	Admin     adminSvc.AdminService
	Reviews   reviewSvc.ReviewService
	Storage   storage.StorageService
}

// caller assembles the identity set by the auth middleware.
func caller(c *gin.Context) bookingSvc.Caller {
	return bookingSvc.Caller{
		UserID:     c.GetString(middleware.CtxUserID),
		ProviderID: c.GetString(middleware.CtxProviderID),
	}
}

// pagination reads ?page= and ?limit= with sane defaults.
func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
