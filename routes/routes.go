package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mandapbook/handlers"
	"mandapbook/middleware"
	"mandapbook/utils"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.LoginUserHandler)

		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.GetProfileHandler)
		api.PATCH("/me", hb.UpdateProfileHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
		api.PUT("/me/device", hb.RegisterUserDeviceHandler)

		api.GET("/me/favourites", hb.ListFavouritesHandler)
		api.PUT("/me/favourites/:venueId", hb.AddFavouriteHandler)
		api.DELETE("/me/favourites/:venueId", hb.RemoveFavouriteHandler)
	}
}

// RegisterProviderRoutes registers provider onboarding and resource
// management endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", hb.RegisterProviderHandler)
		api.POST("/login", hb.LoginProviderHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware())
		protected.POST("/logout", hb.LogoutHandler)
		protected.GET("/me", hb.GetProviderProfileHandler)
		protected.PATCH("/me", hb.UpdateProviderProfileHandler)
		protected.PUT("/me/device", hb.RegisterProviderDeviceHandler)
		protected.GET("/me/venues", hb.ListMyVenuesHandler)
		protected.GET("/me/bookings", hb.ListProviderBookingsHandler)
	}
}

// RegisterVenueRoutes registers the public catalog and the provider-side
// venue management endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/venues")
	{
		api.GET("", hb.ListVenuesHandler)
		api.GET("/search", hb.SearchVenuesHandler)
		api.GET("/:id", hb.GetVenueHandler)
		api.GET("/:id/caterers", hb.ListCaterersByVenueHandler)
		api.GET("/:id/photographers", hb.ListPhotographersByVenueHandler)
		api.GET("/:id/rooms", hb.ListRoomsByVenueHandler)
		api.GET("/:id/reviews", hb.ListVenueReviewsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware())
		protected.POST("", hb.CreateVenueHandler)
		protected.PATCH("/:id", hb.UpdateVenueHandler)
		protected.PUT("/:id/dates", hb.UpdateVenueDatesHandler)
		protected.DELETE("/:id", hb.DeleteVenueHandler)
	}
}

// RegisterCatalogRoutes registers caterer, photographer and room
// management endpoints (provider-only).
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	api.Use(middleware.JWTAuthProviderMiddleware())
	{
		api.POST("/caterers", hb.CreateCatererHandler)
		api.PUT("/caterers/:id", hb.UpdateCatererHandler)
		api.DELETE("/caterers/:id", hb.DeleteCatererHandler)

		api.POST("/photographers", hb.CreatePhotographerHandler)
		api.PUT("/photographers/:id", hb.UpdatePhotographerHandler)
		api.DELETE("/photographers/:id", hb.DeletePhotographerHandler)

		api.POST("/rooms", hb.CreateRoomHandler)
		api.PUT("/rooms/:id", hb.UpdateRoomHandler)
		api.DELETE("/rooms/:id", hb.DeleteRoomHandler)
	}
}

// RegisterReviewRoutes registers review endpoints (user-only).
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	api.Use(middleware.JWTAuthUserMiddleware())
	{
		api.POST("", hb.CreateReviewHandler)
		api.PATCH("/:id", hb.UpdateReviewHandler)
		api.DELETE("/:id", hb.DeleteReviewHandler)
	}
}

// RegisterAdminRoutes registers the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("/approvals", hb.ListPendingApprovalsHandler)
		api.POST("/approvals/:id", hb.ResolveApprovalHandler)
		api.GET("/providers", hb.ListProvidersHandler)
		api.GET("/providers/search", hb.SearchProvidersHandler)
		api.GET("/users", hb.ListUsersHandler)
		api.GET("/users/search", hb.SearchUsersHandler)
		api.GET("/notifications", hb.ListAdminNotificationsHandler)
		api.POST("/notifications/:id/read", hb.MarkNotificationReadHandler)
		api.GET("/bookings", hb.ListAllBookingsHandler)
	}
}

// RegisterStorageRoutes registers image upload endpoints (provider-only).
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	api.Use(middleware.JWTAuthProviderMiddleware())
	{
		api.POST("/images/:folder", hb.UploadImageHandler)
		api.DELETE("/images", hb.DeleteImageHandler)
	}
}

// RegisterHealthRoute exposes the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes wires every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterVenueRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
