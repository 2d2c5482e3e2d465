package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mandapbook/config"
	"mandapbook/database"
	approvalRepoPkg "mandapbook/database/repository/approval"
	bookingRepoPkg "mandapbook/database/repository/booking"
	catererRepoPkg "mandapbook/database/repository/caterer"
	photographerRepoPkg "mandapbook/database/repository/photographer"
	providerRepoPkg "mandapbook/database/repository/provider"
	reviewRepoPkg "mandapbook/database/repository/review"
	roomRepoPkg "mandapbook/database/repository/room"
	userRepoPkg "mandapbook/database/repository/user"
	venueRepoPkg "mandapbook/database/repository/venue"
	"mandapbook/handlers"
	"mandapbook/middleware"
	"mandapbook/routes"
	adminSvc "mandapbook/services/admin"
	bookingSvc "mandapbook/services/booking"
	catalogSvc "mandapbook/services/catalog"
	"mandapbook/services/notification"
	providerSvc "mandapbook/services/provider"
	reviewSvc "mandapbook/services/review"
	userSvc "mandapbook/services/user"
	venueSvc "mandapbook/services/venue"
	"mandapbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	venueRepo := venueRepoPkg.NewMongoVenueRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	catererRepo := catererRepoPkg.NewMongoCatererRepo()
	photographerRepo := photographerRepoPkg.NewMongoPhotographerRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	approvalRepo := approvalRepoPkg.NewMongoApprovalRepo()

	for name, repo := range map[string]any{"venues": venueRepo, "bookings": bookingRepo} {
		if idx, ok := repo.(interface{ EnsureIndexes() error }); ok {
			if err := idx.EnsureIndexes(); err != nil {
				logger.Warn("index creation failed", zap.String("collection", name), zap.Error(err))
			}
		}
	}

	// services.
	dispatcher := &notification.FCMDispatcher{
		Users:     userRepo,
		Providers: providerRepo,
	}

	bookingService := &bookingSvc.DefaultBookingService{
		Repo:          bookingRepo,
		Venues:        venueRepo,
		Caterers:      catererRepo,
		Photographers: photographerRepo,
		Rooms:         roomRepo,
		Users:         userRepo,
		Notifier:      dispatcher,
	}
	venueService := &venueSvc.DefaultVenueService{
		Repo:     venueRepo,
		Bookings: bookingRepo,
		Reviews:  reviewRepo,
	}
	catalogService := &catalogSvc.DefaultCatalogService{
		Venues:        venueRepo,
		Caterers:      catererRepo,
		Photographers: photographerRepo,
		Rooms:         roomRepo,
	}
	userService := &userSvc.DefaultUserService{
		Repo:   userRepo,
		Venues: venueRepo,
	}
	providerService := &providerSvc.DefaultProviderService{
		Repo:      providerRepo,
		Approvals: approvalRepo,
		Notifier:  dispatcher,
	}
	adminService := &adminSvc.DefaultAdminService{
		Approvals: approvalRepo,
		Providers: providerRepo,
		Users:     userRepo,
		Notifier:  dispatcher,
	}
	reviewService := &reviewSvc.DefaultReviewService{
		Repo:     reviewRepo,
		Bookings: bookingRepo,
	}

	handlerBundle := &handlers.HandlerBundle{
		Bookings:  bookingService,
		Venues:    venueService,
		Catalog:   catalogService,
		Users:     userService,
		Providers: providerService,
		Admin:     adminService,
		Reviews:   reviewService,
		Storage:   storageService,
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(database.MongoClient)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
