package venue

import (
	"github.com/DhavalSuthar-24/kickoff/internal/user"
	"github.com/DhavalSuthar-24/kickoff/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterVenueRoutes sets up venue, field and slot routes
func RegisterVenueRoutes(r *gin.RouterGroup, db *gorm.DB, authMiddleware gin.HandlerFunc, logger *zap.Logger) {
	venueController := NewVenueController(NewService(NewVenueRepository(db), logger))
	ownerOnly := rmiddleware.VenueOwnerOrAdminMiddleware(user.NewUserRepository(db))

	venueRoutes := r.Group("/venues")
	{
		// Public routes
		venueRoutes.GET("", venueController.ListVenues)
		venueRoutes.GET("/:id", venueController.GetVenue)

		// Protected routes - require authentication
		authorized := venueRoutes.Group("")
		authorized.Use(authMiddleware)
		{
			authorized.POST("", venueController.CreateVenue)
			authorized.GET("/me", venueController.GetOwnVenue)
			authorized.PUT("/:id", ownerOnly, venueController.UpdateVenue)
			authorized.POST("/:id/fields", ownerOnly, venueController.CreateField)
		}
	}

	fieldRoutes := r.Group("/fields")
	{
		fieldRoutes.GET("", venueController.ListFields)
		fieldRoutes.GET("/:id", venueController.GetField)
		fieldRoutes.GET("/:id/slots", venueController.ListSlots)

		managerRoutes := fieldRoutes.Group("")
		managerRoutes.Use(authMiddleware, ownerOnly)
		{
			managerRoutes.PUT("/:id", venueController.UpdateField)
			managerRoutes.POST("/:id/generate-schedule", venueController.GenerateSchedule)
		}
	}

	slotRoutes := r.Group("/slots")
	slotRoutes.Use(authMiddleware, ownerOnly)
	{
		slotRoutes.POST("/:id/availability", venueController.SetSlotAvailability)
	}
}
