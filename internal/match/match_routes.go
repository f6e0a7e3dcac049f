package match

import (
	"time"

	"github.com/DhavalSuthar-24/kickoff/internal/cache"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterMatchRoutes sets up all match-related routes and returns the service so
// settlement can flag no-shows through it.
func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, authMiddleware gin.HandlerFunc, cacheStore cache.Store, cacheTTL time.Duration, logger *zap.Logger) *Service {
	service := NewService(NewStore(db), cacheStore, cacheTTL, logger)
	matchController := NewMatchController(service)

	matchRoutes := router.Group("/matches")
	{
		matchRoutes.GET("", matchController.ListMatches)
		matchRoutes.GET("/:id", matchController.GetMatch)
		matchRoutes.GET("/invite/:code", matchController.GetMatchByInvite)

		authRoutes := matchRoutes.Group("")
		authRoutes.Use(authMiddleware)
		{
			authRoutes.POST("", matchController.CreateMatch)
			authRoutes.POST("/:id/join", matchController.JoinMatch)
			authRoutes.POST("/:id/leave", matchController.LeaveMatch)
			authRoutes.POST("/:id/complete", matchController.CompleteMatch)
			authRoutes.POST("/:id/cancel", matchController.CancelMatch)
		}
	}
	return service
}
