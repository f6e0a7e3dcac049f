package review

import (
	"github.com/DhavalSuthar-24/kickoff/internal/match"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterReviewRoutes sets up settlement routes. No-shows are flagged through the
// match service so its cached views are invalidated.
func RegisterReviewRoutes(router *gin.RouterGroup, db *gorm.DB, authMiddleware gin.HandlerFunc, matches *match.Service, logger *zap.Logger) {
	reviews := NewReviewRepository(db)
	settler := NewSettler(reviews, match.NewGormMatchRepository(db), matches, logger)
	reviewController := NewReviewController(settler, reviews)

	reviewRoutes := router.Group("/reviews")
	{
		reviewRoutes.GET("/match/:id", reviewController.ListMatchReviews)
		reviewRoutes.POST("/match/:id", authMiddleware, reviewController.SettleMatch)
	}
}
