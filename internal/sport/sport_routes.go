package sport

import (
	"github.com/DhavalSuthar-24/kickoff/internal/user"
	"github.com/DhavalSuthar-24/kickoff/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterSportRoutes(router *gin.RouterGroup, db *gorm.DB, authMiddleware gin.HandlerFunc) {
	sportController := NewSportController(NewSportRepository(db))

	sports := router.Group("/sports")
	{
		sports.GET("", sportController.GetAllSports)
		sports.GET("/:sport_id", sportController.GetSportByID)

		// Catalog management - Admin only
		adminSports := sports.Group("")
		adminSports.Use(authMiddleware, rmiddleware.RoleMiddleware(user.NewUserRepository(db), string(user.RoleAdmin)))
		{
			adminSports.POST("", sportController.CreateSport)
		}
	}
}
