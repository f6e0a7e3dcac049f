package auth

import (
	"github.com/DhavalSuthar-24/kickoff/config"
	"github.com/DhavalSuthar-24/kickoff/internal/user"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, logger *zap.Logger) {
	service := NewService(user.NewUserRepository(db), TokenSettings{
		Secret:        appConfig.JWT.AccessTokenSecret,
		ExpiryMinutes: appConfig.JWT.AccessTokenExpiryMinutes,
	}, logger)
	authController := NewAuthController(service)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
	}
}
