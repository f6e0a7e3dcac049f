package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterUserRoutes(router *gin.RouterGroup, db *gorm.DB, authMiddleware gin.HandlerFunc) {
	userController := NewUserController(NewUserRepository(db))

	users := router.Group("/users")
	{
		users.GET("/:id", userController.GetUser)
	}

	me := router.Group("/users/me")
	me.Use(authMiddleware)
	{
		me.GET("", userController.GetMe)
		me.PUT("", userController.UpdateMe)
	}
}
