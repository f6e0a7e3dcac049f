package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/kickoff/config"
	"github.com/DhavalSuthar-24/kickoff/internal/auth"
	"github.com/DhavalSuthar-24/kickoff/internal/cache"
	"github.com/DhavalSuthar-24/kickoff/internal/match"
	"github.com/DhavalSuthar-24/kickoff/internal/metrics"
	"github.com/DhavalSuthar-24/kickoff/internal/middleware"
	"github.com/DhavalSuthar-24/kickoff/internal/review"
	"github.com/DhavalSuthar-24/kickoff/internal/sport"
	"github.com/DhavalSuthar-24/kickoff/internal/user"
	"github.com/DhavalSuthar-24/kickoff/internal/venue"
	"github.com/DhavalSuthar-24/kickoff/pkg/responses"
	"github.com/DhavalSuthar-24/kickoff/pkg/validator"
)

func SetupRoutes(cfg *config.Config, db *gorm.DB, logger *zap.Logger, cacheStore cache.Store) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	if cfg.Metrics.Enabled {
		r.Use(metrics.Middleware())
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		responses.NotFound(c, "route "+c.Request.URL.Path)
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	authMiddleware := middleware.AuthMiddleware(cfg.JWT.AccessTokenSecret, user.NewUserRepository(db))
	cacheTTL := time.Duration(cfg.Redis.CacheTTLSeconds) * time.Second

	auth.RegisterAuthRoutes(api, db, cfg, logger)
	user.RegisterUserRoutes(api, db, authMiddleware)
	sport.RegisterSportRoutes(api, db, authMiddleware)
	venue.RegisterVenueRoutes(api, db, authMiddleware, logger)
	matches := match.RegisterMatchRoutes(api, db, authMiddleware, cacheStore, cacheTTL, logger)
	review.RegisterReviewRoutes(api, db, authMiddleware, matches, logger)

	return r
}
