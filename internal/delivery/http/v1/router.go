package v1

import (
	"net/http"
	"time"

	"cv360-backend/config"
	"cv360-backend/internal/delivery/http/middleware"
	"cv360-backend/internal/delivery/http/response"
	"cv360-backend/internal/domain"
	"cv360-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	AdminUC       domain.AdminUsecase
	Tokens        *auth.TokenManager
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORS(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authLimiter := middleware.RateLimit("auth", middleware.RateLimitConfig{
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		Threshold: deps.Config.RateLimitAuthThreshold,
	})

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.Auth(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(api, protected, deps.AuthUC, authLimiter)
		NewJobHandler(protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewAdminHandler(protected, deps.AdminUC)
	}

	return r
}
