package handlers

import (
	"github.com/SscSPs/finance_tracker/cmd/docs"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// authLimiter throttles register and login; nil disables throttling.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	registerHomeRoutes(r, v1)

	var limit gin.HandlerFunc
	if authLimiter != nil {
		limit = middleware.RateLimit(authLimiter)
	}
	requireAuth := middleware.AuthMiddleware(services.Auth)

	registerAuthRoutes(v1, services.Auth, requireAuth, limit)
	registerGoogleOAuthRoutes(v1, services.GoogleOAuth)

	// Everything below requires a valid token
	protected := v1.Group("", requireAuth)
	registerTransactionRoutes(protected, services.Transaction)
	registerAdminRoutes(protected, services.Admin, services.Transaction)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
