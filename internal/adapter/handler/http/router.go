package http

import (
	"context"
	"net/http"

	"github.com/sm8ta/webike_inventory/internal/config"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
	"github.com/sm8ta/webike_inventory/internal/core/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sm8ta/webike_inventory/docs"
)

type Router struct {
	router *gin.Engine
	server *http.Server
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	bikeHandler *BikeHandler,
	authHandler *AuthHandler,
	auditHandler *AuditHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerRoutes(router, tokenService, bikeHandler, authHandler, auditHandler)

	return &Router{
		router: router,
		server: &http.Server{Handler: router},
	}, nil
}

func registerRoutes(
	router *gin.Engine,
	tokenService ports.TokenService,
	bikeHandler *BikeHandler,
	authHandler *AuthHandler,
	auditHandler *AuditHandler,
) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Guard entry points
	router.GET(services.LoginPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Authentication required",
			"login":   "/auth/login",
		})
	})
	router.GET(services.UnauthorizedPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Your role does not allow this page",
		})
	})

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.GET("/me", AuthMiddleware(tokenService), authHandler.Me)
	}

	editors := RequireRoles(domain.RoleCollaborator, domain.RoleAdmin)
	admins := RequireRoles(domain.RoleAdmin)

	// Bikes routes
	bikes := router.Group("/bikes")
	bikes.Use(AuthMiddleware(tokenService))
	{
		bikes.GET("", bikeHandler.ListBikes)
		bikes.GET("/stats", bikeHandler.Stats)
		bikes.POST("/refresh", bikeHandler.Refresh)
		bikes.GET("/:id", bikeHandler.GetBike)
		bikes.POST("", editors, bikeHandler.CreateBike)
		bikes.PUT("/:id", editors, bikeHandler.UpdateBike)
		bikes.DELETE("/:id", admins, bikeHandler.DeleteBike)
	}

	// Inventory routes
	inventory := router.Group("/inventory")
	inventory.Use(AuthMiddleware(tokenService))
	{
		inventory.GET("/state", bikeHandler.State)
		inventory.DELETE("/error", bikeHandler.ClearError)
	}

	// Audit routes
	audit := router.Group("/audit")
	audit.Use(AuthMiddleware(tokenService), admins)
	{
		audit.GET("", auditHandler.List)
	}
}

func (r *Router) Serve(addr string) error {
	r.server.Addr = addr
	return r.server.ListenAndServe()
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
