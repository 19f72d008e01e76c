// @title           GameHub Users API
// @version         1.0
// @description     User accounts backend: login, bearer tokens and user CRUD.
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/gamehub-backend/docs"
	"github.com/rafabene/gamehub-backend/internal/handlers/dto"
	httphandlers "github.com/rafabene/gamehub-backend/internal/handlers/http"
	"github.com/rafabene/gamehub-backend/internal/handlers/middleware"
	"github.com/rafabene/gamehub-backend/internal/infrastructure/config"
	"github.com/rafabene/gamehub-backend/internal/infrastructure/logging"
	"github.com/rafabene/gamehub-backend/internal/infrastructure/persistence/mongodb"
	"github.com/rafabene/gamehub-backend/internal/infrastructure/security"
	"github.com/rafabene/gamehub-backend/internal/services"
)

func main() {
	// .env é opcional; variáveis de ambiente têm prioridade
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting gamehub backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := mongodb.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo, err := mongodb.NewUserRepository(db)
	if err != nil {
		logger.Error("failed to initialize user repository", "error", err)
		log.Fatal(err)
	}

	// Componentes de segurança
	hasher := security.NewBcryptHasher()
	tokens := security.NewJWTManager(cfg.JWT.Secret)

	// Inicializar services
	userService := services.NewUserService(userRepo, hasher, logger)
	authService := services.NewAuthService(userRepo, hasher, tokens, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	userHandler := httphandlers.NewUserHandler(userService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	dto.RegisterTagNames()

	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "API location: api/v1"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, dto.MessageResponse{Message: "routes: users, auth"})
		})

		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		requireAuth := middleware.RequireAuth(authService)

		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.PUT("", requireAuth, userHandler.UpdateUser)
			users.DELETE("", requireAuth, userHandler.DeleteUser)

			users.GET("/token", requireAuth, userHandler.CheckToken)
			users.GET("/check", userHandler.Check)

			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", requireAuth, userHandler.UpdateUserAsAdmin)
			users.DELETE("/:id", requireAuth, userHandler.DeleteUserAsAdmin)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := mongodb.Disconnect(db); err != nil {
		logger.Error("failed to disconnect from database", "error", err)
	}

	logger.Info("server exited")
}

func corsConfig(allowedOrigins string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	if allowedOrigins == "" || origins[0] == "*" {
		config.AllowAllOrigins = true
		return config
	}

	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config
}
