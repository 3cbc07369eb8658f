package api

import (
	"maxios-backend/config"
	_ "maxios-backend/docs"
	adminNews "maxios-backend/internal/api/v1/admin/news"
	adminPool "maxios-backend/internal/api/v1/admin/pool"
	adminSettings "maxios-backend/internal/api/v1/admin/settings"
	adminTicket "maxios-backend/internal/api/v1/admin/ticket"
	adminTransaction "maxios-backend/internal/api/v1/admin/transaction"
	adminUser "maxios-backend/internal/api/v1/admin/user"
	adminWithdrawal "maxios-backend/internal/api/v1/admin/withdrawal"
	"maxios-backend/internal/api/v1/auth"
	minerRoutes "maxios-backend/internal/api/v1/miner"
	paymentRoutes "maxios-backend/internal/api/v1/payment"
	poolRoutes "maxios-backend/internal/api/v1/pool"
	ticketRoutes "maxios-backend/internal/api/v1/ticket"
	userRoutes "maxios-backend/internal/api/v1/user"
	withdrawalRoutes "maxios-backend/internal/api/v1/withdrawal"
	"maxios-backend/internal/database"
	"maxios-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1)
		poolRoutes.RegisterRoutes(v1)

		// Authenticated customer routes; each group attaches AuthMiddleware.
		userRoutes.RegisterRoutes(v1)
		minerRoutes.RegisterRoutes(v1)
		withdrawalRoutes.RegisterRoutes(v1)
		paymentRoutes.RegisterRoutes(v1)
		ticketRoutes.RegisterRoutes(v1)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminUser.RegisterRoutes(admin)
			adminWithdrawal.RegisterRoutes(admin)
			adminTicket.RegisterRoutes(admin)
			adminNews.RegisterRoutes(admin)
			adminPool.RegisterRoutes(admin)
			adminSettings.RegisterRoutes(admin)
			adminTransaction.RegisterRoutes(admin)
		}
	}

	return router, nil
}
