package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-assistencia/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-assistencia/internal/adapter/api/route"
	"github.com/hugohenrick/erp-assistencia/internal/adapter/repository"
	"github.com/hugohenrick/erp-assistencia/internal/domain/order"
	"github.com/hugohenrick/erp-assistencia/internal/infrastructure/database"
	"github.com/hugohenrick/erp-assistencia/internal/infrastructure/eventbus"
	"github.com/hugohenrick/erp-assistencia/pkg/auth"
	"github.com/hugohenrick/erp-assistencia/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo com todas as
// dependências montadas
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Repositórios
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	financialRepo := repository.NewFinancialRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Barramento de eventos de mudança de status
	bus := eventbus.New(log)
	bus.Subscribe(func(event order.StatusChangedEvent) {
		log.Info("status da OS alterado",
			"order_id", event.OrderID,
			"from", event.From,
			"to", event.To,
			"changed_by", event.ChangedBy)
	})

	workflow := order.NewWorkflow(orderRepo, bus)

	// Controllers
	orderController := controller.NewOrderController(orderRepo, customerRepo, workflow, log)
	customerController := controller.NewCustomerController(customerRepo, log)
	productController := controller.NewProductController(productRepo, log)
	saleController := controller.NewSaleController(saleRepo, productRepo, log)
	financialController := controller.NewFinancialController(financialRepo, log)
	dashboardController := controller.NewDashboardController(orderRepo, productRepo, financialRepo, log)
	authController := controller.NewAuthController(userRepo, jwtService, log)

	// Router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	authMiddleware := auth.Middleware(jwtService)

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterAuthRoutes(api, authMiddleware, authController)
	route.RegisterOrderRoutes(api, authMiddleware, orderController)
	route.RegisterCustomerRoutes(api, authMiddleware, customerController)
	route.RegisterProductRoutes(api, authMiddleware, productController)
	route.RegisterSaleRoutes(api, authMiddleware, saleController)
	route.RegisterFinancialRoutes(api, authMiddleware, financialController)
	route.RegisterDashboardRoutes(api, authMiddleware, dashboardController)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("iniciando servidor", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
