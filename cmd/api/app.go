package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/petrini31/bike-garage-manager/docs"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/controller"
	"github.com/petrini31/bike-garage-manager/internal/adapter/api/route"
	"github.com/petrini31/bike-garage-manager/internal/adapter/repository"
	"github.com/petrini31/bike-garage-manager/internal/infrastructure/database"
	"github.com/petrini31/bike-garage-manager/pkg/auth"
	"github.com/petrini31/bike-garage-manager/pkg/logger"
	"github.com/petrini31/bike-garage-manager/pkg/notifier"
)

// App representa a aplicação e suas dependências
type App struct {
	router     *gin.Engine
	db         *pgxpool.Pool
	logger     logger.Logger
	jwtService *auth.JWTService
}

// NewApp cria uma nova instância da aplicação com todas as dependências
func NewApp() (*App, error) {
	appLogger := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Serviço de token
	jwtService, err := auth.NewJWTService()
	if err != nil {
		db.Close()
		return nil, err
	}

	// Notificações internas
	sink := notifier.NewLogSink(appLogger)

	// Criar repositórios
	customerRepo := repository.NewCustomerRepository(db)
	tagRepo := repository.NewTagRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewServiceOrderRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	revenueGoalRepo := repository.NewRevenueGoalRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Criar controllers
	customerController := controller.NewCustomerController(customerRepo, appLogger)
	tagController := controller.NewTagController(tagRepo, appLogger)
	supplierController := controller.NewSupplierController(supplierRepo, appLogger)
	productController := controller.NewProductController(productRepo, sink, appLogger)
	orderController := controller.NewServiceOrderController(orderRepo, statusRepo, sink, appLogger)
	statusController := controller.NewStatusController(statusRepo, appLogger)
	expenseController := controller.NewExpenseController(expenseRepo, appLogger)
	goalController := controller.NewGoalController(goalRepo, revenueGoalRepo, appLogger)
	revenueController := controller.NewRevenueController(revenueRepo, appLogger)
	dashboardController := controller.NewDashboardController(orderRepo, expenseRepo, revenueRepo, revenueGoalRepo, appLogger)
	authController := controller.NewAuthController(userRepo, jwtService, appLogger)
	userController := controller.NewUserController(userRepo, appLogger)

	// Configurar router
	router := gin.Default()

	// Configurar CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Registrar rotas dos módulos
	route.RegisterAuthRoutes(api, authController, jwtService)
	route.RegisterCustomerRoutes(api, customerController, jwtService)
	route.RegisterTagRoutes(api, tagController, jwtService)
	route.RegisterSupplierRoutes(api, supplierController, jwtService)
	route.RegisterProductRoutes(api, productController, jwtService)
	route.RegisterServiceOrderRoutes(api, orderController, jwtService)
	route.RegisterStatusRoutes(api, statusController, jwtService)
	route.RegisterExpenseRoutes(api, expenseController, jwtService)
	route.RegisterGoalRoutes(api, goalController, jwtService)
	route.RegisterRevenueRoutes(api, revenueController, jwtService)
	route.RegisterDashboardRoutes(api, dashboardController, jwtService)
	route.RegisterUserRoutes(api, userController, jwtService)

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &App{
		router:     router,
		db:         db,
		logger:     appLogger,
		jwtService: jwtService,
	}, nil
}

// Start inicia o servidor HTTP com desligamento gracioso
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.logger.Info("encerrando servidor", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
