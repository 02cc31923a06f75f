package main

import (
	"fmt"
	"net/http"
	"os"

	"famledger/internal/config"
	"famledger/internal/database"
	"famledger/internal/handlers"
	"famledger/internal/logger"
	"famledger/internal/middleware"
	"famledger/internal/realtime"
	"famledger/internal/services"
	"famledger/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "famledger/internal/docs" // Import swagger docs
)

// @title           FamLedger API
// @version         1.0
// @description     FamLedger is a family expense tracker: shared expenses, income, bills, budgets, and a live activity feed for the whole household.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	hub := realtime.NewHub()
	userService := services.NewUserService(db)
	memberService := services.NewMemberService(db)
	expenseService := services.NewExpenseService(db, hub)
	incomeService := services.NewIncomeService(db, hub)
	billService := services.NewBillService(db)
	budgetService := services.NewBudgetService(db)
	analyticsService := services.NewAnalyticsService(db)
	leaderboardService := services.NewLeaderboardService(db)
	activityService := services.NewActivityService(db, hub)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	memberHandler := handlers.NewMemberHandler(memberService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	billHandler := handlers.NewBillHandler(billService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	activityHandler := handlers.NewActivityHandler(activityService)
	sharedHandler := handlers.NewSharedHandler(memberService, analyticsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Share-token routes (the token is the credential)
	v1.GET("/shared/:token/dashboard", sharedHandler.GetSharedDashboard)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile and account lifecycle
	protected.GET("/profile", authHandler.GetProfile)
	protected.DELETE("/account", authHandler.DeleteAccount)

	// Family member routes
	members := protected.Group("/members")
	members.POST("", memberHandler.CreateMember)
	members.GET("", memberHandler.GetMembers)
	members.GET("/:id", memberHandler.GetMember)
	members.PUT("/:id", memberHandler.UpdateMember)
	members.DELETE("/:id", memberHandler.DeleteMember)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Income routes
	income := protected.Group("/income")
	income.POST("", incomeHandler.CreateIncome)
	income.GET("", incomeHandler.GetIncomes)
	income.GET("/:id", incomeHandler.GetIncome)
	income.PUT("/:id", incomeHandler.UpdateIncome)
	income.DELETE("/:id", incomeHandler.DeleteIncome)

	// Bill routes
	bills := protected.Group("/bills")
	bills.POST("", billHandler.CreateBill)
	bills.GET("", billHandler.GetBills)
	bills.GET("/upcoming", billHandler.GetUpcomingBills)
	bills.GET("/analytics", billHandler.GetBillAnalytics)
	bills.GET("/:id", billHandler.GetBill)
	bills.PUT("/:id", billHandler.UpdateBill)
	bills.DELETE("/:id", billHandler.DeleteBill)
	bills.POST("/:id/pay", billHandler.MarkBillPaid)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/usage", budgetHandler.GetBudgetUsage)
	budgets.GET("/alert", budgetHandler.GetBudgetAlert)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Analytics and leaderboard
	protected.GET("/analytics/dashboard", analyticsHandler.GetDashboard)
	protected.GET("/leaderboard", leaderboardHandler.GetLeaderboard)

	// Activity feed
	protected.GET("/activity", activityHandler.GetActivity)
	protected.GET("/activity/stream", activityHandler.StreamActivity)

	log.Infof("Starting FamLedger backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
