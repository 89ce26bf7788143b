package routes

import (
	"log"

	"expense-portal-backend/internal/api/handlers"
	"expense-portal-backend/internal/api/middleware"
	"expense-portal-backend/internal/auth"
	"expense-portal-backend/internal/config"
	"expense-portal-backend/internal/repository"
	"expense-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, userRepo, membershipRepo, validator)
	categoryService := service.NewCategoryService(categoryRepo, membershipRepo, validator)
	policyService := service.NewPolicyService(policyRepo, categoryRepo, membershipRepo, validator)
	expenseService := service.NewExpenseService(expenseRepo, categoryRepo, policyRepo, membershipRepo, validator)
	groupService := service.NewGroupService(groupRepo, membershipRepo, validator)
	messageService := service.NewMessageService(messageRepo, membershipRepo, validator)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = nil
	}

	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig, userRepo)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authHandler = auth.NewAuthHandler(authService)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	policyHandler := handlers.NewPolicyHandler(policyService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	groupHandler := handlers.NewGroupHandler(groupService)
	messageHandler := handlers.NewMessageHandler(messageService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			authGroup.POST("/validate", authHandler.ValidateToken)
			if authMiddleware != nil {
				authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
			}
		}
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")

	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Organization routes, with org-scoped nested resources
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)

			organizations.GET("/:id/members", organizationHandler.ListMembers)
			organizations.POST("/:id/members", organizationHandler.InviteUser)
			organizations.PUT("/:id/members/:userId", organizationHandler.UpdateMemberRole)
			organizations.DELETE("/:id/members/:userId", organizationHandler.RemoveMember)

			organizations.GET("/:id/categories", categoryHandler.ListCategories)
			organizations.POST("/:id/categories", categoryHandler.CreateCategory)

			organizations.GET("/:id/policies", policyHandler.ListPolicies)
			organizations.POST("/:id/policies", policyHandler.CreatePolicy)
			organizations.GET("/:id/policies/debug", policyHandler.DebugPolicy)

			organizations.GET("/:id/expenses", expenseHandler.ListExpenses)
			organizations.POST("/:id/expenses", expenseHandler.SubmitExpense)
			organizations.GET("/:id/expenses/review-queue", expenseHandler.ReviewQueue)

			organizations.GET("/:id/groups", groupHandler.ListGroups)
			organizations.POST("/:id/groups", groupHandler.CreateGroup)
			organizations.GET("/:id/groups/hierarchy", groupHandler.GetHierarchy)

			organizations.GET("/:id/messages", messageHandler.ListMessages)
			organizations.POST("/:id/messages", messageHandler.CreateMessage)
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		// Policy routes
		policies := v1.Group("/policies")
		{
			policies.GET("/:id", policyHandler.GetPolicy)
			policies.PUT("/:id", policyHandler.UpdatePolicy)
			policies.DELETE("/:id", policyHandler.DeletePolicy)
		}

		// Expense routes
		expenses := v1.Group("/expenses")
		{
			expenses.GET("/:id", expenseHandler.GetExpense)
		}

		// Group routes
		groups := v1.Group("/groups")
		{
			groups.GET("/:id", groupHandler.GetGroup)
			groups.PUT("/:id", groupHandler.UpdateGroup)
			groups.DELETE("/:id", groupHandler.DeleteGroup)
			groups.POST("/:id/members", groupHandler.AddGroupMember)
			groups.DELETE("/:id/members/:userId", groupHandler.RemoveGroupMember)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
