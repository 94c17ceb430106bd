package routes

import (
	"fmt"

	"qa-tracker-backend/internal/api/handlers"
	"qa-tracker-backend/internal/api/middleware"
	"qa-tracker-backend/internal/auth"
	"qa-tracker-backend/internal/config"
	"qa-tracker-backend/internal/database/models"
	"qa-tracker-backend/internal/history"
	"qa-tracker-backend/internal/repository"
	"qa-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers and configures every route
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()
	recorder := history.NewRecorder(cfg.HistoryLanguage)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	testCaseRepo := repository.NewTestCaseRepository(db)
	executionRepo := repository.NewExecutionRepository(db)
	bugRepo := repository.NewBugRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	accessService := service.NewAccessService(userRepo, projectRepo, memberRepo)
	directoryService := service.NewDirectoryService(cfg)
	userService := service.NewUserService(userRepo, accessService, validator)
	projectService := service.NewProjectService(projectRepo, accessService, validator)
	memberService := service.NewMemberService(memberRepo, userRepo, accessService, directoryService, validator)
	testCaseService := service.NewTestCaseService(testCaseRepo, executionRepo, accessService, recorder, validator)
	executionService := service.NewExecutionService(testCaseRepo, executionRepo, accessService, recorder, validator)
	bugService := service.NewBugService(bugRepo, testCaseRepo, commentRepo, accessService, recorder, validator, cfg.StrictBugTransitions)
	commentService := service.NewCommentService(commentRepo, bugRepo, accessService, validator)
	reportService := service.NewReportService(reportRepo, accessService, cfg.TrendDays)
	dashboardService := service.NewDashboardService(bugRepo, accessService)

	authConfig := auth.NewAuthConfig(cfg)
	authService, err := auth.NewAuthService(authConfig, userRepo, auth.NewMailer(cfg), validator)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, directoryService.Enabled(), authService.GitHubEnabled())
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService, memberService)
	testCaseHandler := handlers.NewTestCaseHandler(testCaseService, executionService)
	bugHandler := handlers.NewBugHandler(bugService, commentService)
	reportHandler := handlers.NewReportHandler(reportService, dashboardService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/verify-email", authHandler.VerifyEmail)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/refresh", authHandler.Refresh)
		authRoutes.POST("/logout", authHandler.Logout)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)

		github := authRoutes.Group("/github")
		{
			github.GET("/start", authHandler.GitHubStart)
			github.GET("/callback", authHandler.GitHubCallback)
		}
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/dashboard", reportHandler.GetDashboard)
		v1.GET("/reports", reportHandler.GetReport)

		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/members", projectHandler.ListMembers)
			projects.POST("/:id/members", projectHandler.AddMember)
			projects.DELETE("/:id/members/:memberId", projectHandler.RemoveMember)
		}

		testCases := v1.Group("/test-cases")
		{
			testCases.GET("", testCaseHandler.ListTestCases)
			testCases.POST("", testCaseHandler.CreateTestCase)
			testCases.GET("/:id", testCaseHandler.GetTestCase)
			testCases.PUT("/:id", testCaseHandler.UpdateTestCase)
			testCases.DELETE("/:id", testCaseHandler.DeleteTestCase)
			testCases.GET("/:id/history", testCaseHandler.GetTestCaseHistory)
			testCases.GET("/:id/executions", testCaseHandler.ListExecutions)
			testCases.POST("/:id/executions", testCaseHandler.RecordExecution)
		}

		bugs := v1.Group("/bugs")
		{
			bugs.GET("", bugHandler.ListBugs)
			bugs.POST("", bugHandler.CreateBug)
			bugs.GET("/:id", bugHandler.GetBug)
			bugs.PATCH("/:id", bugHandler.UpdateBug)
			bugs.DELETE("/:id", bugHandler.DeleteBug)
			bugs.GET("/:id/history", bugHandler.GetBugHistory)
			bugs.GET("/:id/comments", bugHandler.ListComments)
			bugs.POST("/:id/comments", bugHandler.AddComment)
		}

		directory := v1.Group("/directory", auth.RequireRole(models.RoleAdmin, models.RoleLead))
		{
			directory.GET("/users", directoryHandler.SearchUsers)
		}
	}

	return router, nil
}
