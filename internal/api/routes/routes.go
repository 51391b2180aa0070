package routes

import (
	"duty-assignment-backend/internal/api/handlers"
	"duty-assignment-backend/internal/api/middleware"
	"duty-assignment-backend/internal/config"
	"duty-assignment-backend/internal/crm"
	"duty-assignment-backend/internal/engine"
	"duty-assignment-backend/internal/repository"
	"duty-assignment-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles the wired service layer so main can hand pieces of it to the
// scheduler without rebuilding them.
type Services struct {
	Assignment *service.AssignmentService
	Schedule   *service.ScheduleService
	Rules      *service.RuleService
	History    *service.HistoryService
	Users      *service.UserService
	Fields     *service.FieldService
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, crmClient crm.Client) (*gin.Engine, *Services) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	defaultUserRepo := repository.NewDefaultUserRepository(db)
	dutyDayRepo := repository.NewDutyDayRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	crmUserRepo := repository.NewCrmUserRepository(db)
	fieldMappingRepo := repository.NewFieldMappingRepository(db)

	// Initialize services
	loc := cfg.Location()
	scheduleService := service.NewScheduleService(dutyDayRepo, defaultUserRepo, crmUserRepo, loc)
	ruleService := service.NewRuleService(ruleRepo, crmUserRepo, validate, cfg.EnableExperimentalRuleKinds)
	historyService := service.NewHistoryService(historyRepo, crmUserRepo)
	userService := service.NewUserService(crmClient, crmUserRepo)
	fieldService := service.NewFieldService(crmClient, fieldMappingRepo)

	orchestrator := engine.NewOrchestrator(engine.Options{
		Crm:          crmClient,
		Duty:         scheduleService,
		Rules:        ruleService,
		History:      historyService,
		Names:        userService,
		Gate:         engine.NewScheduleGate(loc),
		Workers:      cfg.UpdateWorkers,
		Experimental: cfg.EnableExperimentalRuleKinds,
	})
	assignmentService := service.NewAssignmentService(orchestrator, loc)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	ruleHandler := handlers.NewRuleHandler(ruleService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	userHandler := handlers.NewUserHandler(userService)
	fieldHandler := handlers.NewFieldHandler(fieldService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// CRM webhook route. The CRM posts form-encoded events here; it is outside
	// /api/v1 so the webhook URL registered in the CRM stays stable.
	router.POST("/webhooks/crm", assignmentHandler.Webhook)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Duty roster routes
		schedule := v1.Group("/schedule")
		{
			schedule.GET("/default-users", scheduleHandler.ListDefaultUsers)
			schedule.PUT("/default-users", scheduleHandler.ReplaceDefaultUsers)
			schedule.GET("/days/:date", scheduleHandler.GetDay)
			schedule.PUT("/days/:date", scheduleHandler.SetDay)
			schedule.GET("/:year/:month", scheduleHandler.GetMonth)
			schedule.POST("/:year/:month/generate", scheduleHandler.GenerateMonth)
		}

		// Assignment rule routes
		rules := v1.Group("/rules")
		{
			rules.GET("", ruleHandler.ListRules)
			rules.POST("", ruleHandler.CreateRule)
			rules.GET("/:id", ruleHandler.GetRule)
			rules.PUT("/:id", ruleHandler.UpdateRule)
			rules.PATCH("/:id/enabled", ruleHandler.SetRuleEnabled)
			rules.DELETE("/:id", ruleHandler.DeleteRule)
		}

		// Assignment run routes
		assignments := v1.Group("/assignments")
		{
			assignments.POST("/run", assignmentHandler.Run)
			assignments.GET("/preview", assignmentHandler.Preview)
		}

		// History routes
		history := v1.Group("/history")
		{
			history.GET("", historyHandler.ListHistory)
			history.GET("/stats", historyHandler.HistoryStats)
		}

		// CRM user routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("/sync", userHandler.SyncUsers)
			users.GET("/:id", userHandler.GetUser)
		}

		// Field metadata routes
		fields := v1.Group("/fields")
		{
			fields.GET("/:entityType", fieldHandler.ListFields)
			fields.GET("/:entityType/:fieldId/values", fieldHandler.ListFieldValues)
			fields.GET("/:entityType/:fieldId/categories/:categoryId/stages", fieldHandler.ListCategoryStages)
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

	return router, &Services{
		Assignment: assignmentService,
		Schedule:   scheduleService,
		Rules:      ruleService,
		History:    historyService,
		Users:      userService,
		Fields:     fieldService,
	}
}
