package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-tracker-api/internal/boardsync"
	"project-tracker-api/internal/cache"
	"project-tracker-api/internal/client"
	"project-tracker-api/internal/handler"
	"project-tracker-api/internal/metrics"
	"project-tracker-api/internal/middleware"
	"project-tracker-api/internal/repository"
	"project-tracker-api/internal/service"
)

// Config holds the dependencies needed to build the HTTP router
type Config struct {
	DB          *gorm.DB
	RedisClient *redis.Client
	Logger      *zap.Logger
	JWTSecret   string
	UserClient  client.UserClient
	BasePath    string
	Metrics     *metrics.Metrics
	CORSOrigins []string
	CacheTTL    time.Duration
}

// Setup wires repositories, services and handlers into a gin engine
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Repositories
	itemRepo := repository.NewItemRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	sprintRepo := repository.NewSprintRepository(cfg.DB)

	reportCache := cache.NewReportCache(cfg.RedisClient, cfg.CacheTTL)

	// Live feed doubles as the sync adapter's status change notifier
	feedHandler := handler.NewBoardFeedHandler(cfg.Logger)

	adapter := boardsync.NewAdapter(
		service.NewRepoItemSource(itemRepo),
		service.NewRepoCommentSink(commentRepo),
		feedHandler,
		cfg.Logger,
	)

	// Services
	boardService := service.NewBoardService(adapter, commentRepo, reportCache, cfg.Metrics, cfg.Logger)
	itemService := service.NewItemService(itemRepo, sprintRepo, cfg.UserClient, boardService, reportCache, cfg.Metrics, cfg.Logger)
	sprintService := service.NewSprintService(sprintRepo, reportCache, cfg.Metrics, cfg.Logger)
	kpiService := service.NewKPIService(itemRepo, reportCache, cfg.Logger)

	// Handlers
	boardHandler := handler.NewBoardHandler(boardService)
	itemHandler := handler.NewItemHandler(itemService)
	sprintHandler := handler.NewSprintHandler(sprintService)
	kpiHandler := handler.NewKPIHandler(kpiService)

	healthCheck := func(c *gin.Context) {
		status := "ok"
		if cfg.DB != nil {
			if sqlDB, err := cfg.DB.DB(); err != nil || sqlDB.Ping() != nil {
				status = "degraded"
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": status})
	}

	// Unauthenticated endpoints at root
	r.GET("/health", healthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)
	{
		api.GET("/health", healthCheck)
		api.GET("/metrics", gin.WrapH(promhttp.Handler()))
		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		// The feed carries no client input, jwt stays optional here
		api.GET("/board/feed", feedHandler.HandleFeed)

		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(cfg.JWTSecret))
		{
			authenticated.GET("/board", boardHandler.GetBoard)
			authenticated.POST("/board/items/:id/move", boardHandler.MoveItem)

			authenticated.POST("/items", itemHandler.CreateItem)
			authenticated.GET("/items", itemHandler.ListItems)
			authenticated.GET("/items/:id", itemHandler.GetItem)
			authenticated.PATCH("/items/:id", itemHandler.UpdateItem)
			authenticated.POST("/items/:id/complete", itemHandler.CompleteItem)
			authenticated.DELETE("/items/:id", itemHandler.DeleteItem)

			authenticated.GET("/items/:id/comments", boardHandler.GetComments)
			authenticated.POST("/items/:id/comments", boardHandler.AddComment)

			authenticated.POST("/sprints", sprintHandler.CreateSprint)
			authenticated.GET("/sprints", sprintHandler.ListSprints)
			authenticated.GET("/sprints/:id", sprintHandler.GetSprint)
			authenticated.PATCH("/sprints/:id", sprintHandler.UpdateSprint)
			authenticated.DELETE("/sprints/:id", sprintHandler.DeleteSprint)

			authenticated.GET("/reports/sprint", kpiHandler.SprintReport)
			authenticated.GET("/reports/assignees", kpiHandler.AssigneeReport)
		}
	}

	return r
}
