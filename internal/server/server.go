package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"todo/internal/config"
	"todo/internal/database"
	"todo/internal/handler"
	"todo/internal/job"
	"todo/internal/middleware"
	"todo/internal/repository"
	"todo/internal/service"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Server struct {
	Engine  *gin.Engine
	DB      *gorm.DB
	Config  *config.Config
	Logger  *log.Logger
	Sweeper *job.Sweeper
}

// Deps are the collaborators the HTTP router needs.
type Deps struct {
	Projects  handler.ProjectService
	Tasks     handler.TaskService
	Sweeper   handler.Sweeper
	JWTSecret string
	Logger    *log.Logger
}

func Init(cfg *config.Config, logger *log.Logger) (*Server, error) {
	db, err := database.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(cfg, db, logger); err != nil {
		return nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
	}

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Initialize services
	limits := cfg.Limits()
	projectService := service.NewProjectService(projectRepo, limits)
	taskService := service.NewTaskService(projectRepo, taskRepo, limits)
	sweeper := job.NewSweeper(taskRepo, logger)

	r := NewRouter(Deps{
		Projects:  projectService,
		Tasks:     taskService,
		Sweeper:   sweeper,
		JWTSecret: cfg.JWTSecret,
		Logger:    logger,
	})

	return &Server{
		Engine:  r,
		DB:      db,
		Config:  cfg,
		Logger:  logger,
		Sweeper: sweeper,
	}, nil
}

// NewRouter builds the gin engine. The /api/v1 group requires a bearer
// token only when a JWT secret is configured.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.ErrorLogger(deps.Logger))

	projectHandler := handler.NewProjectHandler(deps.Projects)
	taskHandler := handler.NewTaskHandler(deps.Tasks, nil)
	jobHandler := handler.NewJobHandler(deps.Sweeper)

	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the todo API", "docs": "/swagger/index.html"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	if deps.JWTSecret != "" {
		api.Use(middleware.JWTAuthMiddleware(deps.JWTSecret))
	}
	{
		// Project routes
		api.GET("/projects", projectHandler.GetAll)
		api.POST("/projects", projectHandler.Create)
		api.GET("/projects/:name", projectHandler.GetByName)
		api.PUT("/projects/:name", projectHandler.Update)
		api.DELETE("/projects/:name", projectHandler.Delete)

		// Task routes
		api.GET("/projects/:name/tasks", taskHandler.GetAll)
		api.POST("/projects/:name/tasks", taskHandler.Create)
		api.GET("/projects/:name/tasks/:id", taskHandler.GetByID)
		api.PUT("/projects/:name/tasks/:id", taskHandler.Update)
		api.PATCH("/projects/:name/tasks/:id/status", taskHandler.UpdateStatus)
		api.DELETE("/projects/:name/tasks/:id", taskHandler.Delete)

		// Job routes
		api.POST("/jobs/autoclose", jobHandler.Autoclose)
	}
	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweepDone := make(chan struct{})
	if s.Config.AutocloseEnabled {
		go func() {
			defer close(sweepDone)
			s.Sweeper.Run(ctx, s.Config.AutocloseInterval)
		}()
	} else {
		close(sweepDone)
	}

	go func() {
		s.Logger.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("❌ Failed to listen", "err", err)
			stop()
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	s.Logger.Info("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.Logger.Error("❌ Server forced to shutdown", "err", err)
	}
	<-sweepDone
	if err := database.Close(s.DB); err != nil {
		s.Logger.Warn("close database", "err", err)
	}

	s.Logger.Info("✅ Server exited properly")
}
