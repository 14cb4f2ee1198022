// Package http implements the public REST API on top of gin: route
// registration, the bearer-token boundary, and the CORS policy.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// AccountService is the account-facing surface the handlers need.
type AccountService interface {
	Register(ctx context.Context, name, email, password string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// TaskService is the task-facing surface the handlers need. Every method
// takes the already-validated identity as an explicit argument.
type TaskService interface {
	Create(ctx context.Context, identity *models.Identity, name, description string) (*models.Task, error)
	List(ctx context.Context, identity *models.Identity) ([]*models.Task, error)
	Get(ctx context.Context, identity *models.Identity, id string) (*models.Task, error)
	UpdateDone(ctx context.Context, identity *models.Identity, id string, done bool) (*models.Task, error)
	Delete(ctx context.Context, identity *models.Identity, id string) error
}

type Server struct {
	addr          string
	logger        logging.Logger
	accounts      AccountService
	tasks         TaskService
	jwtSecret     []byte
	tokenIssuer   string
	tokenAudience string
	corsOrigin    string
}

func NewServer(l logging.Logger, as AccountService, ts TaskService, cfg *config.Config) *Server {
	return &Server{
		addr:          cfg.Addr,
		logger:        l.With("module", "http_server"),
		accounts:      as,
		tasks:         ts,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenIssuer:   cfg.TokenIssuer,
		tokenAudience: cfg.TokenAudience,
		corsOrigin:    cfg.CORSAllowedOrigin,
	}
}

// Router builds the gin engine with all routes registered. Register and
// login are the only routes reachable without a bearer token.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{s.corsOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	r.GET("/ping", s.ping)

	authGroup := r.Group("/auth")
	authGroup.POST("/register", s.registerAccount)
	authGroup.POST("/login", s.login)

	tasksGroup := r.Group("/tasks", s.authRequired())
	tasksGroup.GET("", s.listTasks)
	tasksGroup.POST("", s.createTask)
	tasksGroup.GET("/:id", s.getTask)
	tasksGroup.PUT("/:id/status", s.updateTaskStatus)
	tasksGroup.DELETE("/:id", s.deleteTask)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
