package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jon4hz/cookbook/internal/api/handler"
	"github.com/jon4hz/cookbook/internal/config"
	"github.com/jon4hz/cookbook/internal/database"
	"github.com/jon4hz/cookbook/internal/static"
	"github.com/jon4hz/cookbook/web/templates"
)

type Server struct {
	cfg       *config.Config
	ginEngine *gin.Engine
	db        database.DB
	handler   *handler.Handler
	srv       *http.Server
}

// New builds the HTTP server. deployer may be nil to disable the webhook.
func New(cfg *config.Config, db database.DB, deployer handler.Deployer, debug bool) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := templates.New()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		ginEngine: gin.New(),
		db:        db,
		handler:   handler.New(db, cfg, deployer),
	}
	// Usernames may contain "/", so route on the escaped path and unescape params.
	s.ginEngine.UseRawPath = true
	s.ginEngine.SetHTMLTemplate(tmpl)

	if err := s.setupRoutes(); err != nil {
		return nil, err
	}

	s.srv = &http.Server{
		Addr:              cfg.Listen,
		Handler:           s.ginEngine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("cookbook_session", store))
}

func (s *Server) setupRoutes() error {
	s.ginEngine.Use(requestLogger())
	s.setupSession()
	s.ginEngine.Use(gin.CustomRecovery(s.handler.Recover))
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))

	staticFS, err := static.FS()
	if err != nil {
		return err
	}
	s.ginEngine.StaticFS("/static", http.FS(staticFS))

	h := s.handler
	s.ginEngine.NoRoute(h.NotFound)

	s.ginEngine.GET("/", h.Home)

	// Reviews
	s.ginEngine.GET("/read", h.ReadReviews)
	s.ginEngine.GET("/create", h.CreateReviewForm)
	s.ginEngine.POST("/create", h.CreateReview)
	s.ginEngine.GET("/edit_review/:id", h.EditReviewForm)
	s.ginEngine.POST("/edit_review/:id", h.EditReview)
	s.ginEngine.GET("/delete/:id", h.DeleteReview)

	// Recipes
	s.ginEngine.GET("/read_recipes", h.ReadRecipes)
	s.ginEngine.GET("/create_recipe", h.CreateRecipeForm)
	s.ginEngine.POST("/create_recipe", h.CreateRecipe)
	s.ginEngine.GET("/edit_recipe/:id", h.EditRecipeForm)
	s.ginEngine.POST("/edit_recipe/:id", h.EditRecipe)
	s.ginEngine.GET("/delete_recipe/:id", h.DeleteRecipe)
	s.ginEngine.GET("/search", h.Search)

	// Accounts
	s.ginEngine.GET("/signup", h.SignupForm)
	s.ginEngine.POST("/signup", h.Signup)
	s.ginEngine.GET("/login", h.LoginForm)
	s.ginEngine.POST("/login", h.Login)
	s.ginEngine.GET("/logout", h.LogoutForm)
	s.ginEngine.POST("/logout", h.Logout)
	s.ginEngine.GET("/dashboard/:username", h.Dashboard)
	s.ginEngine.POST("/dashboard/:username", h.DashboardPost)

	s.ginEngine.POST("/webhook", h.Webhook)

	return nil
}

// Handler returns the http.Handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.ginEngine
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("stopping API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
