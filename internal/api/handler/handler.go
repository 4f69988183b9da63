package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jon4hz/cookbook/internal/api/auth"
	"github.com/jon4hz/cookbook/internal/config"
	"github.com/jon4hz/cookbook/internal/database"
	"github.com/jon4hz/cookbook/web/templates/components"
)

// Deployer refreshes the running deployment when the webhook fires.
type Deployer interface {
	Refresh(ctx context.Context) (string, error)
}

type Handler struct {
	db       database.DB
	config   *config.Config
	deployer Deployer
}

// New creates the request handlers. deployer may be nil, in which case the webhook answers 404.
func New(db database.DB, cfg *config.Config, deployer Deployer) *Handler {
	return &Handler{
		db:       db,
		config:   cfg,
		deployer: deployer,
	}
}

// render writes the named page. Every page gets the session display name and a search query.
func (h *Handler) render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = ""
	}
	if _, ok := data["Query"]; !ok {
		data["Query"] = ""
	}
	data["SessionUser"] = auth.DisplayName(c)
	c.HTML(status, page, data)
}

func redirectToDashboard(c *gin.Context, username string) {
	c.Redirect(http.StatusFound, components.DashboardURL(username))
}

func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "index.html", nil)
}
