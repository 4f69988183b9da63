package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jon4hz/cookbook/internal/api/models"
	"github.com/jon4hz/cookbook/internal/database"
	"github.com/jon4hz/cookbook/internal/gravatar"
	"golang.org/x/sync/errgroup"
)

// Dashboard shows the reviews and recipes owned by a username.
// The username is matched against the copy stored on each document.
func (h *Handler) Dashboard(c *gin.Context) {
	username := c.Param("username")

	var (
		reviews []database.Review
		recipes []database.Recipe
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		reviews, err = h.db.GetReviewsByUsername(ctx, username)
		return err
	})
	g.Go(func() error {
		var err error
		recipes, err = h.db.GetRecipesByUsername(ctx, username)
		return err
	})
	if err := g.Wait(); err != nil {
		h.renderError(c, err)
		return
	}

	h.render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title": username,
		"Dashboard": models.Dashboard{
			Username:  username,
			AvatarURL: gravatar.GenerateURL(username, h.config.Gravatar),
			Reviews:   models.ToReviews(reviews),
			Recipes:   models.ToRecipes(recipes),
		},
	})
}

// DashboardPost redirects back to the dashboard.
func (h *Handler) DashboardPost(c *gin.Context) {
	redirectToDashboard(c, c.Param("username"))
}
