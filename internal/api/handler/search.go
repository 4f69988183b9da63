package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jon4hz/cookbook/internal/api/models"
	"github.com/jon4hz/cookbook/internal/config"
)

// Search runs a full-text query over recipe titles, ingredients and instructions.
func (h *Handler) Search(c *gin.Context) {
	ctx := c.Request.Context()
	query := c.Query("query")

	if h.config.SearchIndexPolicy() == config.IndexPolicyRequest {
		if err := h.db.EnsureRecipeTextIndex(ctx); err != nil {
			h.renderError(c, err)
			return
		}
	}

	recipes, err := h.db.SearchRecipes(ctx, query)
	if err != nil {
		h.renderError(c, err)
		return
	}

	data := gin.H{
		"Title": "Search",
		"Query": query,
	}
	if len(recipes) == 0 {
		data["Message"] = fmt.Sprintf("No recipes found for the search query: '%s'", query)
	} else {
		data["Docs"] = models.ToRecipes(recipes)
	}
	h.render(c, http.StatusOK, "read_recipes.html", data)
}
