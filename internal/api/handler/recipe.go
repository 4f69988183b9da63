package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jon4hz/cookbook/internal/api/models"
	"github.com/jon4hz/cookbook/internal/database"
)

// ReadRecipes lists all recipes, newest first.
func (h *Handler) ReadRecipes(c *gin.Context) {
	recipes, err := h.db.GetRecipes(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "read_recipes.html", gin.H{
		"Title": "Recipes",
		"Docs":  models.ToRecipes(recipes),
	})
}

func (h *Handler) CreateRecipeForm(c *gin.Context) {
	h.render(c, http.StatusOK, "post_recipe.html", gin.H{"Title": "Post a recipe"})
}

// CreateRecipe stores a recipe and redirects back to the empty form.
func (h *Handler) CreateRecipe(c *gin.Context) {
	recipe := &database.Recipe{
		Username:     c.PostForm("username"),
		Title:        c.PostForm("recipe"),
		Ingredients:  c.PostForm("ingredients"),
		Instructions: c.PostForm("instructions"),
	}
	if err := h.db.CreateRecipe(c.Request.Context(), recipe); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/create_recipe")
}

func (h *Handler) EditRecipeForm(c *gin.Context) {
	recipe, err := h.db.GetRecipeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "edit_recipe.html", gin.H{
		"Title":    "Edit recipe",
		"Doc":      models.ToRecipe(*recipe),
		"Username": recipe.Username,
	})
}

// EditRecipe replaces the three text fields and redirects to the owner's dashboard.
func (h *Handler) EditRecipe(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	fields := database.RecipeFields{
		Title:        c.PostForm("recipe"),
		Ingredients:  c.PostForm("ingredients"),
		Instructions: c.PostForm("instructions"),
	}
	if err := h.db.UpdateRecipe(ctx, id, fields); err != nil {
		h.renderError(c, err)
		return
	}

	recipe, err := h.db.GetRecipeByID(ctx, id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	redirectToDashboard(c, recipe.Username)
}

// DeleteRecipe removes a recipe and redirects to its owner's dashboard.
func (h *Handler) DeleteRecipe(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	recipe, err := h.db.GetRecipeByID(ctx, id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if err := h.db.DeleteRecipe(ctx, id); err != nil {
		h.renderError(c, err)
		return
	}
	redirectToDashboard(c, recipe.Username)
}
