package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jon4hz/cookbook/internal/api/models"
	"github.com/jon4hz/cookbook/internal/database"
)

// ReadReviews lists all reviews, newest first.
func (h *Handler) ReadReviews(c *gin.Context) {
	reviews, err := h.db.GetReviews(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "read.html", gin.H{
		"Title": "Reviews",
		"Docs":  models.ToReviews(reviews),
	})
}

func (h *Handler) CreateReviewForm(c *gin.Context) {
	h.render(c, http.StatusOK, "create.html", gin.H{"Title": "Write a review"})
}

// CreateReview stores a review and redirects to the review listing.
func (h *Handler) CreateReview(c *gin.Context) {
	review := &database.Review{
		Username:   c.PostForm("username"),
		RecipeName: c.PostForm("recipe_name"),
		Text:       c.PostForm("review"),
	}
	if err := h.db.CreateReview(c.Request.Context(), review); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/read")
}

func (h *Handler) EditReviewForm(c *gin.Context) {
	review, err := h.db.GetReviewByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.render(c, http.StatusOK, "edit_review.html", gin.H{
		"Title":    "Edit review",
		"Doc":      models.ToReview(*review),
		"Username": review.Username,
	})
}

// EditReview replaces the review text and redirects to the owner's dashboard.
func (h *Handler) EditReview(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.db.UpdateReviewText(ctx, id, c.PostForm("review")); err != nil {
		h.renderError(c, err)
		return
	}

	review, err := h.db.GetReviewByID(ctx, id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	redirectToDashboard(c, review.Username)
}

// DeleteReview removes a review and redirects to its owner's dashboard.
// A missing review is a 404, nothing is deleted.
func (h *Handler) DeleteReview(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	review, err := h.db.GetReviewByID(ctx, id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if err := h.db.DeleteReview(ctx, id); err != nil {
		h.renderError(c, err)
		return
	}
	redirectToDashboard(c, review.Username)
}
