package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jon4hz/cookbook/internal/database"
)

// renderError maps an error to a status code and renders the error page.
// Missing documents are 404, malformed ids 400 and everything else 500.
func (h *Handler) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, database.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, database.ErrInvalidID):
		status = http.StatusBadRequest
	default:
		log.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	}
	_ = c.Error(err)
	h.render(c, status, "error.html", gin.H{
		"Title":  "Error",
		"Status": status,
		"Error":  err.Error(),
	})
}

// Recover renders the error page for a panic raised by a handler.
func (h *Handler) Recover(c *gin.Context, recovered any) {
	err, ok := recovered.(error)
	if !ok {
		err = fmt.Errorf("%v", recovered)
	}
	log.Error("recovered from panic", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	h.render(c, http.StatusInternalServerError, "error.html", gin.H{
		"Title":  "Error",
		"Status": http.StatusInternalServerError,
		"Error":  err.Error(),
	})
	c.Abort()
}

// NotFound renders the error page for unknown routes.
func (h *Handler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "error.html", gin.H{
		"Title":  "Not Found",
		"Status": http.StatusNotFound,
		"Error":  fmt.Sprintf("%s %s: page not found", c.Request.Method, c.Request.URL.Path),
	})
}
