package handler

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// Webhook triggers a deployment refresh and answers with the command output as plain text.
// The endpoint is not authenticated.
func (h *Handler) Webhook(c *gin.Context) {
	if h.deployer == nil {
		c.String(http.StatusNotFound, "webhook disabled")
		return
	}

	output, err := h.deployer.Refresh(c.Request.Context())
	if err != nil {
		log.Error("deployment refresh failed", "error", err)
		c.String(http.StatusInternalServerError, "error: %v\noutput: %s", err, output)
		return
	}
	log.Info("deployment refreshed")
	c.String(http.StatusOK, "output: %s", output)
}
