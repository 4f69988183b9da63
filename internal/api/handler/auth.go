package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jon4hz/cookbook/internal/api/auth"
)

const (
	errUsernameTaken   = "Username already exists. Please choose a different username."
	errIncorrectPasswd = "Incorrect password. Please try again."
	errUnknownUsername = "Username does not exist. Please try again or sign up."
)

func (h *Handler) SignupForm(c *gin.Context) {
	h.render(c, http.StatusOK, "signup.html", gin.H{"Title": "Sign up"})
}

func (h *Handler) Signup(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := auth.Register(c.Request.Context(), h.db, username, password)
	if errors.Is(err, auth.ErrUsernameTaken) {
		h.render(c, http.StatusOK, "signup.html", gin.H{"Title": "Sign up", "Error": errUsernameTaken})
		return
	}
	if err != nil {
		h.renderError(c, err)
		return
	}

	log.Info("user signed up", "username", username)
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Log in"})
}

func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	res, err := auth.Verify(c.Request.Context(), h.db, username, password)
	if err != nil {
		h.renderError(c, err)
		return
	}

	switch res {
	case auth.ResultUnknownUser:
		h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Log in", "Error": errUnknownUsername})
	case auth.ResultWrongPassword:
		h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Log in", "Error": errIncorrectPasswd})
	default:
		if err := auth.SetDisplayName(c, username); err != nil {
			log.Warn("failed to save session", "error", err)
		}
		redirectToDashboard(c, username)
	}
}

func (h *Handler) LogoutForm(c *gin.Context) {
	h.render(c, http.StatusOK, "logout.html", gin.H{"Title": "Log out"})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := auth.ClearSession(c); err != nil {
		log.Warn("failed to clear session", "error", err)
	}
	c.Redirect(http.StatusFound, "/")
}
