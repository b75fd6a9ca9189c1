package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"complaintdesk/backend/internal/auth"
	"complaintdesk/backend/internal/config"
)

// RequireSession guards staff-only routes. It resolves the session cookie via
// the access gate and stores the staff user ID in the gin context; requests
// without a valid session are redirected to the login page.
func (h *Handler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(config.SessionCookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		userID, err := h.Auth.Authorize(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// ShowLogin renders the login form.
func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login authenticates a staff account and sets the session cookie.
func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := h.Auth.Login(username, password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Invalid username or password",
		})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.SetCookie(config.SessionCookieName, token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/records")
}

// Logout destroys the session and clears the cookie.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(config.SessionCookieName); err == nil {
		if err := h.Auth.Logout(token); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
	}

	c.SetCookie(config.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
