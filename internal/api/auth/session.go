package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// The session only remembers who logged in last for display purposes.
// No route checks it.
const sessionUsernameKey = "username"

// SetDisplayName stores the username of the last successful login.
func SetDisplayName(c *gin.Context, username string) error {
	session := sessions.Default(c)
	session.Set(sessionUsernameKey, username)
	return session.Save()
}

// DisplayName returns the username stored in the session, if any.
func DisplayName(c *gin.Context) string {
	return getSessionString(sessions.Default(c), sessionUsernameKey)
}

// ClearSession removes all session values.
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

func getSessionString(session sessions.Session, key string) string {
	if val := session.Get(key); val != nil {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
