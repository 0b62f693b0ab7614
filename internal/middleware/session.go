package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// SessionName est le nom du cookie de session.
const SessionName = "voltshop_session"

// EmailKey est la clé du contexte Gin sous laquelle l'email de
// l'utilisateur authentifié est posé.
const EmailKey = "email"

// RequireSession protège une route : sans session active, redirection
// vers /login sans toucher à l'état.
func RequireSession(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Request, SessionName)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		email, ok := session.Values[EmailKey].(string)
		if !ok || email == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(EmailKey, email)
		c.Next()
	}
}
