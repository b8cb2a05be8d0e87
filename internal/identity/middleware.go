package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/naborsk/racequiz/internal/dto"
	"github.com/rs/zerolog/log"
)

const sessionKey = "identity_session"

// RequireAuth resolves the request session and aborts with 401 when there is
// none. Handlers downstream read it with CurrentSession.
func RequireAuth(provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := provider.GetSession(c.Request)
		if err != nil {
			log.Error().Err(err).Msg("Session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal Server Error"})
			return
		}
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
			return
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireAdmin gates organizer routes. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
			return
		}
		if !session.User.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session stored by RequireAuth, or nil.
func CurrentSession(c *gin.Context) *Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*Session)
	return session
}
