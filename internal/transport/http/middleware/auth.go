package middleware

import (
	"net/http"
	"strings"

	"github.com/AlexHopeIT/notes-servise-test/internal/token"
	"github.com/gin-gonic/gin"
)

const errUnauthorized = "Unauthorized"

// Auth validates the Bearer token and sets "username" in the gin context.
// Verification is delegated to the token service, so a malformed token, a
// wrong signature and an expired token all fail the same way.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c)
			return
		}

		subject, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set("username", subject)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
}
