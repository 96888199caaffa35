package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AlexHopeIT/notes-servise-test/internal/domain"
	"github.com/AlexHopeIT/notes-servise-test/internal/repository"
	"github.com/gin-gonic/gin"
)

// ResolveUser runs after Auth. It looks the token subject up in the user
// store and sets "userID" in the gin context. A subject that no longer
// exists gets a 400 "User not found", same as any other stale token subject;
// the response does not say whether the token or the account was the
// problem beyond that.
func ResolveUser(users repository.UserRepository, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")

		user, err := users.FindByUsername(c.Request.Context(), username)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "User not found"})
				return
			}
			logger.ErrorContext(c.Request.Context(), "resolve user", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"error": "Internal server error"})
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
