package middlewares

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ian-shakespeare/tapster/utils"
)

const ownerKey = "ownerID"

// AuthMiddleware is the ownership gate. It takes the second
// whitespace-separated field of the Authorization header (the scheme word is
// ignored), verifies it and stashes the owner id on the context. Token
// verification failures keep their own status: an invalid jwt is a 400, per
// the token verifier.
func AuthMiddleware(signingKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth token"})
			return
		}
		if !utf8.ValidString(header) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
			return
		}

		fields := strings.Fields(header)
		if len(fields) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth token"})
			return
		}

		owner, err := utils.VerifyToken(signingKey, fields[1])
		if err != nil {
			var apiErr *utils.APIError
			if errors.As(err, &apiErr) {
				c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr.Message})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
			return
		}

		c.Set(ownerKey, owner)
		c.Next()
	}
}

// OwnerID returns the authenticated owner set by AuthMiddleware.
func OwnerID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(ownerKey)
	if !ok {
		return uuid.Nil
	}
	owner, _ := v.(uuid.UUID)
	return owner
}
