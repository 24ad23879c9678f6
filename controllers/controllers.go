package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ian-shakespeare/tapster/logger"
	"github.com/ian-shakespeare/tapster/utils"
)

// respondError renders a service failure. Anything that is not an APIError is
// an unclassified server fault.
func respondError(c *gin.Context, err error) {
	var apiErr *utils.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status >= http.StatusInternalServerError {
			logger.Error("internal error", zap.String("path", c.Request.URL.Path), zap.String("message", apiErr.Message))
		}
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	logger.Error("unclassified error", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
