package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/utils"
)

// presentError maps domain errors to http status codes and renders them.
// It returns true when an error was rendered and the handler should stop.
func presentError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		logger := utils.LoggerFromContext(c.Request.Context())
		logger.ErrorContext(c.Request.Context(), "unexpected error",
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
	_ = c.Error(err)
	return true
}
