package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library/models"
)

// statusFor maps a library error onto the HTTP status returned to the client
func statusFor(err error) int {
	switch {
	case models.Is(err, models.ErrBookNotFound), models.Is(err, models.ErrLoggerNotFound):
		return http.StatusNotFound
	case models.Is(err, models.ErrDuplicateTitle),
		models.Is(err, models.ErrYearOutOfRange),
		models.Is(err, models.ErrNegativePrice),
		models.Is(err, models.ErrInvalidNewPrice):
		return http.StatusConflict
	case models.Is(err, models.ErrInvalidRequest),
		models.Is(err, models.ErrInvalidGenre),
		models.Is(err, models.ErrEmptyTitle),
		models.Is(err, models.ErrInvalidLevel):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), gin.H{"errorMessage": err.Error()})
}

func respond(c *gin.Context, result any) {
	c.JSON(http.StatusOK, gin.H{"result": result})
}
