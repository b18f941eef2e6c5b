package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/weatherpulse/internal/domain/dto"
)

// AbortWithError stops the chain and writes a dto.ErrorResponse with status.
// err may be nil; when set it is also attached to c.Errors for the request logger.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

// ErrorHandler converts errors pushed with c.Error into a 500 response when
// the handler did not write one itself.
var ErrorHandler gin.HandlerFunc = func(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	last := c.Errors.Last()
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last.Err))
}
