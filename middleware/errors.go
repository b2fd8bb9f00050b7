package middleware

import (
	"log"
	"net/http"

	"WellnessHub/apierror"
	"WellnessHub/util"

	"github.com/gin-gonic/gin"
)

// Handle adapts an error-returning controller into a gin handler.
func Handle(fn func(c *gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fn(c); err != nil {
			_ = c.Error(err)
			c.Abort()
		}
	}
}

/*
* Runs after the handler chain
* Typed errors keep their status and message
* Anything else is logged and turned into a generic 500
 */
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		apiErr, ok := apierror.As(err)
		if !ok {
			log.Printf("Unhandled error on %s %s [%s]: %v", c.Request.Method, c.Request.URL.Path, c.GetString(RequestIDKey), err)
			apiErr = apierror.New(http.StatusInternalServerError, util.INTERNAL_SERVER_ERROR)
		}
		c.JSON(apiErr.StatusCode, util.FailedResponse(apiErr))
	}
}
