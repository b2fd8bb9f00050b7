package util

import (
	"WellnessHub/apierror"

	"github.com/gin-gonic/gin"
)

func SuccessResponse(statusCode int, message string, data any) gin.H {
	return gin.H{
		"statusCode": statusCode,
		"data":       data,
		"message":    message,
		"success":    true,
	}
}

func FailedResponse(err *apierror.APIError) gin.H {
	errs := err.Errors
	if errs == nil {
		errs = []any{}
	}
	return gin.H{
		"statusCode": err.StatusCode,
		"success":    false,
		"message":    err.Message,
		"errors":     errs,
	}
}
