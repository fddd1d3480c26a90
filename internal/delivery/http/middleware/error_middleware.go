package middleware

import (
	"errors"
	"net/http"

	"careertrack-backend/internal/delivery/http/response"
	"careertrack-backend/pkg/apperror"
	"careertrack-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code == http.StatusInternalServerError {
					// Log the wrapped cause server-side; the client only
					// ever sees the generic message
					logger.Log.Error("Internal server error", "error", appErr.Err, "path", c.FullPath())
					response.Error(c, appErr.Code, "An unexpected error occurred. Please try again later.", nil)
					return
				}
				if len(appErr.Fields) > 0 {
					response.Error(c, appErr.Code, appErr.Message, appErr.Fields)
					return
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}

			logger.Log.Error("Unhandled error", "error", err, "path", c.FullPath())
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
