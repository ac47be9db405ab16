package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleError writes err to the client in the standard response envelope:
// {"success": false, "message": "..."}. Anything that is not an *AppError is
// treated as an internal error and reported with the generic message only.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	status := appErr.HTTPCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{
		"success": false,
		"message": appErr.Message,
	})
}

// AsAppError converts err to *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
