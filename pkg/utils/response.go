package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"wallet-tracker-api/internal/dto"
	apperrors "wallet-tracker-api/pkg/errors"
)

func SendSuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, dto.NewSuccessResponse(message, data))
}

func SendErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, dto.NewErrorResponseWithCode(message, status))
}

// SendError maps an application error to its HTTP status. Unknown errors are
// logged and reported as a generic 500.
func SendError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status() >= http.StatusInternalServerError {
			logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		}
		SendErrorResponse(c, appErr.Status(), appErr.Message)
		return
	}

	logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("unhandled error")
	SendErrorResponse(c, http.StatusInternalServerError, "internal server error")
}

func SendValidationError(c *gin.Context, err error) {
	SendErrorResponse(c, http.StatusBadRequest, "Validation failed: "+err.Error())
}
