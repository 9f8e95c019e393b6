package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apierrors "github.com/Abdullah0f/projectEase/internal/errors"
	"github.com/Abdullah0f/projectEase/internal/logger"
)

// bindJSON parses the body into req. Validator failures come back as a
// 400 naming the offending fields.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]gin.H, len(verrs))
		for i, fe := range verrs {
			details[i] = gin.H{
				"field": fe.Field(),
				"rule":  fe.Tag(),
			}
		}
		apierrors.BadRequestWithDetails(c, "Invalid request body", details)
	} else {
		apierrors.BadRequest(c, "Invalid request body")
	}
	return false
}

// serverError logs the unexpected failure and hides the detail from the
// client.
func serverError(c *gin.Context, err error) {
	logger.L().Error("unexpected failure",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	apierrors.InternalError(c, "")
}
