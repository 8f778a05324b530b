package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/masteryyh/promoadmin/pkg/customerrors"
)

type GenericResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

func NewGenericResponse(code int, message string, data any) *GenericResponse {
	return &GenericResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func fromError(err error) *GenericResponse {
	bizErr := customerrors.GetBusinessError(err)
	if bizErr == nil {
		bizErr = customerrors.ErrInternalServerError
	}
	resp := NewGenericResponse(bizErr.Code, bizErr.Message, nil)
	resp.Details = bizErr.Details
	return resp
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewGenericResponse(http.StatusOK, "ok", data))
}

func Failed(c *gin.Context, err error) {
	if customerrors.GetBusinessError(err) == nil {
		slog.ErrorContext(c, "request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(http.StatusOK, fromError(err))
}

func Abort(c *gin.Context, reason any) {
	if err, ok := reason.(error); ok {
		c.AbortWithStatusJSON(http.StatusOK, fromError(err))
		return
	}
	slog.ErrorContext(c, "an error occurred or panic recovered", "reason", reason)
	internal := customerrors.ErrInternalServerError
	c.AbortWithStatusJSON(internal.Code, NewGenericResponse(internal.Code, internal.Message, nil))
}
