package utils

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	message := err.Error()

	switch {
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, message)
	case errors.Is(err, ErrInvalidPayload):
		RespondError(c, http.StatusBadRequest, message)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(CauseOf(err), context.DeadlineExceeded):
		log.Printf("[%s] upstream timeout: %v", traceID(c), CauseOf(err))
		RespondError(c, http.StatusGatewayTimeout, message)
	case errors.Is(err, ErrFetchFailure), errors.Is(err, ErrSubmissionFailure):
		log.Printf("[%s] upstream error: %v", traceID(c), CauseOf(err))
		RespondError(c, http.StatusBadGateway, message)
	default:
		log.Printf("[%s] unknown error: %v", traceID(c), err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
