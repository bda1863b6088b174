package utils

import (
	"errors"
	"log/slog"
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

func traceIDOf(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDOf(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var genErr *GenerationFailure

	switch {
	case errors.As(err, &genErr):
		RespondError(c, http.StatusBadGateway, genErr.Error())
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusUnauthorized, "Session expired, please log in again")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found or not yours")
	case errors.Is(err, ErrNoItinerary):
		RespondError(c, http.StatusConflict, "Generate a travel plan first")
	case errors.Is(err, ErrDatabaseError):
		slog.Error("database error", "err", err, "trace_id", traceIDOf(c))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		slog.Error("unknown error", "err", err, "trace_id", traceIDOf(c))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
