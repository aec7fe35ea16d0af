package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare-catalog/internal/repository"
	"github.com/snnyvrz/shelfshare-catalog/internal/validation"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

// logFailure records the underlying cause of a failed operation. Clients
// only ever see the classified message written by writeError.
func logFailure(c *gin.Context, op string, err error, attrs ...any) {
	args := []any{
		"op", op,
		"request_id", c.GetString(requestIDKey),
		"error", err,
	}
	if name := repository.ConstraintName(err); name != "" {
		args = append(args, "constraint", name)
	}
	args = append(args, attrs...)

	slog.ErrorContext(c.Request.Context(), "catalog operation failed", args...)
}
