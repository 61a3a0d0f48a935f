// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"context"
	"errors"
	"net/http"

	"github.com/ghuser/marketscout/pkg/httpx"
	"github.com/ghuser/marketscout/pkg/logger"
	itemdomain "github.com/ghuser/marketscout/services/marketplaceitem/domain"
)

// isProduction controls 5xx message sanitization. Set once at startup via
// Configure, before the server accepts traffic.
var isProduction bool

// Configure sets the environment mode. In production, unrecognized (5xx)
// errors are written to clients as generic status text via httpx.SafeError;
// mapped business errors (4xx) keep their messages in every environment.
func Configure(production bool) {
	isProduction = production
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, isProduction))
}

// LogAndWriteError logs err once at the handler boundary with the operation
// name and any identifying key-value pairs, then writes the mapped JSON error
// response. Business outcomes (mapped 4xx) log at warn level; everything else
// is unexpected and logs at error level. The log always carries the full
// error; the client body is sanitized per Configure.
func LogAndWriteError(ctx context.Context, log logger.Logger, w http.ResponseWriter, op string, err error, keyvals ...any) {
	status := mapErrorToStatus(err)
	args := append(keyvals, "status", status, "error", err)
	if status < http.StatusInternalServerError {
		log.WarnContext(ctx, op, args...)
	} else {
		log.ErrorContext(ctx, op, args...)
	}
	httpx.JSONError(w, status, httpx.SafeError(err, status, isProduction))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, itemdomain.ErrDuplicateExternalID):
		return http.StatusConflict // 409
	case errors.Is(err, itemdomain.ErrInvalidArgument):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
