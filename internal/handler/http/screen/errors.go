package screen

import (
	"errors"
	"log/slog"
	"net/http"

	"portfolio-dashboard/internal/domain/entity"
	"portfolio-dashboard/internal/handler/http/respond"
	"portfolio-dashboard/internal/infra/restapi"
	"portfolio-dashboard/internal/observability/logging"
	"portfolio-dashboard/internal/usecase/resource"
)

// errorStatus maps a use case failure onto the status of the page that
// reports it.
func errorStatus(err error) int {
	if errors.Is(err, resource.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, entity.ErrValidationFailed) {
		return http.StatusUnprocessableEntity
	}
	var apiErr *restapi.Error
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}
	switch apiErr.Kind {
	case restapi.KindUnauthenticated:
		return http.StatusUnauthorized
	case restapi.KindNotFound:
		return http.StatusNotFound
	case restapi.KindValidation, restapi.KindRemote:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// logFailure records an upstream or validation failure at a level that
// matches its cause.
func logFailure(r *http.Request, op string, err error) {
	logger := logging.FromContext(r.Context())
	level := slog.LevelWarn
	if restapi.IsKind(err, restapi.KindNetwork) {
		level = slog.LevelError
	}
	if errors.Is(err, entity.ErrValidationFailed) {
		level = slog.LevelDebug
	}
	logger.Log(r.Context(), level, op+" failed",
		slog.String("path", r.URL.Path),
		slog.String("error", respond.SanitizeError(err)))
}
