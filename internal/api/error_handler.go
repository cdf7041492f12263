package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobs4devs/vacancy-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for single-message errors.
type errorResponse struct {
	Error string `json:"error"`
}

// validationResponse carries the field→messages mapping produced by the
// request validator, returned verbatim to the caller.
type validationResponse struct {
	Errors map[string][]string `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as the field-keyed 400 envelope.
//   - Maps known domain errors to their documented status codes and messages.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, validationResponse{Errors: ve.Fields})
			return
		}

		// Not-found renders with an empty body.
		if errors.Is(err, domain.ErrVacancyNotFound) {
			_ = c.NoContent(http.StatusNotFound)
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic codes. A write that touched zero
	// records is deliberately indistinguishable from any other save failure.
	switch {
	case errors.Is(err, domain.ErrNothingSaved):
		return http.StatusBadRequest, "There was an error saving the record"
	case errors.Is(err, domain.ErrNothingUpdated):
		return http.StatusBadRequest, "There was an error updating the record"
	case errors.Is(err, domain.ErrNothingRemoved):
		return http.StatusBadRequest, "There was an error removing the record"
	case errors.Is(err, domain.ErrUserLockedOut):
		return http.StatusBadRequest, "User blocked"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid User or Password"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "There was an error creating the user"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, "Invalid User or Password"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
