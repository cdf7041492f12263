package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobs4devs/vacancy-api/internal/core/domain"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHTTPErrorHandler(zerolog.Nop())
	h(err, c)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp["error"]
}

func TestErrorHandler_ValidationEnvelope(t *testing.T) {
	rec := handleError(t, &domain.ValidationError{
		Fields: map[string][]string{"title": {"title is required"}},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Errors["title"]) != 1 || resp.Errors["title"][0] != "title is required" {
		t.Fatalf("violation mapping not returned verbatim: %+v", resp.Errors)
	}
}

func TestErrorHandler_VacancyNotFound_EmptyBody(t *testing.T) {
	rec := handleError(t, domain.ErrVacancyNotFound)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestErrorHandler_WriteFailureMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{domain.ErrNothingSaved, "There was an error saving the record"},
		{domain.ErrNothingUpdated, "There was an error updating the record"},
		{domain.ErrNothingRemoved, "There was an error removing the record"},
	}
	for _, tc := range cases {
		rec := handleError(t, tc.err)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%v: expected 400, got %d", tc.err, rec.Code)
		}
		if got := errorMessage(t, rec); got != tc.want {
			t.Fatalf("%v: expected %q, got %q", tc.err, tc.want, got)
		}
	}
}

func TestErrorHandler_AuthMessages(t *testing.T) {
	rec := handleError(t, domain.ErrUserLockedOut)
	if rec.Code != http.StatusBadRequest || errorMessage(t, rec) != "User blocked" {
		t.Fatalf("unexpected locked response: %d %s", rec.Code, rec.Body.String())
	}

	rec = handleError(t, domain.ErrInvalidCredentials)
	if rec.Code != http.StatusBadRequest || errorMessage(t, rec) != "Invalid User or Password" {
		t.Fatalf("unexpected credentials response: %d %s", rec.Code, rec.Body.String())
	}

	rec = handleError(t, domain.ErrUserExists)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for existing user, got %d", rec.Code)
	}
}

func TestErrorHandler_EchoErrorPassthrough(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := errorMessage(t, rec); got != "invalid token" {
		t.Fatalf("expected message passthrough, got %q", got)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec := handleError(t, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := errorMessage(t, rec); got != "internal server error" {
		t.Fatalf("internal detail must not leak, got %q", got)
	}
}
