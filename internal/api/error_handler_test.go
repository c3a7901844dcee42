package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/komfort-city/site-backend/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"empty update", domain.ErrEmptyUpdate, http.StatusBadRequest},
		{"file too large", domain.ErrFileTooLarge, http.StatusBadRequest},
		{"file type", domain.ErrFileTypeNotAllowed, http.StatusBadRequest},
		{"too many files", domain.ErrTooManyFiles, http.StatusBadRequest},
		{"wrong password", domain.ErrWrongPassword, http.StatusBadRequest},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"account exists", domain.ErrAccountExists, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := render(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if msg == "" {
				t.Fatalf("expected a message")
			}
		})
	}
}

func TestErrorHandler_InvalidCredentialsMessageIsUniform(t *testing.T) {
	_, msg := render(t, domain.ErrInvalidCredentials)
	if msg != "incorrect username or password" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_WrappedErrors(t *testing.T) {
	code, _ := render(t, errors.Join(errors.New("context"), domain.ErrNotFound))
	if code != http.StatusNotFound {
		t.Fatalf("wrapped sentinel not recognised: %d", code)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, msg := render(t, errors.New("mongo exploded: credentials=hunter2"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if code != http.StatusTeapot || msg != "short and stout" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}
