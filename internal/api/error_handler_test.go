package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/classhub/navigation-service/internal/core/domain"
)

func handleErr(err error) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/navigation/routes", nil), rec)
	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"echo error", echo.NewHTTPError(http.StatusUnprocessableEntity, "path is required"), http.StatusUnprocessableEntity, "path is required"},
		{"unknown user type", fmt.Errorf("claim: %w", domain.ErrUnknownUserType), http.StatusBadRequest, "unknown user type"},
		// The table is validated before the server starts; a table error
		// reaching a handler is unexpected.
		{"route table error", domain.ErrInvalidRouteTable, http.StatusInternalServerError, "internal server error"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		rec := handleErr(tc.err)
		if rec.Code != tc.code {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.code, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.body) {
			t.Errorf("%s: unexpected body %s", tc.name, rec.Body.String())
		}
	}
}
