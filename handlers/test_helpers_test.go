package handlers

import (
	"io"
	"law_console_go/services"
	"law_console_go/store"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func setupTestAPI(t *testing.T) *API {
	bus := store.NewBus()
	st, err := store.New(t.TempDir(), bus)
	assert.NoError(t, err)

	queries := services.NewQueryService(st, bus)
	t.Cleanup(queries.Close)

	return NewAPI(
		queries,
		services.NewCaseService(st),
		services.NewClientService(st),
		services.NewTaskService(st),
	)
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}
