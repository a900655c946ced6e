package loggingmw

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marqspnosa/shopwise/internal/logging"
)

func newEcho(buf *bytes.Buffer) *echo.Echo {
	e := echo.New()
	e.Use(RequestLogger(slog.New(slog.NewJSONHandler(buf, nil))))
	return e
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var out map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &out))
	return out
}

func TestRequestLogger_InstallsContextLogger(t *testing.T) {
	var buf bytes.Buffer
	e := newEcho(&buf)
	e.GET("/ping/:id", func(c echo.Context) error {
		logging.FromContext(c.Request().Context()).Info("inside")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping/7", nil)
	req.Header.Set(echo.HeaderXRequestID, "rid-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"msg":"inside"`)

	line := lastLine(t, &buf)
	assert.Equal(t, "request completed", line["msg"])
	assert.Equal(t, "/ping/:id", line["path"])
	assert.Equal(t, "rid-1", line["request_id"])
	assert.Equal(t, float64(200), line["status"])
}

func TestRequestLogger_RendersErrors(t *testing.T) {
	var buf bytes.Buffer
	e := newEcho(&buf)
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })
	e.GET("/teapot", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "short and stout") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	line := lastLine(t, &buf)
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "boom", line["error"])

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "WARN", lastLine(t, &buf)["level"])
}
