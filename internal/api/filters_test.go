package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rm-hull/camfilter/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, export.JPEG)
	return r
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFiltersRoute(t *testing.T) {
	w := get(t, newRouter(), "/v1/filters")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Filters []FilterInfo `json:"filters"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Filters, 6)
	assert.Equal(t, "normal", body.Filters[0].Name)
	assert.Equal(t, "", body.Filters[0].CSS)
	assert.Equal(t, "vintage", body.Filters[1].Name)
	assert.Equal(t, "sepia(0.5) contrast(1.2) brightness(0.9)", body.Filters[1].CSS)
}

func TestFilterRoute(t *testing.T) {
	r := newRouter()

	w := get(t, r, "/v1/filters/disco")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"disco","css":"hue-rotate(90deg) saturate(2)"}`, w.Body.String())

	w = get(t, r, "/v1/filters/sparkle")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown filter kind")
}

func TestShareRoute(t *testing.T) {
	w := get(t, newRouter(), "/v1/share")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"filename": "ai-camera.jpg",
		"mimeType": "image/jpeg",
		"title": "AI Camera Photo",
		"text": "Check out my AI-enhanced photo!"
	}`, w.Body.String())
}

func TestGridRoute(t *testing.T) {
	w := get(t, newRouter(), "/v1/grid")
	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Contains(t, w.Body.String(), "coming soon")
}
