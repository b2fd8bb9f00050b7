package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"WellnessHub/apierror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, fn func(c *gin.Context) error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/x", Handle(fn))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	var body map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestErrorHandlerTypedError(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) error {
		return apierror.Conflict("duplicate")
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "duplicate", body["message"])
	assert.Equal(t, false, body["success"])
	assert.Equal(t, []any{}, body["errors"])
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestErrorHandlerWrappedTypedError(t *testing.T) {
	w, _ := serve(t, func(c *gin.Context) error {
		return errors.Join(errors.New("context"), apierror.NotFound("missing"))
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestErrorHandlerHidesUntypedError(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) error {
		return errors.New("mongo: connection refused")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, body["message"], "mongo")
}

func TestHandleSuccessPassesThrough(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) error {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return nil
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["ok"])
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
