//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shiba-faucet/internal/handler/httperr"
	"shiba-faucet/internal/handler/middleware"
	"shiba-faucet/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("logs attached errors with their stack", func(t *testing.T) {
		var buf bytes.Buffer
		prev := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
		t.Cleanup(func() { slog.SetDefault(prev) })

		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/boom", func(c *gin.Context) {
			_ = c.Error(errs.Wrap(errs.New("db down"), "query failed"))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		})

		rec := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		out := buf.String()
		assert.Contains(t, out, "request error")
		assert.Contains(t, out, "query failed")
		assert.Contains(t, out, "stack")
	})

	t.Run("renders public errors from the context meta", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/meta", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusConflict}
			resp.Error.Message = "already finalized"
			_ = c.Error(errs.New("conflict")).SetType(gin.ErrorTypePublic).SetMeta(resp)
		})

		rec := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/meta", nil)
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "already finalized")
	})
}
