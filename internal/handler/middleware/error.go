package middleware

import (
	"log/slog"
	"net/http"

	"shiba-faucet/internal/handler/httperr"
	"shiba-faucet/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxStackLines = 12

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Handlers attach unexpected errors before rendering their own
		// 500 response; log them here with the captured stack so the
		// generic body stays opaque to the client.
		if len(c.Errors) > 0 {
			last := c.Errors.Last().Err
			slog.Error("request error",
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", last,
				"stack", errs.ExtractStackLines(last, maxStackLines))
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
