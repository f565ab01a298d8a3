package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-account-api/internal/infrastructure/metrics"
)

const (
	maxLogBodySize = 1 << 12 // 4 KB
	masked         = "***"
)

var sensitiveFields = map[string]struct{}{
	"password": {},
	"token":    {},
}

func RequestLogGin(logger *zap.Logger, mCounter *prometheus.CounterVec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if c.Request.Body != nil {
			var buf bytes.Buffer
			_, _ = io.Copy(&buf, io.LimitReader(c.Request.Body, maxLogBodySize))
			body = MaskBody(buf.Bytes())
			// the handler still sees the full body
			c.Request.Body = readCloser{
				Reader: io.MultiReader(bytes.NewReader(buf.Bytes()), c.Request.Body),
				Closer: c.Request.Body,
			}
		}

		c.Next()

		if mCounter != nil {
			mCounter.WithLabelValues(metrics.AppRequests).Inc()
		}

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("body", body),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

type readCloser struct {
	io.Reader
	io.Closer
}

// MaskBody hides credential fields of a JSON object. Anything that is not a
// JSON object is replaced entirely.
func MaskBody(b []byte) string {
	if len(bytes.TrimSpace(b)) == 0 {
		return ""
	}

	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return "<non-json body omitted>"
	}
	for k := range obj {
		if _, ok := sensitiveFields[strings.ToLower(k)]; ok {
			obj[k] = masked
		}
	}

	out, err := json.Marshal(obj)
	if err != nil {
		return "<body omitted>"
	}
	return string(out)
}
