package listener

import (
	"log/slog"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// RequestLogger logs each request with method, path, status, and duration.
func RequestLogger(logger *slog.Logger) httpserver.HandlerFunc {
	log := logger.WithGroup("http")
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		start := time.Now()

		rp.Next()

		log.Debug("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rp.Writer().Status(),
			"duration", time.Since(start))
	}
}
