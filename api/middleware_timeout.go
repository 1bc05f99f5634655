package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// TimeoutMiddleware answers 503 with a JSON error when a handler runs longer
// than timeout. The handler's context is cancelled at the deadline. It does
// not support websocket upgrades; mount it on request/response routes only.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	b, _ := json.Marshal(map[string]string{
		"error":   "Request timeout",
		"message": "The request took too long to process",
	})
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, string(b))
	}
}
