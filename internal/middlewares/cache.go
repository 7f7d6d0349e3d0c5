package middlewares

import (
	"net/http"
	"strconv"
	"time"
)

// Cache marks responses cacheable for a day. A member's badge image only
// changes when their identity does, so clients may serve a stale copy while
// revalidating.
func Cache(handler http.Handler) http.Handler {
	maxAge := strconv.Itoa(int((24 * time.Hour).Seconds()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "private, stale-while-revalidate, max-age="+maxAge)
		handler.ServeHTTP(w, r)
	})
}
