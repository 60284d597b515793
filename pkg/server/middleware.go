package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrToKa/traylay/pkg/observability"
)

// hooksMiddleware reports request lifecycle events to the registered
// HTTP hooks.
func hooksMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		observability.HTTP().OnRequest(ctx, r.Method, r.Host, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		observability.HTTP().OnResponse(ctx, r.Method, r.Host, r.URL.Path,
			ww.Status(), time.Since(start))
	})
}
