package middleware

import "net/http"

// NoStore disables client caching on every response. The session is
// in-memory and derived state changes on every mutation, so stale reads
// from a cache would contradict the recompute-on-read contract.
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		next.ServeHTTP(w, r)
	})
}
