package middleware

import "net/http"

// SecureHeaders adds standard hardening headers. The app handles
// self-reported mental health data, so embedding and sniffing are locked
// down even though nothing is persisted.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}
