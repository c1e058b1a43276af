package httpserver

import "net/http"

// HealthCheckHandler returns a liveness probe handler. The service keeps no
// local state, so liveness is the only meaningful probe; readiness of the
// identity provider is its own concern.
func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ALIVE"))
	}
}
