package middleware

import "net/http"

var healthy = []byte(`{"status":"healthy"}` + "\n")

// HealthHandler reports liveness only. It never consults the model backend.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(healthy)
}
