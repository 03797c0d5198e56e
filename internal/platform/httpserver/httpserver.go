package httpserver

import (
	"net/http"
	"time"
)

// New builds the API server. Scan submissions carry base64 photos, so the
// write timeout is generous while header reads stay tight.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
