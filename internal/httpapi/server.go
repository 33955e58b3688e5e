package httpapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter регистрирует маршруты API, /healthz и /metrics
func NewRouter(h *AmortizationHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/amortization", h.Calculate)
	mux.HandleFunc("GET /api/v1/amortization.csv", h.DownloadCSV)
	mux.HandleFunc("GET /api/v1/amortization/charts", h.Charts)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

// NewServer создает http.Server с таймаутами
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
