// Package server exposes the form services over HTTP.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/http/middleware"
	"go.uber.org/zap"

	"sankalp/internal/config"
	"sankalp/internal/domain"
	"sankalp/internal/metrics"
	"sankalp/internal/services"
)

// maxBodyBytes caps the size of a form submission body.
const maxBodyBytes = 64 << 10

// formRoutes lists the collection endpoints. Each path accepts POST to
// submit and GET to list.
var formRoutes = []struct {
	path string
	kind domain.Kind
}{
	{"/api/contact", domain.KindContact},
	{"/api/admissions", domain.KindAdmission},
	{"/api/events/register", domain.KindEventRegistration},
	{"/api/newsletter", domain.KindNewsletter},
	{"/api/reviews", domain.KindReview},
}

// FormPaths returns the collection endpoint paths in mount order.
func FormPaths() []string {
	paths := make([]string, 0, len(formRoutes))
	for _, rt := range formRoutes {
		paths = append(paths, rt.path)
	}
	return paths
}

// New builds the root handler with every route and middleware mounted.
func New(cfg *config.Config, forms *services.FormService, health *services.HealthService, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handlers{
		forms:  forms,
		health: health,
		logger: logger.Named("http"),
	}

	mux := goahttp.NewMuxer()
	for _, rt := range formRoutes {
		mux.Handle(http.MethodPost, rt.path, h.submit(rt.kind))
		mux.Handle(http.MethodGet, rt.path, h.list(rt.kind))
	}
	mux.Handle(http.MethodGet, "/health", h.checkHealth)

	// Route /metrics to Prometheus and everything else to the muxer
	rootHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			promhttp.Handler().ServeHTTP(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})

	routes := append(FormPaths(), "/health")

	// Security -> CORS -> RequestID -> Logging -> Prometheus -> Handler
	var handler http.Handler = metrics.PrometheusMiddleware(routes...)(rootHandler)
	handler = requestLogging(handler, h.logger)
	handler = middleware.PopulateRequestContext()(handler)
	handler = middleware.RequestID()(handler)
	handler = setupCORS(handler, cfg)
	return setupSecurityHeaders(handler, cfg)
}
