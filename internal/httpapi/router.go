package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const defaultRequestTimeout = 60 * time.Second

// RouterDeps defines router construction dependencies.
type RouterDeps struct {
	GreetingHandler http.HandlerFunc
	HealthHandler   http.HandlerFunc
	MetricsHandler  http.Handler
	RequestID       func(http.Handler) http.Handler
	AccessLog       func(http.Handler) http.Handler
	Metrics         func(http.Handler) http.Handler
	AllowedOrigins  []string
	RequestTimeout  time.Duration
}

// NewRouter wires HTTP routes. Unknown paths and methods fall through to chi's 404 and 405.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	if deps.RequestID != nil {
		r.Use(deps.RequestID)
	}
	r.Use(chimiddleware.RealIP)
	if deps.AccessLog != nil {
		r.Use(deps.AccessLog)
	}
	if deps.Metrics != nil {
		r.Use(deps.Metrics)
	}
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.GetHead)

	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	r.Use(chimiddleware.Timeout(timeout))

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/", deps.GreetingHandler)

	if deps.HealthHandler != nil {
		r.Get("/healthz", deps.HealthHandler)
	}
	if deps.MetricsHandler != nil {
		r.Method("GET", "/metrics", deps.MetricsHandler)
	}

	return r
}
