package router

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/repline-dev/repline/internal/middleware"
	"github.com/repline-dev/repline/internal/middleware/metrics"
	rl "github.com/repline-dev/repline/internal/middleware/ratelimiter"
	"github.com/repline-dev/repline/internal/setup"
)

// New creates and configures a new mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	if origins := deps.Config.Public.CorsAllowedOrigins; len(origins) > 0 {
		r.Use(handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		))
	}

	r.Use(middleware.RequestId)
	r.Use(metrics.Middleware)

	h := deps.Handler
	authMw := deps.AuthMiddleware

	// Probes and metrics stay outside auth so orchestration can reach them.
	r.HandleFunc("/healthz", h.Health).Methods("GET")
	r.HandleFunc("/readyz", h.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Admin routes
	admin := v1.NewRoute().Subrouter()
	admin.Use(authMw.AdminOnly())
	admin.HandleFunc("/submissions/{submission}", h.DeleteSubmission).Methods("DELETE")

	// Logged-in user routes
	loggedIn := v1.NewRoute().Subrouter()
	loggedIn.Use(authMw.NeedAuth())

	loggedIn.HandleFunc("/submissions", h.ListSubmissions).Methods("GET")
	loggedIn.HandleFunc("/submissions/unread-count", h.GetUnreadCounts).Methods("GET")
	loggedIn.HandleFunc("/submissions/{submission}", h.GetSubmission).Methods("GET")
	loggedIn.HandleFunc("/submissions/{submission}/messages", h.ListMessages).Methods("GET")
	loggedIn.HandleFunc("/messages/{message}/read", h.MarkRead).Methods("PUT")

	// One shared token bucket throttles both write endpoints per user.
	cfg := &deps.Config.Public
	writeLimit := middleware.RateLimit(
		rl.NewUserRateLimiter(cfg.WriteRatePerSec, cfg.WriteBurst, 1*time.Hour),
		middleware.GetUserIDFromContext,
	)
	loggedIn.Handle("/programs/{program}/submissions",
		writeLimit(http.HandlerFunc(h.CreateSubmission))).Methods("POST")
	loggedIn.Handle("/submissions/{submission}/messages",
		writeLimit(http.HandlerFunc(h.CreateMessage))).Methods("POST")

	return r
}
