package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hydrantlabs/netintel/config"
	"github.com/hydrantlabs/netintel/intellib"
)

// slack added on top of the aggregation deadline before the router
// kills the request wholesale.
const requestTimeoutSlack = 2 * time.Second

func makeServer(conf *config.Config,
	aggregator *intellib.Aggregator,
	catalog intellib.ProviderCatalog,
	hints intellib.HintExtractor) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.StripSlashes)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(conf.OverallTimeout.Duration + requestTimeoutSlack))

	apiHandler := intellib.NewHTTPHandler(aggregator, catalog, hints)

	router.Mount("/api", apiHandler)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok")) // nolint: errcheck
	})

	metricsHandler := http.Handler(promhttp.Handler())
	if conf.AuthUser != "" {
		metricsHandler = &basicAuthMiddleware{
			handler:  metricsHandler,
			user:     []byte(conf.AuthUser),
			password: []byte(conf.AuthPassword),
		}
	}

	router.Method(http.MethodGet, "/metrics", metricsHandler)

	return router
}
