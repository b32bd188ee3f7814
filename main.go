package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/hydrantlabs/netintel/clienthint"
	"github.com/hydrantlabs/netintel/config"
	"github.com/hydrantlabs/netintel/intellib"
	"github.com/hydrantlabs/netintel/providers"
)

const version = "0.1.0"

var (
	app = kingpin.New(
		"netintel",
		"Best-effort public IP and geolocation aggregation service")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("NETINTEL_DEBUG").
		Bool()
	configFile = app.Arg("config-path", "Path to the config.").
			File()
)

func init() {
	app.Version(version)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	conf, err := config.Parse(*configFile)
	if err != nil {
		log.Fatal(err.Error())
	}

	if *debug {
		conf.Debug = true
	}

	rootCtx, cancel := makeRootContext()
	defer cancel()

	metrics, err := newPrometheusMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("cannot register metrics: %s", err.Error())
	}

	aggregator, err := intellib.NewAggregator(intellib.AggregatorOpts{
		Logger:          newLogger(conf.Debug),
		Metrics:         metrics,
		ProviderTimeout: conf.ProviderTimeout.Duration,
		OverallTimeout:  conf.OverallTimeout.Duration,
		Concurrency:     conf.Concurrency,
	})
	if err != nil {
		log.Fatalf("cannot create aggregator: %s", err.Error())
	}

	defer aggregator.Shutdown()

	hints, err := clienthint.NewExtractor(conf.TrustedProxies)
	if err != nil {
		log.Fatalf("cannot create hint extractor: %s", err.Error())
	}

	catalog := providers.NewCatalog(makeHTTPClient(conf),
		conf.CacheSize, conf.CacheTTL.Duration)

	srv := &http.Server{
		Addr:    conf.Listen,
		Handler: makeServer(conf, aggregator, catalog, hints),
	}

	go func() {
		<-rootCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		srv.Shutdown(shutdownCtx) // nolint: errcheck
	}()

	log.Debugf("listening on %s", conf.Listen)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err.Error())
	}
}
