package main

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"syscall"

	"github.com/hydrantlabs/netintel/config"
	"github.com/hydrantlabs/netintel/intellib"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeHTTPClient(conf *config.Config) intellib.HTTPClient {
	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}

	httpClient := &http.Client{
		Jar: jar,
	}

	userAgent := conf.UserAgent
	if userAgent == "" {
		userAgent = "netintel/" + version
	}

	return intellib.NewHTTPClient(httpClient,
		userAgent,
		conf.RateLimitInterval.Duration,
		conf.RateLimitBurst,
		conf.CircuitBreakerOpenThreshold,
		conf.CircuitBreakerHalfOpen.Duration,
		conf.CircuitBreakerResetFailures.Duration)
}
