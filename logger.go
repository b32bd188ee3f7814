package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/hydrantlabs/netintel/intellib"
)

type logger struct {
	lookupLog    zerolog.Logger
	aggregateLog zerolog.Logger
}

func (l *logger) LookupError(name string, err error) {
	l.lookupLog.Error().Str("provider", name).Err(err).Msg("")
}

func (l *logger) AggregationDone(success bool, attempted, failed int, elapsed time.Duration) {
	l.aggregateLog.Info().
		Bool("success", success).
		Int("attempted", attempted).
		Int("failed", failed).
		Dur("elapsed", elapsed).
		Msg("")
}

func newLogger(debug bool) intellib.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	base := zerolog.New(os.Stderr).Level(level)

	return &logger{
		lookupLog:    base.With().Timestamp().Str("event_name", "lookup").Logger(),
		aggregateLog: base.With().Timestamp().Str("event_name", "aggregate").Logger(),
	}
}
