// Package urlmetrics counts URL operations performed by the CLI and the MCP
// server and exposes them in the Prometheus formats.
package urlmetrics

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"github.com/alwinb/whatwg-url/whatwgurl"
)

// OutcomeOK is the outcome label of a successful operation. Failures use
// the error kind from whatwgurl.ErrorKind.
const OutcomeOK = "ok"

// OutcomeUnchanged is the outcome label of a setter that left the URL as it
// was.
const OutcomeUnchanged = "unchanged"

var registry = prometheus.NewRegistry()

var (
	parseTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "whatwg_url_parse_total",
			Help: "Total number of URL parse operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	parseDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "whatwg_url_parse_duration_seconds",
			Help:    "Duration of URL parse operations in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
		[]string{"operation"},
	)

	setterTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "whatwg_url_setter_total",
			Help: "Total number of URL setter calls by outcome",
		},
		[]string{"setter", "outcome"},
	)
)

// Outcome returns the outcome label for err.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	return whatwgurl.ErrorKind(err)
}

// RecordParse records one parse operation such as "parse", "resolve" or
// "host".
func RecordParse(operation string, elapsed time.Duration, err error) {
	parseTotal.WithLabelValues(operation, Outcome(err)).Inc()
	parseDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// RecordSetter records one setter call. changed reports whether the href
// differs afterwards.
func RecordSetter(setter string, changed bool) {
	outcome := OutcomeOK
	if !changed {
		outcome = OutcomeUnchanged
	}
	setterTotal.WithLabelValues(setter, outcome).Inc()
}

// Dump writes every metric in the text exposition format.
func Dump(w io.Writer) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Handler returns an HTTP handler serving the metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// CreateMetricsServer creates an HTTP server with /metrics and /health
// endpoints listening on addr.
func CreateMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
