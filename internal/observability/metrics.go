// Package observability holds Prometheus collectors shared by storage and services.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	storageRetries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "habitlog",
		Subsystem: "kvstore",
		Name:      "retries_total",
		Help:      "Number of key-value operations retried after a failure, labeled by operation.",
	}, []string{"op"})

	storageFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "habitlog",
		Subsystem: "kvstore",
		Name:      "failures_total",
		Help:      "Number of key-value operations that failed after retrying, labeled by operation.",
	}, []string{"op"})

	habitMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "habitlog",
		Subsystem: "habits",
		Name:      "mutations_total",
		Help:      "Number of applied habit mutations, labeled by operation.",
	}, []string{"op"})

	dayRollovers = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "habitlog",
		Subsystem: "habits",
		Name:      "day_rollovers_total",
		Help:      "Number of reconciliations that reset completion flags for a new day.",
	})

	historyEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "habitlog",
		Subsystem: "history",
		Name:      "events_appended_total",
		Help:      "Number of completion events appended to history, labeled by completed flag.",
	}, []string{"completed"})

	httpRequests = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "habitlog",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests, labeled by method, route pattern and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(storageRetries, storageFailures, habitMutations, dayRollovers, historyEvents, httpRequests)
}

func RecordStorageRetry(op string) {
	storageRetries.WithLabelValues(op).Inc()
}

func RecordStorageFailure(op string) {
	storageFailures.WithLabelValues(op).Inc()
}

func RecordMutation(op string) {
	habitMutations.WithLabelValues(op).Inc()
}

func RecordRollover() {
	dayRollovers.Inc()
}

func RecordHistoryEvent(completed bool) {
	historyEvents.WithLabelValues(strconv.FormatBool(completed)).Inc()
}

func RecordRequest(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
