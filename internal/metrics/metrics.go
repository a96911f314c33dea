// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics declares the Prometheus collectors of the lead-pulse server
// and small helpers to record them. Collectors are registered with the
// default registry on package initialization and exposed by [Handler].
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "leadpulse"

// Label values shared by the recording helpers.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	OperationRegister = "register"
	OperationLogin    = "login"

	ChannelWhatsApp = "whatsapp"

	// LabelOther replaces a label value outside the known set.
	LabelOther = "other"
)

// captureSources are the lead sources reported under their own name. The
// capture endpoint is public, so any other source is counted as LabelOther.
var captureSources = map[string]struct{}{
	"website":      {},
	"landing-page": {},
	"facebook":     {},
	"instagram":    {},
	"google":       {},
	"linkedin":     {},
	"referral":     {},
	"email":        {},
	"whatsapp":     {},
}

var httpMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodOptions: {},
}

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	authAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Total number of registration and login attempts",
		},
		[]string{"operation", "result"},
	)

	leadsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_captured_total",
			Help:      "Total number of leads received through the public capture endpoint",
		},
		[]string{"source"},
	)

	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Total number of outbound notifications",
		},
		[]string{"channel", "result"},
	)

	activeSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of stored sessions after the last eviction pass",
		},
	)
)

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest records one served request. route should be the
// matched route pattern, not the raw path. Non-standard methods are
// recorded as LabelOther.
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	method = bounded(method, httpMethods)
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordAuthAttempt(operation string, success bool) {
	authAttempts.WithLabelValues(operation, result(success)).Inc()
}

// RecordLeadCaptured counts a captured lead. Sources are matched
// case-insensitively against captureSources.
func RecordLeadCaptured(source string) {
	leadsCaptured.WithLabelValues(bounded(strings.ToLower(source), captureSources)).Inc()
}

func RecordNotification(channel string, success bool) {
	notifications.WithLabelValues(channel, result(success)).Inc()
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

func bounded(value string, known map[string]struct{}) string {
	if _, ok := known[value]; ok {
		return value
	}
	return LabelOther
}

func result(success bool) string {
	if success {
		return ResultSuccess
	}
	return ResultFailure
}
