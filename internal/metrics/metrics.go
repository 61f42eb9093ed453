// Package metrics provides Prometheus instrumentation for the mock server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts dispatched requests by operation and status code.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "specmock_requests_total",
			Help: "Total requests dispatched to contract operations",
		},
		[]string{"method", "path", "status"},
	)

	// VerificationFailures counts client-visible verification failures by check.
	VerificationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "specmock_verification_failures_total",
			Help: "Total request verification failures",
		},
		[]string{"status"},
	)

	// ContractErrors counts requests that hit an incomplete or inconsistent
	// part of the contract.
	ContractErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "specmock_contract_errors_total",
			Help: "Total requests failed by contract configuration errors",
		},
	)

	// ContractReloads counts contract reload attempts by outcome.
	ContractReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "specmock_contract_reloads_total",
			Help: "Total contract reload attempts",
		},
		[]string{"outcome"},
	)
)

// Init registers all metric collectors with the default Prometheus registry.
// Must be called once at startup before handling requests.
func Init() {
	prometheus.MustRegister(
		RequestsTotal,
		VerificationFailures,
		ContractErrors,
		ContractReloads,
	)
}

// Handler returns the HTTP handler exposing the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
