// Package handler binds contract operations to HTTP routes and dispatches
// requests through the verification pipeline and example selector.
package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/specmock-project/specmock-go/internal/exchange"
	"github.com/specmock-project/specmock-go/internal/metrics"
	"github.com/specmock-project/specmock-go/internal/respond"
	"github.com/specmock-project/specmock-go/internal/spec"
	"github.com/specmock-project/specmock-go/internal/verify"
	"github.com/specmock-project/specmock-go/pkg/logger"
)

// ExampleNameHeader selects a named example explicitly, for both success and
// failure responses.
const ExampleNameHeader = "X-Mock-Response-Example"

// BuildRouter walks the contract once and registers one route per operation.
// The returned mux is never mutated afterwards; concurrent readers need no
// synchronisation.
func BuildRouter(contract *spec.Contract) *http.ServeMux {
	mux := http.NewServeMux()
	for i := range contract.Operations {
		op := &contract.Operations[i]
		pattern := fmt.Sprintf("%s %s", op.Method, op.Path)
		mux.Handle(pattern, &dispatcher{contract: contract, op: op})
		logger.Debugf("registered route %s", pattern)
	}
	return mux
}

// dispatcher is the per-operation entry point: verify, then select the body
// for the resulting status.
type dispatcher struct {
	contract *spec.Contract
	op       *spec.Operation
}

func (d *dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	logger.Debugf("[%s] dispatching %s %s to operation %s", requestID, r.Method, r.URL.Path, d.op.Name)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Errorf("[%s] failed to read request body: %v", requestID, err)
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	req := exchange.NewRequestContext(r, body)
	rs := exchange.NewResponseState()
	d.dispatch(requestID, req, rs)
	rs.WriteToResponseWriter(w)

	metrics.RequestsTotal.WithLabelValues(d.op.Method, d.op.Path, strconv.Itoa(rs.StatusCode)).Inc()
}

func (d *dispatcher) dispatch(requestID string, req *exchange.RequestContext, rs *exchange.ResponseState) {
	failure, err := verify.Request(d.contract, d.op, req)
	if err != nil {
		d.failConfiguration(requestID, rs, err)
		return
	}

	status := http.StatusOK
	if failure != nil {
		status = failure.StatusCode
		metrics.VerificationFailures.WithLabelValues(strconv.Itoa(status)).Inc()
		logger.Debugf("[%s] verification failed for %s with status %d", requestID, d.op.Name, status)
	}

	content, err := respond.Select(d.op, status, req.Header(ExampleNameHeader))
	if err != nil {
		d.failConfiguration(requestID, rs, err)
		return
	}

	rs.Headers["Content-Type"] = "application/json"
	if failure != nil {
		rs.Halt(status, content)
	} else {
		rs.Respond(content)
	}
}

// failConfiguration surfaces a contract configuration error: logged for the
// operator and returned as a server error, never downgraded to a client
// verification failure.
func (d *dispatcher) failConfiguration(requestID string, rs *exchange.ResponseState, err error) {
	logger.Errorf("[%s] contract configuration error for %s: %v", requestID, d.op.Name, err)
	metrics.ContractErrors.Inc()
	rs.Headers["Content-Type"] = "text/plain"
	rs.Halt(http.StatusInternalServerError, "mock configuration error")
}
