package graphql

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values recorded by InstrumentedClient.
const (
	OutcomeOK             = "ok"
	OutcomeGraphQLError   = "graphql_error"
	OutcomeTransportError = "transport_error"
)

// InstrumentedClient wraps a Client and records request counts and latency.
type InstrumentedClient struct {
	next     Client
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ Client = (*InstrumentedClient)(nil)

// NewInstrumentedClient registers its collectors with reg and returns a
// Client that forwards to next.
func NewInstrumentedClient(next Client, reg prometheus.Registerer) (*InstrumentedClient, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jianshu",
		Subsystem: "graphql",
		Name:      "requests_total",
		Help:      "GraphQL operations sent, by operation, kind and outcome.",
	}, []string{"operation", "kind", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "jianshu",
		Subsystem: "graphql",
		Name:      "request_duration_seconds",
		Help:      "GraphQL operation latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "kind"})

	if err := reg.Register(requests); err != nil {
		return nil, err
	}
	if err := reg.Register(duration); err != nil {
		reg.Unregister(requests)
		return nil, err
	}

	return &InstrumentedClient{next: next, requests: requests, duration: duration}, nil
}

// Execute forwards req and records the outcome.
func (c *InstrumentedClient) Execute(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	resp, err := c.next.Execute(ctx, req)

	var name, kind string
	if req != nil {
		name, kind = req.OperationName, string(req.Kind)
	}
	c.duration.WithLabelValues(name, kind).Observe(time.Since(start).Seconds())

	outcome := OutcomeOK
	switch {
	case err != nil:
		outcome = OutcomeTransportError
	case resp != nil && len(resp.Errors) > 0:
		outcome = OutcomeGraphQLError
	}
	c.requests.WithLabelValues(name, kind, outcome).Inc()

	return resp, err
}
