// Package metrics emits the SDK's standard metric shapes onto a statsd.Sink.
package metrics

import (
	"strconv"
	"time"

	obserrors "github.com/hypernetlabs/galileo-go/internal/observability/errors"
	"github.com/hypernetlabs/galileo-go/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metric names emitted per backend call.
const (
	MetricBackendRequest  = "backend.request"
	MetricBackendDuration = "backend.duration"
)

// RequestMetric captures the outcome of one backend call.
type RequestMetric struct {
	Operation string
	Method    string
	Status    int // zero when no response was received
	Duration  time.Duration
	Err       error
}

// EmitBackendRequest emits a request counter and, when a duration is known, a timing.
func EmitBackendRequest(sink statsd.Sink, in RequestMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"operation":    in.Operation,
		"method":       in.Method,
		"status_class": StatusClass(in.Status),
		"result":       ResultSuccess,
	}
	if in.Err != nil {
		tags["result"] = ResultError
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count(MetricBackendRequest, 1, tags)

	if in.Duration > 0 {
		sink.Timing(MetricBackendDuration, in.Duration, CloneTags(tags))
	}
}

// StatusClass buckets an HTTP status into "2xx".."5xx", or "none" when no response arrived.
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "none"
	}
	return strconv.Itoa(status/100) + "xx"
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
