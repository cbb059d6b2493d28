package dedupe

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// FromContext builds Attributes from the span context recorded in ctx,
// using the trace ID as TraceID and the span ID as RequestID. Callers
// deriving keys inside traced request handling get stable auxiliary
// attributes without plumbing IDs by hand.
//
// Returns zero Attributes when ctx carries no valid span context.
func FromContext(ctx context.Context) Attributes {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return Attributes{}
	}
	return Attributes{
		TraceID:   sc.TraceID().String(),
		RequestID: sc.SpanID().String(),
	}
}

// NewFromContext derives a Key of the given kind from the span context
// in ctx plus the payload data. Equivalent to New(kind, attrs) with
// FromContext attributes and Data set.
func NewFromContext(ctx context.Context, kind Kind, data []byte) Key {
	attrs := FromContext(ctx)
	attrs.Data = data
	return New(kind, attrs)
}
