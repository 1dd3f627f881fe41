// Copyright 2024 The original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package otel bridges OpenTelemetry to tracelog.

Span identity comes from the trace.SpanContext carried in the context.
OpenTelemetry span attributes are write-only once set, so span tags are
sourced from the OpenTelemetry baggage instead; baggage entries named
"env", "version", or "service.version" participate in correlation
resolution exactly as span tags do.
*/
package otel

import (
	"context"
	"encoding/binary"

	"go.opentelemetry.io/otel/baggage"
	"go.opentelemetry.io/otel/trace"

	"m4o.io/tracelog"
)

// Tracer returns a tracelog.Tracer backed by the OpenTelemetry span context
// and baggage in the context.  Wire it up with tracelog.SetDefaultTracer or
// the tracelog.WithTracer option.
func Tracer() tracelog.Tracer {
	return bridge{}
}

type bridge struct{}

func (bridge) CurrentSpan(ctx context.Context) tracelog.Span {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}

	return span{sc: sc, bag: baggage.FromContext(ctx)}
}

type span struct {
	sc  trace.SpanContext
	bag baggage.Baggage
}

// TraceID returns the lower 64 bits of the 128-bit OpenTelemetry trace id.
func (s span) TraceID() uint64 {
	traceID := s.sc.TraceID()

	return binary.BigEndian.Uint64(traceID[8:])
}

func (s span) SpanID() uint64 {
	spanID := s.sc.SpanID()

	return binary.BigEndian.Uint64(spanID[:])
}

func (s span) Tag(key string) (string, bool) {
	member := s.bag.Member(key)
	if member.Key() == "" {
		return "", false
	}

	return member.Value(), true
}
