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
Package mocktracer provides an in-memory tracelog.Tracer for tests and
local development.  Spans travel in the context, so the tracer itself is
stateless and safe to share.
*/
package mocktracer

import (
	"context"
	"sync"

	"m4o.io/tracelog"
)

// Tracer reports the span carried by the context, if any.
type Tracer struct{}

var _ tracelog.Tracer = &Tracer{}

// New returns a mock tracer.
func New() *Tracer {
	return &Tracer{}
}

func (*Tracer) CurrentSpan(ctx context.Context) tracelog.Span {
	span, ok := ctx.Value(spanKey{}).(*Span)
	if !ok || span == nil {
		return nil
	}

	return span
}

// Span is a mock span with fixed identifiers and a mutable tag mapping.
type Span struct {
	traceID uint64
	spanID  uint64

	mu   sync.RWMutex
	tags map[string]string
}

var _ tracelog.Span = &Span{}

// NewSpan returns a span with the given identifiers and no tags.
func NewSpan(traceID, spanID uint64) *Span {
	return &Span{
		traceID: traceID,
		spanID:  spanID,
		tags:    make(map[string]string),
	}
}

func (s *Span) TraceID() uint64 { return s.traceID }

func (s *Span) SpanID() uint64 { return s.spanID }

func (s *Span) Tag(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.tags[key]

	return val, ok
}

// SetTag sets a tag on the span, returning the span for chaining.
func (s *Span) SetTag(key, value string) *Span {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tags[key] = value

	return s
}

type spanKey struct{}

// ContextWithSpan returns a context carrying span as the current span.
func ContextWithSpan(ctx context.Context, span *Span) context.Context {
	return context.WithValue(ctx, spanKey{}, span)
}
