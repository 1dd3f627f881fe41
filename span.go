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

package tracelog

import (
	"context"
	"sync/atomic"

	"m4o.io/tracelog/internal/options"
)

// Span is a read-only view of a traced unit of work.  A nil Span means no
// trace is active.
type Span = options.Span

// Tracer surfaces the span active in a context.  Implementations must be
// safe for concurrent use; CurrentSpan runs on every log call while
// injection is enabled.
type Tracer = options.Tracer

type noopTracer struct{}

func (noopTracer) CurrentSpan(context.Context) Span { return nil }

// NoopTracer is a Tracer that always reports no active span.  It is the
// initial process default tracer.
var NoopTracer Tracer = noopTracer{}

type tracerCell struct {
	tracer Tracer
}

var defaultTracer atomic.Pointer[tracerCell]

func init() {
	defaultTracer.Store(&tracerCell{tracer: NoopTracer})
}

// SetDefaultTracer replaces the process default tracer, the tracer
// consulted when neither the configuration nor the handler carries an
// override.  Passing nil restores the no-op tracer.
func SetDefaultTracer(tracer Tracer) {
	if tracer == nil {
		tracer = NoopTracer
	}

	defaultTracer.Store(&tracerCell{tracer: tracer})
}

// DefaultTracer returns the process default tracer.
func DefaultTracer() Tracer {
	return defaultTracer.Load().tracer
}

// tracerFor picks the tracer to consult for the current span: the
// configuration override, then the explicitly supplied tracer, then the
// process default.
func tracerFor(cfg Config, explicit Tracer) Tracer {
	if cfg.Tracer != nil {
		return cfg.Tracer
	}
	if explicit != nil {
		return explicit
	}

	return DefaultTracer()
}

// lookupSpan asks tracer for the current span, treating a panicking tracer
// as having none.  Record creation must never fail because of
// instrumentation.
func lookupSpan(ctx context.Context, tracer Tracer) (span Span) {
	defer func() {
		if recover() != nil {
			span = nil
		}
	}()

	return tracer.CurrentSpan(ctx)
}
