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
Package tracelog correlates log records with the distributed trace that
produced them.

While enabled, every record passed through the default slog logger carries
four additional attributes, env, version, trace id, and span id, resolved
from the active span and the process configuration.  Records created with no
active trace carry the documented defaults, an empty string or 0, so that
handler and format code can rely on the attributes always being present.
*/
package tracelog

import (
	"context"
)

// Record attribute keys exposed to handlers and formatters.  These are a
// stable contract and must not change.
const (
	// LogKeyEnv is the record key for the resolved deployment environment.
	LogKeyEnv = "tracelog.env"
	// LogKeyVersion is the record key for the resolved application version.
	LogKeyVersion = "tracelog.version"
	// LogKeyTraceID is the record key used to correlate a record with a
	// given trace.
	LogKeyTraceID = "tracelog.trace_id"
	// LogKeySpanID is the record key used to correlate a record with a
	// given span.
	LogKeySpanID = "tracelog.span_id"
)

// Span tag keys consulted during resolution.  These are a stable contract
// and must not change.
const (
	// TagEnv carries a span-scoped deployment environment.
	TagEnv = "env"
	// TagVersion carries a span-scoped application version.
	TagVersion = "version"
	// TagServiceVersion is the alternate version tag, consulted only when
	// TagVersion is absent.
	TagServiceVersion = "service.version"
)

// Correlation holds the four resolved correlation values.  The zero value
// is the documented "no data available" default.
type Correlation struct {
	Env     string
	Version string
	TraceID uint64
	SpanID  uint64
}

// Resolve computes the correlation values for span under the configuration
// snapshot cfg.  A nil span means no trace is active.
//
// Version resolution prefers the span's version tag, then its
// service.version tag, then cfg.Version.  Env resolution prefers the span's
// env tag, then cfg.Env.  An empty value from any source stays the empty
// default.
//
// Identifiers are all-or-nothing: they are emitted only when the span
// carries both a non-zero trace id and a non-zero span id, otherwise both
// are 0.  A half-populated pair would correlate to nothing and mislead.
func Resolve(span Span, cfg Config) Correlation {
	var c Correlation

	c.Version = cfg.Version
	if span != nil {
		if v, ok := span.Tag(TagVersion); ok {
			c.Version = v
		} else if v, ok := span.Tag(TagServiceVersion); ok {
			c.Version = v
		}
	}

	c.Env = cfg.Env
	if span != nil {
		if v, ok := span.Tag(TagEnv); ok {
			c.Env = v
		}
	}

	if span != nil {
		if traceID, spanID := span.TraceID(), span.SpanID(); traceID != 0 && spanID != 0 {
			c.TraceID = traceID
			c.SpanID = spanID
		}
	}

	return c
}

// Correlate resolves the correlation values for ctx using the process-wide
// configuration and its tracer resolution order.  It is the entry point for
// integrations that attach correlation outside the slog pipeline, such as
// the gcp, zap, and zerolog subpackages.
func Correlate(ctx context.Context) Correlation {
	cfg := Configured()

	return Resolve(lookupSpan(ctx, tracerFor(cfg, nil)), cfg)
}
