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
	"log/slog"

	"m4o.io/tracelog/internal/options"
)

// Handler is an slog.Handler decorator that appends the four correlation
// attributes to every record before delegating to the wrapped handler.
//
// The attributes are appended at the record level; when groups are open
// they are qualified by the wrapped handler accordingly.  Handle performs
// no locking and no I/O of its own.
type Handler struct {
	inner  slog.Handler
	tracer Tracer
	source func() Config
}

var _ slog.Handler = &Handler{}

// NewHandler wraps inner so that every record it handles carries the
// correlation attributes.  This is the opt-in form of injection; Enable
// wires the same decoration onto the default slog logger.
func NewHandler(inner slog.Handler, opts ...Option) *Handler {
	if inner == nil {
		panic("inner handler is nil")
	}
	o := options.ApplyOptions(opts...)

	return &Handler{
		inner:  inner,
		tracer: o.Tracer,
		source: o.Source,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle resolves the correlation values for ctx and appends them to a
// clone of the record before delegating.  The record passed in is never
// retained.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	cfg := h.config()
	c := Resolve(lookupSpan(ctx, tracerFor(cfg, h.tracer)), cfg)

	record = record.Clone()
	record.AddAttrs(
		slog.String(LogKeyEnv, c.Env),
		slog.String(LogKeyVersion, c.Version),
		slog.Uint64(LogKeyTraceID, c.TraceID),
		slog.Uint64(LogKeySpanID, c.SpanID),
	)

	return h.inner.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := h.clone()
	h2.inner = h.inner.WithAttrs(attrs)

	return h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.inner = h.inner.WithGroup(name)

	return h2
}

// Unwrap returns the wrapped handler.
func (h *Handler) Unwrap() slog.Handler {
	return h.inner
}

func (h *Handler) clone() *Handler {
	return &Handler{
		inner:  h.inner,
		tracer: h.tracer,
		source: h.source,
	}
}

func (h *Handler) config() Config {
	if h.source != nil {
		return h.source()
	}

	return Configured()
}
