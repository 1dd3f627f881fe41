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

package tracelog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/tracelog"
	"m4o.io/tracelog/mocktracer"
)

// staticTracer always reports the same span, which makes tracer resolution
// order observable in tests.
type staticTracer struct {
	span tracelog.Span
}

func (t staticTracer) CurrentSpan(context.Context) tracelog.Span { return t.span }

// panickyTracer stands in for a collaborator that fails to answer.
type panickyTracer struct{}

func (panickyTracer) CurrentSpan(context.Context) tracelog.Span { panic("ouch") }

func logged(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	return got
}

func TestHandler_augmentsWithSpan(t *testing.T) {
	var buf bytes.Buffer
	h := tracelog.NewHandler(slog.NewJSONHandler(&buf, nil),
		tracelog.WithTracer(mocktracer.New()),
		tracelog.WithConfig(tracelog.Config{Env: "prod", Version: "23.45.6"}),
	)
	l := slog.New(h)

	span := mocktracer.NewSpan(111, 222).SetTag(tracelog.TagEnv, "prod-staging")
	ctx := mocktracer.ContextWithSpan(context.Background(), span)

	l.InfoContext(ctx, "how now brown cow")

	got := logged(t, &buf)
	assert.Equal(t, "prod-staging", got[tracelog.LogKeyEnv])
	assert.Equal(t, "23.45.6", got[tracelog.LogKeyVersion])
	assert.Equal(t, float64(111), got[tracelog.LogKeyTraceID])
	assert.Equal(t, float64(222), got[tracelog.LogKeySpanID])
}

func TestHandler_augmentsWithoutSpan(t *testing.T) {
	var buf bytes.Buffer
	h := tracelog.NewHandler(slog.NewJSONHandler(&buf, nil),
		tracelog.WithTracer(mocktracer.New()),
		tracelog.WithConfig(tracelog.Config{Env: "prod", Version: "23.45.6"}),
	)
	l := slog.New(h)

	l.Info("how now brown cow")

	got := logged(t, &buf)
	assert.Equal(t, "prod", got[tracelog.LogKeyEnv])
	assert.Equal(t, "23.45.6", got[tracelog.LogKeyVersion])
	assert.Equal(t, float64(0), got[tracelog.LogKeyTraceID])
	assert.Equal(t, float64(0), got[tracelog.LogKeySpanID])
}

func TestHandler_defaultsAlwaysPresent(t *testing.T) {
	var buf bytes.Buffer
	h := tracelog.NewHandler(slog.NewJSONHandler(&buf, nil),
		tracelog.WithTracer(mocktracer.New()),
		tracelog.WithConfig(tracelog.Config{}),
	)
	l := slog.New(h)

	l.Info("how now brown cow")

	got := logged(t, &buf)
	assert.Equal(t, "", got[tracelog.LogKeyEnv])
	assert.Equal(t, "", got[tracelog.LogKeyVersion])
	assert.Equal(t, float64(0), got[tracelog.LogKeyTraceID])
	assert.Equal(t, float64(0), got[tracelog.LogKeySpanID])
}

func TestHandler_configTracerOverridesHandlerTracer(t *testing.T) {
	override := staticTracer{span: mocktracer.NewSpan(111, 222)}
	explicit := staticTracer{span: mocktracer.NewSpan(333, 444)}

	var buf bytes.Buffer
	h := tracelog.NewHandler(slog.NewJSONHandler(&buf, nil),
		tracelog.WithTracer(explicit),
		tracelog.WithConfig(tracelog.Config{Tracer: override}),
	)
	slog.New(h).Info("how now brown cow")

	got := logged(t, &buf)
	assert.Equal(t, float64(111), got[tracelog.LogKeyTraceID])
	assert.Equal(t, float64(222), got[tracelog.LogKeySpanID])
}

func TestHandler_defaultTracerWhenNoneSupplied(t *testing.T) {
	t.Cleanup(func() { tracelog.SetDefaultTracer(nil) })

	tracelog.SetDefaultTracer(staticTracer{span: mocktracer.NewSpan(111, 222)})

	var buf bytes.Buffer
	h := tracelog.NewHandler(slog.NewJSONHandler(&buf, nil),
		tracelog.WithConfig(tracelog.Config{}),
	)
	slog.New(h).Info("how now brown cow")

	got := logged(t, &buf)
	assert.Equal(t, float64(111), got[tracelog.LogKeyTraceID])
}

func TestHandler_panickingTracerDegradesToDefaults(t *testing.T) {
	var buf bytes.Buffer
	h := tracelog.NewHandler(slog.NewJSONHandler(&buf, nil),
		tracelog.WithTracer(panickyTracer{}),
		tracelog.WithConfig(tracelog.Config{Env: "prod"}),
	)
	l := slog.New(h)

	assert.NotPanics(t, func() {
		l.Info("how now brown cow")
	})

	got := logged(t, &buf)
	assert.Equal(t, "prod", got[tracelog.LogKeyEnv])
	assert.Equal(t, float64(0), got[tracelog.LogKeyTraceID])
	assert.Equal(t, float64(0), got[tracelog.LogKeySpanID])
}

func TestHandler_configSource(t *testing.T) {
	cfg := tracelog.Config{Env: "stg"}
	var buf bytes.Buffer
	h := tracelog.NewHandler(slog.NewJSONHandler(&buf, nil),
		tracelog.WithTracer(mocktracer.New()),
		tracelog.WithConfigSource(func() tracelog.Config { return cfg }),
	)
	l := slog.New(h)

	cfg.Env = "prod"
	l.Info("how now brown cow")

	got := logged(t, &buf)
	assert.Equal(t, "prod", got[tracelog.LogKeyEnv])
}

func TestHandler_withAttrsAndGroupPreserveDecoration(t *testing.T) {
	var buf bytes.Buffer
	h := tracelog.NewHandler(slog.NewJSONHandler(&buf, nil),
		tracelog.WithTracer(mocktracer.New()),
		tracelog.WithConfig(tracelog.Config{Env: "prod"}),
	)
	l := slog.New(h).With("request", "r-1234").WithGroup("payload")

	span := mocktracer.NewSpan(111, 222)
	ctx := mocktracer.ContextWithSpan(context.Background(), span)

	l.InfoContext(ctx, "how now brown cow", "size", 42)

	got := logged(t, &buf)
	assert.Equal(t, "r-1234", got["request"])

	payload, ok := got["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), payload["size"])
	assert.Equal(t, "prod", payload[tracelog.LogKeyEnv])
	assert.Equal(t, float64(111), payload[tracelog.LogKeyTraceID])
}

func TestHandler_enabledDelegates(t *testing.T) {
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	h := tracelog.NewHandler(inner, tracelog.WithConfig(tracelog.Config{}))

	ctx := context.Background()
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelError))
}

func TestHandler_unwrap(t *testing.T) {
	inner := slog.NewJSONHandler(&bytes.Buffer{}, nil)
	h := tracelog.NewHandler(inner)

	assert.Same(t, inner, h.Unwrap().(*slog.JSONHandler))
}

func TestNewHandler_nilInnerPanics(t *testing.T) {
	assert.PanicsWithValue(t, "inner handler is nil", func() {
		tracelog.NewHandler(nil)
	})
}
