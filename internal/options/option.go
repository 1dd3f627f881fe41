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
Package options holds the options handling code.

The Options struct is held in this internal package to button down access.
The collaborator contracts live here as well so that options can refer to
them without importing the root package.
*/
package options

import (
	"context"
)

// Span is a read-only view of a traced unit of work.
type Span interface {
	// TraceID returns the trace identifier, 0 when unset.
	TraceID() uint64

	// SpanID returns the span identifier, 0 when unset.
	SpanID() uint64

	// Tag returns the value of the tag for key, reporting whether the tag
	// is present on the span.
	Tag(key string) (string, bool)
}

// Tracer surfaces the span active in a context.  CurrentSpan returns nil
// when no span is active.
type Tracer interface {
	CurrentSpan(ctx context.Context) Span
}

// Config is a snapshot of the injection configuration.
type Config struct {
	// Env is the deployment environment, e.g. "prod".
	Env string

	// Version is the application or service version.
	Version string

	// Tracer, when set, overrides the tracer consulted for the current
	// span.
	Tracer Tracer
}

// Options holds information needed to construct an instance of Handler.
type Options struct {
	// Tracer is consulted for the current span when the configuration
	// snapshot carries no override.  When nil the process default tracer
	// is used.
	Tracer Tracer

	// Source supplies the configuration snapshot consulted for each
	// record.  When nil the process-wide configuration is used.
	Source func() Config
}

type OptionProcessor func(o *Options)

func ApplyOptions(opts ...OptionProcessor) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}

	return o
}
