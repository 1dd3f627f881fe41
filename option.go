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
	"m4o.io/tracelog/internal/options"
)

// Option configures a Handler.
type Option = options.OptionProcessor

// WithTracer returns an option that supplies the tracer consulted for the
// current span.  A tracer override in the configuration still takes
// precedence; when neither is set the process default tracer is used.
func WithTracer(tracer Tracer) Option {
	return func(o *options.Options) {
		o.Tracer = tracer
	}
}

// WithConfig returns an option that pins the handler to a fixed
// configuration snapshot, bypassing the process-wide configuration.
func WithConfig(cfg Config) Option {
	return func(o *options.Options) {
		o.Source = func() Config { return cfg }
	}
}

// WithConfigSource returns an option that supplies the configuration
// snapshot consulted for each record.  The source must be safe for
// concurrent use and cheap, it runs on every log call.
func WithConfigSource(source func() Config) Option {
	return func(o *options.Options) {
		o.Source = source
	}
}
