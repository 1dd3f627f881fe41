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

// Package zerolog attaches correlation values to zerolog events.
package zerolog

import (
	"github.com/rs/zerolog"

	"m4o.io/tracelog"
)

// Hook resolves the correlation values from the event's context and adds
// them to the event.  Register it once at logger construction:
//
//	logger := zerolog.New(out).Hook(Hook{})
//
// Events must carry their context, e.g. via Ctx(ctx), for span lookup to
// see an active trace.
type Hook struct{}

var _ zerolog.Hook = Hook{}

func (Hook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	c := tracelog.Correlate(e.GetCtx())

	e.Str(tracelog.LogKeyEnv, c.Env)
	e.Str(tracelog.LogKeyVersion, c.Version)
	e.Uint64(tracelog.LogKeyTraceID, c.TraceID)
	e.Uint64(tracelog.LogKeySpanID, c.SpanID)
}
