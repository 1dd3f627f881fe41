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

// Package zap attaches correlation values to zap loggers.
package zap

import (
	"context"

	"go.uber.org/zap"

	"m4o.io/tracelog"
)

// Fields returns the four correlation fields resolved for ctx.
func Fields(ctx context.Context) []zap.Field {
	c := tracelog.Correlate(ctx)

	return []zap.Field{
		zap.String(tracelog.LogKeyEnv, c.Env),
		zap.String(tracelog.LogKeyVersion, c.Version),
		zap.Uint64(tracelog.LogKeyTraceID, c.TraceID),
		zap.Uint64(tracelog.LogKeySpanID, c.SpanID),
	}
}

// With returns a logger carrying the correlation fields resolved for ctx.
func With(ctx context.Context, log *zap.Logger) *zap.Logger {
	if log == nil {
		return nil
	}

	return log.With(Fields(ctx)...)
}
