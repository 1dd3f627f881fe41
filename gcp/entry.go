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
Package gcp attaches correlation values to Google Cloud Logging entries.

The augmentor returned by WithCorrelation has the common entry augmentor
shape, func(ctx, *logging.Entry, []string), and can be registered with any
logging pipeline that exposes that extension point.
*/
package gcp

import (
	"context"
	"fmt"
	"strconv"

	"cloud.google.com/go/logging"
	spb "google.golang.org/protobuf/types/known/structpb"

	"m4o.io/tracelog"
)

// EntryAugmentor mutates a logging entry before it is emitted.
type EntryAugmentor func(ctx context.Context, e *logging.Entry, groups []string)

// WithCorrelation returns an augmentor that resolves the correlation values
// for the entry's context and writes them onto the entry.  Trace and span
// identifiers land in the entry's Trace and SpanID fields using the Google
// Cloud trace resource format for projectID.  Env and version land in the
// structpb payload when the entry carries one, otherwise in the entry
// labels; empty values are omitted from labels.
func WithCorrelation(projectID string) EntryAugmentor {
	return func(ctx context.Context, e *logging.Entry, _ []string) {
		c := tracelog.Correlate(ctx)

		if c.TraceID != 0 {
			e.Trace = fmt.Sprintf("projects/%s/traces/%032x", projectID, c.TraceID)
			e.SpanID = fmt.Sprintf("%016x", c.SpanID)
		}

		if payload, ok := e.Payload.(*spb.Struct); ok {
			decorate(payload, c)

			return
		}

		if c.Env == "" && c.Version == "" {
			return
		}
		if e.Labels == nil {
			e.Labels = make(map[string]string)
		}
		if c.Env != "" {
			e.Labels[tracelog.LogKeyEnv] = c.Env
		}
		if c.Version != "" {
			e.Labels[tracelog.LogKeyVersion] = c.Version
		}
	}
}

// decorate writes all four correlation fields into the payload.  The
// identifiers are stringified so they survive JSON number precision.
func decorate(payload *spb.Struct, c tracelog.Correlation) {
	if payload.Fields == nil {
		payload.Fields = make(map[string]*spb.Value)
	}

	payload.Fields[tracelog.LogKeyEnv] = spb.NewStringValue(c.Env)
	payload.Fields[tracelog.LogKeyVersion] = spb.NewStringValue(c.Version)
	payload.Fields[tracelog.LogKeyTraceID] = spb.NewStringValue(strconv.FormatUint(c.TraceID, 10))
	payload.Fields[tracelog.LogKeySpanID] = spb.NewStringValue(strconv.FormatUint(c.SpanID, 10))
}
