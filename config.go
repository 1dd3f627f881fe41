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
	"os"
	"sync/atomic"

	"m4o.io/tracelog/internal/options"
)

// Config is a snapshot of the injection configuration: the deployment
// environment, the application version, and an optional tracer override.
// The zero value means "nothing configured".
type Config = options.Config

// Environment variables consulted by FromEnv.
const (
	// EnvVarEnv names the environment variable holding the deployment
	// environment.
	EnvVarEnv = "TRACELOG_ENV"
	// EnvVarVersion names the environment variable holding the application
	// version.
	EnvVarVersion = "TRACELOG_VERSION"
)

var config atomic.Pointer[Config]

func init() {
	config.Store(&Config{})
}

// Configured returns a snapshot of the process-wide configuration.
func Configured() Config {
	return *config.Load()
}

// SetEnv sets the deployment environment in the process-wide configuration.
func SetEnv(env string) {
	updateConfig(func(c *Config) { c.Env = env })
}

// SetVersion sets the application version in the process-wide configuration.
func SetVersion(version string) {
	updateConfig(func(c *Config) { c.Version = version })
}

// SetTracer sets the tracer override in the process-wide configuration.
// The override takes precedence over any tracer supplied with WithTracer
// and over the process default tracer.  Passing nil clears the override.
func SetTracer(tracer Tracer) {
	updateConfig(func(c *Config) { c.Tracer = tracer })
}

// ResetConfig restores the zero configuration.
func ResetConfig() {
	config.Store(&Config{})
}

// FromEnv populates the process-wide configuration from the TRACELOG_ENV
// and TRACELOG_VERSION environment variables.  Unset variables leave the
// corresponding field untouched.
func FromEnv() {
	if v, ok := os.LookupEnv(EnvVarEnv); ok {
		SetEnv(v)
	}
	if v, ok := os.LookupEnv(EnvVarVersion); ok {
		SetVersion(v)
	}
}

// updateConfig applies fn to a copy of the current configuration and swaps
// the copy in, retrying on concurrent updates.  Readers always observe a
// complete snapshot; the record augmentation path never takes a lock.
func updateConfig(fn func(c *Config)) {
	for {
		prev := config.Load()
		next := *prev
		fn(&next)

		if config.CompareAndSwap(prev, &next) {
			return
		}
	}
}
