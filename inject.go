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
	"log/slog"
	"sync"
)

// injector owns the enable/disable lifecycle for the default slog logger.
// The mutex only guards the rare install and uninstall transitions; record
// augmentation itself never contends on it.
var injector struct {
	mu     sync.Mutex
	active bool
	prev   *slog.Logger
}

// Enable installs correlation injection on the default slog logger by
// wrapping its handler in a Handler.  Enable is idempotent and safe to call
// concurrently; after any number of overlapping calls the wrapper is
// installed exactly once.
func Enable(opts ...Option) {
	injector.mu.Lock()
	defer injector.mu.Unlock()

	if injector.active {
		return
	}

	injector.prev = slog.Default()
	slog.SetDefault(slog.New(NewHandler(injector.prev.Handler(), opts...)))
	injector.active = true
}

// Disable restores the default slog logger captured by Enable.  Disable is
// idempotent; once it returns, newly created records no longer carry the
// correlation attributes.
func Disable() {
	injector.mu.Lock()
	defer injector.mu.Unlock()

	if !injector.active {
		return
	}

	slog.SetDefault(injector.prev)
	injector.prev = nil
	injector.active = false
}

// Active reports whether injection is currently enabled.
func Active() bool {
	injector.mu.Lock()
	defer injector.mu.Unlock()

	return injector.active
}
