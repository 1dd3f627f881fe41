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
	"github.com/magiconair/properties"
	"github.com/pkg/errors"
)

// LoadServiceInfo loads deployment metadata from the properties file at
// path and applies it to the process-wide configuration.  The file may
// define an "env" and a "version" key; a missing key leaves the
// corresponding configuration field untouched.  Values may be quoted, as
// files projected by deployment tooling often are.
func LoadServiceInfo(path string) error {
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return errors.Wrap(err, "unable to load service info")
	}

	if env, ok := props.Get(TagEnv); ok {
		SetEnv(unquote(env))
	}
	if version, ok := props.Get(TagVersion); ok {
		SetVersion(unquote(version))
	}

	return nil
}

func unquote(val string) string {
	if len(val) > 1 && val[0] == '"' && val[len(val)-1] == '"' {
		return val[1 : len(val)-1]
	}

	return val
}
