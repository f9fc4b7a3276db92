/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dirpx.dev/idref/apis"
)

// fileConfig is the on-disk shape of a configuration file. Pointer fields
// distinguish "absent" from zero so omitted keys fall back to defaults.
type fileConfig struct {
	FirstID         *int64 `yaml:"first_id"`
	LinkSpace       *int64 `yaml:"link_space"`
	TrackNamespaces *bool  `yaml:"track_namespaces"`
}

// Load reads an apis.Config from a YAML file at path. Omitted keys keep
// their defaults; present keys go through the same validation as the
// corresponding With* options.
func Load(path string) (apis.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes an apis.Config from raw YAML bytes.
func Parse(raw []byte) (apis.Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return apis.Config{}, fmt.Errorf("config: decode yaml: %w", err)
	}

	var opts []Option
	if fc.FirstID != nil {
		opts = append(opts, WithFirstID(*fc.FirstID))
	}
	if fc.LinkSpace != nil {
		opts = append(opts, WithLinkSpace(*fc.LinkSpace))
	}
	if fc.TrackNamespaces != nil {
		opts = append(opts, WithTrackNamespaces(*fc.TrackNamespaces))
	}
	return NewConfig(opts...), nil
}
