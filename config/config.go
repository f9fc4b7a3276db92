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
	"dirpx.dev/idref/apis"
)

const (
	// DefaultFirstID represents the default for FirstID.
	// Counting from 1 keeps 0 free as the host-side "unset" sentinel.
	DefaultFirstID = 1
	// DefaultLinkSpace represents the default for LinkSpace.
	// An arbitrarily large range; a single file is not expected to hold
	// anywhere near this many locally allocated ids.
	DefaultLinkSpace = 10_000_000
	// DefaultTrackNamespaces represents the default for TrackNamespaces.
	// When true, the counter keeps per-namespace mirrors for diagnostics.
	DefaultTrackNamespaces = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure the value space is sane.
	if cfg.FirstID <= 0 {
		cfg.FirstID = DefaultFirstID
	}
	if cfg.LinkSpace <= 0 {
		cfg.LinkSpace = DefaultLinkSpace
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		FirstID:         DefaultFirstID,
		LinkSpace:       DefaultLinkSpace,
		TrackNamespaces: DefaultTrackNamespaces,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithFirstID sets the FirstID option.
// A non-positive value resets to the default.
func WithFirstID(first int64) Option {
	return func(c *apis.Config) {
		if first <= 0 {
			c.FirstID = DefaultFirstID
			return
		}
		c.FirstID = first
	}
}

// WithLinkSpace sets the LinkSpace option.
// A non-positive value resets to the default.
func WithLinkSpace(space int64) Option {
	return func(c *apis.Config) {
		if space <= 0 {
			c.LinkSpace = DefaultLinkSpace
			return
		}
		c.LinkSpace = space
	}
}

// WithTrackNamespaces sets the TrackNamespaces option.
func WithTrackNamespaces(track bool) Option {
	return func(c *apis.Config) {
		c.TrackNamespaces = track
	}
}
