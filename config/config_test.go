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

package config_test

import (
	"testing"

	"dirpx.dev/idref/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.FirstID != config.DefaultFirstID {
		t.Fatalf("FirstID = %d, want %d", got.FirstID, config.DefaultFirstID)
	}
	if got.LinkSpace != config.DefaultLinkSpace {
		t.Fatalf("LinkSpace = %d, want %d", got.LinkSpace, config.DefaultLinkSpace)
	}
	if got.TrackNamespaces != config.DefaultTrackNamespaces {
		t.Fatalf("TrackNamespaces = %v, want %v", got.TrackNamespaces, config.DefaultTrackNamespaces)
	}
}

func TestNewConfigOptions(t *testing.T) {
	got := config.NewConfig(
		config.WithFirstID(100),
		config.WithLinkSpace(1000),
		config.WithTrackNamespaces(false),
	)

	if got.FirstID != 100 {
		t.Fatalf("FirstID = %d, want 100", got.FirstID)
	}
	if got.LinkSpace != 1000 {
		t.Fatalf("LinkSpace = %d, want 1000", got.LinkSpace)
	}
	if got.TrackNamespaces {
		t.Fatalf("TrackNamespaces = true, want false")
	}
}

func TestNewConfigNormalizesNonPositive(t *testing.T) {
	got := config.NewConfig(
		config.WithFirstID(0),
		config.WithLinkSpace(-5),
	)

	if got.FirstID != config.DefaultFirstID {
		t.Fatalf("FirstID = %d, want default %d", got.FirstID, config.DefaultFirstID)
	}
	if got.LinkSpace != config.DefaultLinkSpace {
		t.Fatalf("LinkSpace = %d, want default %d", got.LinkSpace, config.DefaultLinkSpace)
	}
}
