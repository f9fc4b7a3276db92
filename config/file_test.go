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
	"os"
	"path/filepath"
	"testing"

	"dirpx.dev/idref/config"
)

func TestParseFullDocument(t *testing.T) {
	raw := []byte("first_id: 100\nlink_space: 1000\ntrack_namespaces: false\n")

	got, err := config.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.FirstID != 100 || got.LinkSpace != 1000 || got.TrackNamespaces {
		t.Fatalf("Parse = %+v, want {100 1000 false}", got)
	}
}

func TestParsePartialDocumentKeepsDefaults(t *testing.T) {
	got, err := config.Parse([]byte("first_id: 50\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.FirstID != 50 {
		t.Fatalf("FirstID = %d, want 50", got.FirstID)
	}
	if got.LinkSpace != config.DefaultLinkSpace {
		t.Fatalf("LinkSpace = %d, want default %d", got.LinkSpace, config.DefaultLinkSpace)
	}
	if got.TrackNamespaces != config.DefaultTrackNamespaces {
		t.Fatalf("TrackNamespaces = %v, want default %v", got.TrackNamespaces, config.DefaultTrackNamespaces)
	}
}

func TestParseNormalizesNonPositive(t *testing.T) {
	got, err := config.Parse([]byte("first_id: -3\nlink_space: 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.FirstID != config.DefaultFirstID || got.LinkSpace != config.DefaultLinkSpace {
		t.Fatalf("Parse = %+v, want defaults", got)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := config.Parse([]byte("first_id: [oops\n")); err == nil {
		t.Fatalf("Parse: expected error for malformed yaml")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idref.yaml")
	if err := os.WriteFile(path, []byte("first_id: 7\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.FirstID != 7 {
		t.Fatalf("FirstID = %d, want 7", got.FirstID)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("Load: expected error for missing file")
	}
}
