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

package common

// Picker is the UI composition hook for reference fields.
//
// # Overview
//
// A Picker renders one reference field of one owner entity into a layout
// region the host provides: typically a name-searchable text input backed
// by the field's display-name read and write paths, optionally decorated
// with host-specific operators (eyedropper selection, find-in-view, and
// similar conveniences).
//
// The hook exists so that hosts can compose reference fields into their
// panel system with one call per field. It is presentation plumbing and
// sits entirely outside the core's correctness contract: everything a
// Picker does MUST go through the field's public read/write surface, so
// a host that ignores Pickers entirely loses no functionality beyond
// convenience.
//
// # Contract
//
//   - A Picker MUST read the displayed value per draw via the field's
//     display path and MUST NOT cache resolved names across draws (the
//     target may have been renamed between draws).
//   - A Picker MUST write user input through the field's display-name
//     setter and MUST surface, not swallow, its validation error.
//   - An unresolved reference MUST render as an empty value, not as an
//     error state: the referenced entity may have been legitimately
//     deleted.
//   - A Picker MUST be driven from the host's UI thread, like every
//     other core entry point.
//
// # Parameters
//
// The layout parameter is an opaque host layout region (a panel row, an
// immediate-mode context, a widget parent). The core never interprets
// it; it travels through untouched.
type Picker func(layout any, owner Keyed, fieldKey string)
