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

package lookup

import (
	"dirpx.dev/idref/apis"
	uscan "dirpx.dev/idref/utils/scan"
)

// NewScan creates the default apis.Lookup: a fresh linear scan over the
// whole pool on every call.
func NewScan() apis.Lookup {
	return scanLookup{}
}

// scanLookup walks every entity in every namespace and returns the first
// one whose current effective id matches. No state is kept between calls,
// so the result stays correct under arbitrary host-side mutation (create,
// delete, rename, undo) between calls. The cost is O(total entity count)
// per lookup; that ceiling is accepted because entity lifetime is owned by
// the host and there is no reliable channel to keep an index consistent.
type scanLookup struct{}

// Ensure scanLookup implements apis.Lookup.
var _ apis.Lookup = scanLookup{}

// TryLookup scans pool for the entity currently holding id.
func (scanLookup) TryLookup(id int64, pool apis.Pool, cfg apis.Config) (apis.Entity, bool) {
	if pool == nil {
		return nil, false
	}
	return uscan.FindByID(pool, id, cfg)
}
