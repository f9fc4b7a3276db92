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

package apis

// Lookup is a pluggable id-to-entity resolution step. A Resolver can chain
// multiple lookups in order (e.g., Index -> Scan).
type Lookup interface {
	// TryLookup attempts to find the live entity currently holding id.
	// It returns (entity, true) on a verified hit; otherwise (nil, false)
	// to fall through to the next lookup. A hit must reflect the entity's
	// current stored id, never a cached association.
	TryLookup(id int64, pool Pool, cfg Config) (Entity, bool)
}
