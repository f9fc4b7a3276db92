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

// Config carries read-only allocation knobs shared by counter, resolver
// and lookups. It is passed by value and should be treated as immutable
// by implementations.
type Config struct {
	// FirstID is the first value a fresh Counter hands out. Stored ids
	// are always >= FirstID, so any value below it reads as "unset".
	FirstID int64

	// LinkSpace is the width of the effective-id range reserved for each
	// linked library. Entities reporting a link index (see Linker) have
	// their stored id offset by (index+1)*LinkSpace, which keeps ids
	// carried in from other files out of the local value space.
	LinkSpace int64

	// TrackNamespaces controls whether the Counter maintains per-namespace
	// mirrors of the shared value for diagnostics. Allocation behavior is
	// identical either way.
	TrackNamespaces bool
}
