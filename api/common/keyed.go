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

// Keyed is the scalar-storage contract a host object must satisfy so that
// the idref core can annotate it with a unique id and with reference
// field values.
//
// # Overview
//
// The core owns no storage. Every id it assigns and every reference it
// persists is written into the host's own per-entity attribute storage
// through this contract, which is also why the core survives host-side
// save/load without a persistence layer of its own: as long as the host
// round-trips these scalars with the rest of the entity's attributes, the
// counter can reconstruct its floor from the data alone.
//
// Keyed models "one integer-or-unset cell per key". The id occupies one
// well-known cell; each reference field occupies one cell under its field
// key.
//
// # Contract
//
//   - Load MUST return ok=false for a key that was never stored or was
//     cleared. Zero is NOT a reserved sentinel at this boundary; hosts
//     that use 0 internally for "unset" MUST translate it.
//   - Store MUST make the value durable in whatever way the host persists
//     entity attributes; the core never calls an explicit flush.
//   - Clear MUST make subsequent Loads of the key return ok=false.
//   - All three operations MUST be cheap, synchronous and non-blocking:
//     they are called inside full-pool scans, so per-call overhead
//     multiplies by the entity count.
//   - Duplication performed by the host SHOULD copy these cells verbatim.
//     The core expects duplicated ids (that is the collision it repairs);
//     a host that instead clears the id cell on duplicate simply gets a
//     fresh id on first access, which is also fine.
//
// # Relation to apis.Entity
//
// The root module's apis.Entity expresses the same storage contract with
// dedicated id/ref methods for convenience. Keyed is the minimal form of
// it for hosts that already expose generic keyed attribute storage; an
// adapter from Keyed to apis.Entity is mechanical.
type Keyed interface {
	// Load returns the value stored under key, or ok=false when unset.
	Load(key string) (value int64, ok bool)

	// Store writes value under key, overwriting any previous value.
	Store(key string, value int64)

	// Clear removes the value stored under key.
	Clear(key string)
}
