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

// Resolver assigns lazy per-entity ids and maps ids back to entities.
// There is no duplication-complete signal from the host, so every entry
// point doubles as an opportunistic collision check: duplicated entities
// sharing a stored id are detected and repaired on access, not on copy.
type Resolver interface {
	// EnsureID returns e's effective id, assigning a fresh one from the
	// counter when the id is unset. Reading an id for the first time
	// mutates storage; collisions with other pool members are repaired
	// before the id is returned.
	EnsureID(e Entity) int64

	// PeekID returns e's effective id without assigning or repairing
	// anything. The pure counterpart of EnsureID.
	PeekID(e Entity) (int64, bool)

	// Resolve returns the live entity whose current effective id equals
	// id, or ok=false when no entity holds it (unresolved: the entity was
	// deleted, or the id was never assigned). Resolution cost is linear in
	// the total entity count.
	Resolve(id int64) (Entity, bool)

	// Sweep walks the whole pool once, clearing later-scanned duplicate
	// ids and informing the counter of every id observed. Hosts call it
	// after load/reload; cleared duplicates regenerate lazily on their
	// next EnsureID.
	Sweep()
}
