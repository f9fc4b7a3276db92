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

package strategy

import (
	"fmt"
	"strings"
)

// Strategy selects how a resolver maps ids back to entities.
//
// # Overview
//
// Strategy is a small enumerated type describing the id->entity lookup
// policy a resolver is built with. It selects a broad class of behavior;
// concrete tuning (index capacity, verification policy) is configured
// separately by the implementation.
//
// # Values
//
//   - Scan    — fresh full-pool linear scan per lookup (the default).
//   - Indexed — verified reverse index in front of the scan.
//   - None    — lookups disabled; every resolution reports unresolved.
//
// # Contract
//
//   - Resolvers MUST treat Strategy as a stable, public API; adding new
//     values is allowed, but existing values MUST NOT change semantics
//     in breaking ways.
//   - Regardless of Strategy, a returned entity MUST reflect its current
//     stored id. Strategies trade lookup cost, never correctness.
//   - Strategy values are plain integers and safe to share across
//     goroutines.
type Strategy int

const (
	// Scan selects the fresh linear scan per lookup.
	//
	// # Semantics
	//
	// Every lookup walks all live entities across all namespaces and
	// returns the first whose current id matches. No state survives
	// between calls, so the result is correct under arbitrary host-side
	// mutation (create, delete, rename, undo) between calls.
	//
	// Recommended usage:
	//
	//   - Any host, any pool size where O(total entity count) per lookup
	//     is acceptable. This is the accepted performance ceiling of the
	//     design and the only strategy with no preconditions.
	Scan Strategy = iota

	// Indexed selects a verified reverse index chained before the scan.
	//
	// # Semantics
	//
	// Successful resolutions are remembered in an id->entity map. A hit
	// is only served after re-checking the entity's current stored id;
	// stale entries fall through to the scan and are dropped. The index
	// is therefore an amortization, not a source of truth.
	//
	// Preconditions:
	//
	//   - Entity handles MUST remain valid (never dangle) after the host
	//     removes the entity from the pool. Hosts that cannot guarantee
	//     this MUST stay on Scan.
	Indexed

	// None disables resolution entirely.
	//
	// # Semantics
	//
	// Every lookup reports unresolved. Id assignment and collision
	// repair still run. Useful for hosts that persist references but
	// never dereference them in-process (for example, batch exporters).
	None
)

// String returns the canonical lowercase name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Scan:
		return "scan"
	case Indexed:
		return "indexed"
	case None:
		return "none"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Parse maps a case-insensitive name to a Strategy.
func Parse(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scan", "":
		return Scan, nil
	case "indexed", "index":
		return Indexed, nil
	case "none", "off":
		return None, nil
	default:
		return Scan, fmt.Errorf("unknown lookup strategy %q", name)
	}
}
