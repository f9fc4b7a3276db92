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

// Counter hands out globally unique, monotonically increasing ids,
// synchronized across all namespaces of a Pool. The counter value itself
// is never persisted; the ground truth after a reload is the highest id
// present in entity storage, which implementations reconcile against
// before handing out new values.
type Counter interface {
	// Next returns a value strictly greater than every value previously
	// returned or observed. It never blocks and never fails.
	Next() int64

	// Observe informs the counter that value was handed out through a
	// channel it does not control (e.g. restored from host storage).
	// Future Next calls return values strictly greater than value.
	// Side effect only.
	Observe(namespace string, value int64)

	// Namespaces returns a diagnostics snapshot of the per-namespace
	// counter mirrors (order is unspecified). Empty when namespace
	// tracking is disabled.
	Namespaces() []NamespaceCount
}

// NamespaceCount is one (namespace, value) pair in a Counter snapshot.
type NamespaceCount struct {
	// Namespace is the namespace name.
	Namespace string
	// Value is the namespace's view of the highest id handed out or
	// observed. Mirrors are kept equal across namespaces.
	Value int64
}
