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

package counter

import (
	"sync"

	"go.uber.org/zap"

	"dirpx.dev/idref/apis"
	"dirpx.dev/idref/config"
	"dirpx.dev/idref/utils/scan"
)

// Option configures a counter during construction.
type Option func(*counter)

// WithLogger attaches a logger for observability of out-of-band
// observations and floor reconciliation. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *counter) {
		if log != nil {
			c.log = log
		}
	}
}

// New constructs an apis.Counter over pool, configured by cfg.
//
// The counter does not persist its state. The pool's entity storage is the
// ground truth: before handing out a value, Next reconciles the in-memory
// floor against the highest stored id found by a full scan, so a fresh
// counter over a reloaded pool can never collide with an id assigned in a
// previous session.
func New(cfg apis.Config, pool apis.Pool, opts ...Option) apis.Counter {
	if cfg.FirstID <= 0 {
		cfg.FirstID = config.DefaultFirstID
	}
	c := &counter{
		cfg:     cfg,
		pool:    pool,
		floor:   cfg.FirstID - 1,
		mirrors: make(map[string]int64),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// counter is the shared-value-space id source. One logical integer,
// mirrored per namespace so every namespace's view stays equal.
type counter struct {
	// cfg is the configuration used for floor and mirror policy.
	cfg apis.Config
	// pool is scanned for the ground-truth maximum stored id.
	pool apis.Pool
	// mu guards floor and mirrors. Single-threaded hosts never contend;
	// the lock is what the multi-threaded adaptation of the model needs.
	mu sync.Mutex
	// floor is the highest id handed out or observed so far.
	floor int64
	// mirrors holds the per-namespace view of floor.
	mirrors map[string]int64
	// log records observations and reconciliations.
	log *zap.Logger
}

// Next returns a value strictly greater than every value previously
// returned or observed by any namespace's counter.
func (c *counter) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reconcileLocked()
	c.floor++
	c.syncMirrorsLocked()
	return c.floor
}

// Observe raises the floor past a value handed out through a channel the
// counter does not control.
func (c *counter) Observe(namespace string, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value > c.floor {
		c.log.Debug("counter floor raised by observation",
			zap.String("namespace", namespace),
			zap.Int64("old_floor", c.floor),
			zap.Int64("value", value))
		c.floor = value
	}
	c.syncMirrorsLocked()
}

// Namespaces returns a snapshot of the per-namespace mirrors.
func (c *counter) Namespaces() []apis.NamespaceCount {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]apis.NamespaceCount, 0, len(c.mirrors))
	for ns, v := range c.mirrors {
		out = append(out, apis.NamespaceCount{Namespace: ns, Value: v})
	}
	return out
}

// reconcileLocked raises the floor to the ground truth: the highest stored
// id currently present in local entity storage. The counter state is never
// persisted, so this scan is what keeps a reloaded pool collision-free.
func (c *counter) reconcileLocked() {
	if max := scan.MaxStoredID(c.pool); max > c.floor {
		c.log.Debug("counter floor reconciled against pool",
			zap.Int64("old_floor", c.floor),
			zap.Int64("max_stored_id", max))
		c.floor = max
	}
}

// syncMirrorsLocked advances every namespace's mirror to the shared floor.
func (c *counter) syncMirrorsLocked() {
	if !c.cfg.TrackNamespaces || c.pool == nil {
		return
	}
	for _, ns := range c.pool.Namespaces() {
		c.mirrors[ns] = c.floor
	}
}
