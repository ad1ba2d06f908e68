// Package logging provides a leveled, multi-destination logging facility on
// top of zap. A Registry hands out named source loggers and routes every
// entry to the registered destinations whose minimum level admits it.
//
// Verbosity resolves per source: an exact rule wins, otherwise the nearest
// dotted-prefix ancestor ("db.pool" falls back to a rule for "db"), otherwise
// the registry's fallback level.
//
// A single mutex serializes registration only (new sources, verbosity rules,
// destination changes). Log writes themselves are unsynchronized; serialize
// a shared writer with zapcore.Lock when it needs it.
package logging

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type destination struct {
	id   string
	min  zapcore.Level
	core zapcore.Core
}

// Registry owns the destination table and the named sources drawing on it.
type Registry struct {
	mu        sync.Mutex
	fallback  zapcore.Level
	verbosity map[string]zapcore.Level
	sources   map[string]*zap.Logger
	dests     []*destination
}

// NewRegistry returns an empty registry whose sources log at fallback unless
// a verbosity rule says otherwise.
func NewRegistry(fallback zapcore.Level) *Registry {
	return &Registry{
		fallback:  fallback,
		verbosity: make(map[string]zapcore.Level),
		sources:   make(map[string]*zap.Logger),
	}
}

// SetVerbosity installs a level rule for source and its dotted descendants.
// Rules apply to sources registered after the call; install them first.
func (r *Registry) SetVerbosity(source string, level zapcore.Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.verbosity[source] = level
}

// AddDestination registers a destination built from enc and ws that accepts
// entries at or above min. It returns a token for RemoveDestination.
func (r *Registry) AddDestination(enc zapcore.Encoder, ws zapcore.WriteSyncer, min zapcore.Level) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New().String()
	// copy-on-write so in-flight writers keep a consistent snapshot
	next := make([]*destination, 0, len(r.dests)+1)
	next = append(next, r.dests...)
	next = append(next, &destination{
		id:   id,
		min:  min,
		core: zapcore.NewCore(enc, ws, min),
	})
	r.dests = next
	return id
}

// RemoveDestination drops the destination registered under token, reporting
// whether it was present.
func (r *Registry) RemoveDestination(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]*destination, 0, len(r.dests))
	found := false
	for _, d := range r.dests {
		if d.id == token {
			found = true
			continue
		}
		next = append(next, d)
	}
	r.dests = next
	return found
}

// Source returns the logger registered under name, creating it on first use.
// The source's effective level is resolved once, at registration.
func (r *Registry) Source(name string) *zap.Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lg, ok := r.sources[name]; ok {
		return lg
	}
	lg := zap.New(&routedCore{reg: r, min: r.resolve(name)}).Named(name)
	r.sources[name] = lg
	return lg
}

// Sync flushes every destination, aggregating failures.
func (r *Registry) Sync() error {
	r.mu.Lock()
	dests := r.dests
	r.mu.Unlock()
	var err error
	for _, d := range dests {
		err = multierr.Append(err, d.core.Sync())
	}
	return err
}

// resolve walks name up its dotted ancestry to the nearest verbosity rule.
// Callers hold r.mu.
func (r *Registry) resolve(name string) zapcore.Level {
	for {
		if lvl, ok := r.verbosity[name]; ok {
			return lvl
		}
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			return r.fallback
		}
		name = name[:i]
	}
}

func (r *Registry) destinations() []*destination {
	return r.dests
}

// routedCore fans a source's entries out to every admitting destination.
type routedCore struct {
	reg    *Registry
	min    zapcore.Level
	fields []zapcore.Field
}

var _ zapcore.Core = (*routedCore)(nil)

func (c *routedCore) Enabled(lvl zapcore.Level) bool {
	return lvl >= c.min
}

func (c *routedCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &routedCore{reg: c.reg, min: c.min, fields: merged}
}

func (c *routedCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *routedCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	all := fields
	if len(c.fields) > 0 {
		all = make([]zapcore.Field, 0, len(c.fields)+len(fields))
		all = append(all, c.fields...)
		all = append(all, fields...)
	}
	var err error
	for _, d := range c.reg.destinations() {
		if ent.Level < d.min {
			continue
		}
		err = multierr.Append(err, d.core.Write(ent, all))
	}
	return err
}

func (c *routedCore) Sync() error {
	var err error
	for _, d := range c.reg.destinations() {
		err = multierr.Append(err, d.core.Sync())
	}
	return err
}
