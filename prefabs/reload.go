package prefabs

import (
	"fmt"
	"time"
)

type changeSource interface {
	Poll() (string, bool)
}

// Reloader re-reads walker.yaml when the watcher reports it changed and its
// modification time moved. A spec that fails to load or validate is never
// handed to apply.
type Reloader struct {
	source  changeSource
	apply   func(*WalkerSpec)
	load    func() (*WalkerSpec, error)
	modTime func() (time.Time, bool)
	mod     time.Time
}

// NewReloader watches source for walker.yaml changes and passes every good
// reload to apply.
func NewReloader(source changeSource, apply func(*WalkerSpec)) *Reloader {
	r := &Reloader{
		source:  source,
		apply:   apply,
		load:    LoadWalkerSpec,
		modTime: func() (time.Time, bool) { return ModTime(WalkerFile) },
	}
	if t, ok := r.modTime(); ok {
		r.mod = t
	}
	return r
}

// Check drains pending change events without blocking. It reports whether a
// new spec was applied.
func (r *Reloader) Check() (bool, error) {
	if r == nil || r.source == nil {
		return false, nil
	}

	changed := false
	for {
		name, ok := r.source.Poll()
		if !ok {
			break
		}
		if name == WalkerFile {
			changed = true
		}
	}
	if !changed {
		return false, nil
	}

	t, ok := r.modTime()
	if ok && t.Equal(r.mod) {
		return false, nil
	}
	spec, err := r.load()
	if err != nil {
		return false, fmt.Errorf("prefabs: reload %s: %w", WalkerFile, err)
	}
	r.mod = t
	if r.apply != nil {
		r.apply(spec)
	}
	return true, nil
}
