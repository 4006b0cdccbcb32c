package form

import (
	"bytes"
	"encoding/json"
	"sync"
)

// Tracker keeps the last-saved snapshot of a form payload and answers
// whether the current values differ from it. Snapshots are compared by
// canonical JSON so field order and struct-vs-map representation do not
// produce phantom dirtiness.
type Tracker struct {
	mu    sync.Mutex
	saved []byte
}

// NewTracker starts with baseline as the saved state. A nil baseline
// means "new record": any non-nil payload counts as dirty.
func NewTracker(baseline any) (*Tracker, error) {
	t := &Tracker{}
	if baseline != nil {
		if err := t.markSaved(baseline); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Dirty reports whether current differs from the last-saved snapshot.
func (t *Tracker) Dirty(current any) (bool, error) {
	cur, err := canonical(current)
	if err != nil {
		return false, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return !bytes.Equal(t.saved, cur), nil
}

// MarkSaved resets the baseline to the payload that was just submitted,
// so an immediate re-check reports clean.
func (t *Tracker) MarkSaved(payload any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.markSaved(payload)
}

func (t *Tracker) markSaved(payload any) error {
	b, err := canonical(payload)
	if err != nil {
		return err
	}
	t.saved = b
	return nil
}

// Snapshot returns the saved baseline as raw JSON, for stashing in the
// session's view state between edit round-trips.
func (t *Tracker) Snapshot() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]byte, len(t.saved))
	copy(out, t.saved)
	return out
}

// Restore replaces the baseline with a previously taken Snapshot.
func (t *Tracker) Restore(snapshot []byte) {
	t.mu.Lock()
	t.saved = append([]byte(nil), snapshot...)
	t.mu.Unlock()
}

// canonical marshals via an intermediate map so that two payloads with
// the same fields always serialize byte-identically (Go maps marshal
// with sorted keys).
func canonical(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return json.Marshal(m)
}
