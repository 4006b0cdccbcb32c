package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type editForm struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func TestTracker_CleanAgainstBaseline(t *testing.T) {
	tr, err := NewTracker(editForm{Name: "김철수", Phone: "010-1234-5678"})
	assert.NoError(t, err)

	dirty, err := tr.Dirty(editForm{Name: "김철수", Phone: "010-1234-5678"})
	assert.NoError(t, err)
	assert.False(t, dirty)
}

func TestTracker_DetectsChange(t *testing.T) {
	tr, _ := NewTracker(editForm{Name: "김철수", Phone: "010-1234-5678"})

	dirty, err := tr.Dirty(editForm{Name: "김철수", Phone: "010-9999-5678"})
	assert.NoError(t, err)
	assert.True(t, dirty)
}

// Struct baseline vs map payload with the same fields must compare
// clean: comparison goes through canonical JSON, not Go types.
func TestTracker_MapAndStructCompareEqual(t *testing.T) {
	tr, _ := NewTracker(editForm{Name: "김철수", Phone: "010-1234-5678"})

	dirty, err := tr.Dirty(map[string]any{
		"phone": "010-1234-5678",
		"name":  "김철수",
	})
	assert.NoError(t, err)
	assert.False(t, dirty)
}

func TestTracker_NilBaselineMeansNewRecord(t *testing.T) {
	tr, _ := NewTracker(nil)

	dirty, err := tr.Dirty(editForm{Name: "김철수"})
	assert.NoError(t, err)
	assert.True(t, dirty)
}

// Saving resets the baseline: re-checking the very payload that was
// just submitted must report clean, and checking it twice in a row must
// not flip the answer.
func TestTracker_MarkSavedIsIdempotent(t *testing.T) {
	tr, _ := NewTracker(editForm{Name: "before"})

	next := editForm{Name: "after"}
	dirty, _ := tr.Dirty(next)
	assert.True(t, dirty)

	assert.NoError(t, tr.MarkSaved(next))

	for i := 0; i < 3; i++ {
		dirty, err := tr.Dirty(next)
		assert.NoError(t, err)
		assert.False(t, dirty)
	}
}

func TestTracker_SnapshotRestoreRoundTrip(t *testing.T) {
	tr, _ := NewTracker(editForm{Name: "김철수", Phone: "010-1234-5678"})
	snap := tr.Snapshot()

	restored, _ := NewTracker(nil)
	restored.Restore(snap)

	dirty, err := restored.Dirty(editForm{Name: "김철수", Phone: "010-1234-5678"})
	assert.NoError(t, err)
	assert.False(t, dirty)
}

func TestTracker_RejectsUnmarshalablePayload(t *testing.T) {
	tr, _ := NewTracker(nil)

	_, err := tr.Dirty(make(chan int))
	assert.Error(t, err)
}
