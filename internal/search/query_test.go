package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	var nilPtr *string
	q := Query{
		"name":     "김",
		"phone":    "",
		"status":   []string{"RECEIVED"},
		"empty":    []string{},
		"missing":  nil,
		"nilPtr":   nilPtr,
		"page":     0,
		"keepBool": false,
	}

	out := Sanitize(q)

	assert.Equal(t, "김", out["name"])
	assert.Equal(t, []string{"RECEIVED"}, out["status"])
	assert.NotContains(t, out, "phone")
	assert.NotContains(t, out, "empty")
	assert.NotContains(t, out, "missing")
	assert.NotContains(t, out, "nilPtr")

	// zero numbers and false are real filter values, not absence
	assert.Contains(t, out, "page")
	assert.Contains(t, out, "keepBool")
}

func TestSanitize_DoesNotMutateInput(t *testing.T) {
	q := Query{"a": "", "b": "x"}
	_ = Sanitize(q)

	assert.Len(t, q, 2)
}

func TestEncode_RepeatedKeysForSlices(t *testing.T) {
	vals := Encode(Query{"status": []string{"RECEIVED", "REPAIRING"}}, 0, 10)

	assert.Equal(t, []string{"RECEIVED", "REPAIRING"}, vals["status"])
	assert.Equal(t, "0", vals.Get("page"))
	assert.Equal(t, "10", vals.Get("size"))
}

func TestEncode_ScalarsAndPagination(t *testing.T) {
	vals := Encode(Query{"customerName": "김철수", "categoryId": 7}, 3, 20)

	assert.Equal(t, "김철수", vals.Get("customerName"))
	assert.Equal(t, "7", vals.Get("categoryId"))
	assert.Equal(t, "3", vals.Get("page"))
	assert.Equal(t, "20", vals.Get("size"))
}

func TestEncode_DropsEmptyBeforeSerializing(t *testing.T) {
	vals := Encode(Query{"name": "", "tags": []string{}}, 0, 10)

	_, hasName := vals["name"]
	_, hasTags := vals["tags"]
	assert.False(t, hasName)
	assert.False(t, hasTags)
}

func TestNeedsDriftCorrection(t *testing.T) {
	// empty non-first page of a non-empty result set drifted past the end
	assert.True(t, NeedsDriftCorrection(0, 5, 2))

	assert.False(t, NeedsDriftCorrection(3, 5, 2)) // has rows
	assert.False(t, NeedsDriftCorrection(0, 0, 2)) // genuinely empty set
	assert.False(t, NeedsDriftCorrection(0, 5, 0)) // already on page 0
}
