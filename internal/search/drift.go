package search

// NeedsDriftCorrection reports whether a page response indicates the
// requested index drifted past the end of the result set: no rows came
// back even though rows exist and we asked for a page beyond the first.
// This happens after deletes shrink the set. Callers retry exactly once
// with the previous page index; a second empty response is rendered
// as-is.
func NeedsDriftCorrection(contentLen int, totalElements int64, pageIdx int) bool {
	return contentLen == 0 && totalElements > 0 && pageIdx > 0
}
