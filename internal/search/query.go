package search

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
)

// Query is the free-form filter map a list view edits. Values may be
// strings, numbers, bools, or slices for repeated-key filters.
type Query map[string]any

// Sanitize returns a copy of q with empty-string, nil, and empty-slice
// values removed. Empty filters must not reach the backend at all or
// they over-constrain its search.
func Sanitize(q Query) Query {
	out := make(Query, len(q))
	for k, v := range q {
		if isEmpty(v) {
			continue
		}
		out[k] = v
	}
	return out
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case *string:
		return t == nil || *t == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Encode serializes a sanitized query as URL values. Slices become
// repeated keys, matching the backend's arrayFormat=repeat convention.
func Encode(q Query, pageIdx, size int) url.Values {
	vals := url.Values{}
	for k, v := range Sanitize(q) {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				vals.Add(k, stringify(rv.Index(i).Interface()))
			}
			continue
		}
		vals.Add(k, stringify(v))
	}
	vals.Set("page", strconv.Itoa(pageIdx))
	vals.Set("size", strconv.Itoa(size))
	return vals
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}
