package page

import "encoding/json"

// Page is the one canonical pagination shape used inside the gateway.
// The A/S backend is not consistent about its envelope: some endpoints
// report the current page as "number", others as "currentPage", and
// "first"/"last" are sometimes missing entirely. Everything coming off
// the wire goes through Normalize before any other code sees it.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// Envelope is the raw wire shape with every naming variant the backend
// has been observed to use.
type Envelope struct {
	Content       json.RawMessage `json:"content"`
	Number        *int            `json:"number"`
	CurrentPage   *int            `json:"currentPage"`
	Page          *int            `json:"page"`
	Size          *int            `json:"size"`
	TotalPages    int             `json:"totalPages"`
	TotalElements int64           `json:"totalElements"`
	First         *bool           `json:"first"`
	Last          *bool           `json:"last"`
}

// Normalize decodes a raw envelope into the canonical Page shape.
func Normalize[T any](raw []byte) (Page[T], error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Page[T]{}, err
	}
	return FromEnvelope[T](env)
}

// FromEnvelope resolves the naming variants of an already-decoded envelope.
func FromEnvelope[T any](env Envelope) (Page[T], error) {
	p := Page[T]{
		TotalPages:    env.TotalPages,
		TotalElements: env.TotalElements,
		First:         true,
		Last:          true,
	}

	switch {
	case env.Number != nil:
		p.Number = *env.Number
	case env.CurrentPage != nil:
		p.Number = *env.CurrentPage
	case env.Page != nil:
		p.Number = *env.Page
	}
	if env.Size != nil {
		p.Size = *env.Size
	}
	if env.First != nil {
		p.First = *env.First
	}
	if env.Last != nil {
		p.Last = *env.Last
	}

	if len(env.Content) > 0 {
		if err := json.Unmarshal(env.Content, &p.Content); err != nil {
			return Page[T]{}, err
		}
	}
	if p.Content == nil {
		p.Content = []T{}
	}
	return p, nil
}

// Empty returns a zeroed page, used when a fetch fails and the table
// must not keep stale rows next to stale totals.
func Empty[T any]() Page[T] {
	return Page[T]{Content: []T{}, First: true, Last: true}
}
