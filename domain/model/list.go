package model

// Identifiable is implemented by every entity that can be paged with a
// "lastKey|skip" token.
type Identifiable interface {
	Identity() string
}

// ListResult is the uniform page shape returned by every list and search operation.
// List keeps the store order; NextPageToken is opaque and must be replayed unchanged
// with the same filter and sort.
type ListResult[T any] struct {
	List          []T    `json:"list"`
	NextPageToken string `json:"nextPageToken,omitempty"`
	Total         *int64 `json:"total,omitempty"`
	Limit         *int   `json:"limit,omitempty"`
}

// EmptyList returns a page with no items and no continuation.
func EmptyList[T any]() *ListResult[T] {
	return &ListResult[T]{List: []T{}}
}

// PageRequest carries the paging and projection inputs shared by every list operation.
// A non-positive Limit selects the default page size.
type PageRequest struct {
	Limit         int      `form:"limit"`
	NextPageToken string   `form:"nextPageToken"`
	Fields        []string `form:"-"`
}
