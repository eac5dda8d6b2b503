package domain

// ListOpts holds cursor pagination parameters for content listings.
type ListOpts struct {
	Limit int
	After int64
}

// Page is one page of a cursor-paginated listing.
type Page[T any] struct {
	Results []T
	After   int64
	HasMore bool
}
