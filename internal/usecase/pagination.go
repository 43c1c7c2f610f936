package usecase

// ListParams is a raw page request as received from a caller. Page is 1-indexed;
// zero values mean "use the default".
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// Pagination describes where a page sits within the full result set.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// ListResult is one page of records plus its pagination envelope.
type ListResult[E any] struct {
	Items      []*E
	Pagination Pagination
}
