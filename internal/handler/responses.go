package handler

// Shared response envelopes for list, pagination and bulk operations.

// CountResponse carries a total row count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// PaginatedResponse wraps one page of results.
type PaginatedResponse struct {
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
	Data  any   `json:"data"`
}

// BulkCreateResponse reports an all-or-nothing batch insert.
type BulkCreateResponse struct {
	CreatedCount int    `json:"created_count"`
	CreatedIDs   []uint `json:"created_ids"`
	Message      string `json:"message"`
}

// BulkDeleteResponse reports a best-effort batch delete.
type BulkDeleteResponse struct {
	DeletedCount int    `json:"deleted_count"`
	NotFound     []uint `json:"not_found"`
	Message      string `json:"message"`
}
