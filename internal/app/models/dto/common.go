package dto

// PaginationInfo mirrors the paging envelope the backends attach to list
// responses. TotalPages may be absent; the listing controllers derive it
// from TotalItems when it is zero.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// SuccessResponse represents a bare acknowledgement from a mutation
// endpoint.
type SuccessResponse struct {
	Message string `json:"message"`
}
