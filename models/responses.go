package models

// Page is one page of a paginated listing. Next and Previous are relative
// URLs of the neighbouring pages, or null at the edges.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DetailResponse is the body of probe endpoints and simple acknowledgements.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// GetOrCreateResult reports a normalized catalog entity together with whether
// the call inserted it.
type GetOrCreateResult[T any] struct {
	Entity  T
	Created bool
}
