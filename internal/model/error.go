package model

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}
