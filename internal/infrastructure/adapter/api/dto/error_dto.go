package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse carries a bare message body, used where the public
// contract specifies exactly one message field and nothing else
type MessageResponse struct {
	Message string `json:"message"`
}
