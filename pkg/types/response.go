package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ListEnvelope is the success envelope for collections.
type ListEnvelope struct {
	Data       any    `json:"data"`
	Count      int    `json:"count"`
	NextCursor string `json:"next_cursor,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
