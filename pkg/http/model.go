package http

// ErrorBody is the JSON shape of every non-2xx response: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}
