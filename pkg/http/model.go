package http

// Envelope is the standard API response body. Every endpoint reports ok plus
// either its payload fields or an error message, never both.
type Envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ValidationError represents validation error detail.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"state"`
	Message string                 `json:"message,omitempty" example:"State is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

// ValidationErrorResponse is the 400 body for malformed requests.
type ValidationErrorResponse struct {
	OK     bool              `json:"ok"`
	Error  string            `json:"error"`
	Fields []ValidationError `json:"fields,omitempty"`
}
