package api

// Error codes carried in the extensions.code field of error envelopes.
const (
	// CodeValidationFailed covers bad query syntax, unknown fields, and
	// introspection attempts against a production build.
	CodeValidationFailed = "GRAPHQL_VALIDATION_FAILED"

	// CodeBadRequest covers malformed request envelopes: missing query
	// string, unparseable body, ambiguous operation selection.
	CodeBadRequest = "BAD_REQUEST"

	// CodeInternal covers resolver failures and the schema-failed state.
	CodeInternal = "INTERNAL_SERVER_ERROR"
)

// Request is the GraphQL request envelope, decoded from a POST body or
// assembled from GET query parameters.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Response is the GraphQL response envelope. Successful requests carry only
// data; failed requests carry only errors.
type Response struct {
	Data   interface{}     `json:"data,omitempty"`
	Errors []ResponseError `json:"errors,omitempty"`
}

// ResponseError is one entry of the errors array.
type ResponseError struct {
	Message    string                 `json:"message"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

// ErrorResponse builds a single-error envelope with the given code.
func ErrorResponse(code, message string) *Response {
	return &Response{
		Errors: []ResponseError{
			{
				Message:    message,
				Extensions: map[string]interface{}{"code": code},
			},
		},
	}
}

// UnavailableResponse is the fixed envelope served for every request while
// the schema is unavailable.
func UnavailableResponse() *Response {
	return ErrorResponse(CodeInternal, "Service unavailable.")
}
