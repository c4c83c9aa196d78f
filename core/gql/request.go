package gql

import (
	"encoding/json"
	"net/http"
)

// Request is a single GraphQL operation to dispatch. OperationName is what
// the authorization layer matches against its exempt set, so callers should
// always declare it; requests without one are treated as requiring
// authentication.
type Request struct {
	OperationName string
	Query         string
	Variables     map[string]any

	// Header holds the headers resolved for this dispatch. It is created at
	// dispatch time, owned by the interceptor chain, and discarded once the
	// request settles. Caller-supplied entries are preserved; interceptors
	// may add or overwrite.
	Header http.Header
}

// Clone returns a copy of the request with an independent header map, so an
// interceptor can decorate it without mutating the caller's value.
func (r Request) Clone() Request {
	clone := r
	clone.Header = make(http.Header, len(r.Header))
	for k, v := range r.Header {
		clone.Header[k] = append([]string(nil), v...)
	}
	return clone
}

// payload is the GraphQL-over-HTTP request body.
type payload struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// response is the GraphQL-over-HTTP response envelope.
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []ServerError   `json:"errors"`
}

// ServerError is a single entry of the GraphQL errors array. Error returns
// the raw server message so categorization can match it verbatim.
type ServerError struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

func (e ServerError) Error() string { return e.Message }
