package gql

import "errors"

var (
	// ErrEmptyEndpoint is returned by New when no endpoint URL is given.
	ErrEmptyEndpoint = errors.New("empty graphql endpoint")
	// ErrRequestEncoding is returned when the operation cannot be turned
	// into an HTTP request.
	ErrRequestEncoding = errors.New("failed to encode graphql request")
	// ErrResponseDecoding is returned when the server's response is not a
	// GraphQL envelope or the data payload does not fit the output type.
	ErrResponseDecoding = errors.New("failed to decode graphql response")
)
