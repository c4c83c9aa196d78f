// Package gql is a GraphQL-over-HTTP client with an interceptor pipeline.
//
// Every operation is a single POST of {query, operationName, variables}.
// Interceptors decorate the dispatch function in registration order and are
// how cross-cutting concerns (correlation IDs, logging, authorization) hook
// into the request path without the client knowing about them:
//
//	client, err := gql.New(endpoint,
//		gql.WithInterceptors(
//			gql.RequestID(),
//			gql.Logging(log),
//			authenticator.Authorize(),
//		),
//	)
//
//	var out struct {
//		User User `json:"user"`
//	}
//	err = client.Do(ctx, gql.Request{
//		OperationName: "USER",
//		Query:         userQuery,
//		Variables:     map[string]any{"userId": id},
//	}, &out)
//
// Failure surface: transport errors (no response at all) come back already
// categorized as network-unavailable; a GraphQL errors array comes back as
// the first server message verbatim, for the caller to categorize. The
// client never retries an operation.
package gql
