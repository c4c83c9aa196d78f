package service

import (
	"context"
	"strconv"

	"github.com/hrforge/cvclient/core/apierror"
	"github.com/hrforge/cvclient/core/gql"
)

// Dispatcher executes a GraphQL request and decodes the data payload into
// out. In production this is the authenticated gql.Client.
type Dispatcher interface {
	Do(ctx context.Context, req gql.Request, out any) error
}

// do runs a request through the dispatcher and categorizes any failure, so
// every service method surfaces an *apierror.Error.
func do(ctx context.Context, d Dispatcher, req gql.Request, out any) error {
	if err := d.Do(ctx, req, out); err != nil {
		return apierror.Categorize(err)
	}
	return nil
}

// parseID validates an opaque entity identifier. The API stores entity keys
// as 32-bit integers, so anything non-numeric or out of range can never
// exist; such IDs map to the given not-found category without a round trip.
func parseID(id string, notFound apierror.Kind) (int32, error) {
	n, err := strconv.ParseInt(id, 10, 32)
	if err != nil || n < 0 {
		return 0, apierror.New(notFound, err)
	}
	return int32(n), nil
}

// DeleteResult reports how many rows a delete mutation affected.
type DeleteResult struct {
	Affected int `json:"affected"`
}
