package service

import (
	"context"

	"github.com/hrforge/cvclient/core/gql"
)

const (
	positionsQuery = `query Positions {
  positions { id name }
}`

	createPositionMutation = `mutation CreatePosition($position: PositionInput!) {
  createPosition(position: $position) { id name }
}`

	updatePositionMutation = `mutation UpdatePosition($positionId: ID!, $position: PositionInput!) {
  updatePosition(positionId: $positionId, position: $position) { id name }
}`

	deletePositionMutation = `mutation DeletePosition($positionId: ID!) {
  deletePosition(positionId: $positionId) { affected }
}`
)

// PositionInput carries the writable fields of a position.
type PositionInput struct {
	Name string `json:"name"`
}

// Positions exposes the position reference table over the authenticated
// client.
type Positions struct {
	dispatch Dispatcher
}

// NewPositions creates the positions service.
func NewPositions(dispatch Dispatcher) *Positions {
	return &Positions{dispatch: dispatch}
}

// List returns all positions.
func (s *Positions) List(ctx context.Context) ([]Position, error) {
	var out struct {
		Positions []Position `json:"positions"`
	}
	req := gql.Request{OperationName: "Positions", Query: positionsQuery}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return nil, err
	}
	return out.Positions, nil
}

// Create adds a new position and returns the created record.
func (s *Positions) Create(ctx context.Context, input PositionInput) (Position, error) {
	var out struct {
		CreatePosition Position `json:"createPosition"`
	}
	req := gql.Request{
		OperationName: "CreatePosition",
		Query:         createPositionMutation,
		Variables:     map[string]any{"position": input},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return Position{}, err
	}
	return out.CreatePosition, nil
}

// Update changes a position and returns the updated record.
func (s *Positions) Update(ctx context.Context, id string, input PositionInput) (Position, error) {
	var out struct {
		UpdatePosition Position `json:"updatePosition"`
	}
	req := gql.Request{
		OperationName: "UpdatePosition",
		Query:         updatePositionMutation,
		Variables:     map[string]any{"positionId": id, "position": input},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return Position{}, err
	}
	return out.UpdatePosition, nil
}

// Delete removes a position.
func (s *Positions) Delete(ctx context.Context, id string) error {
	var out struct {
		DeletePosition DeleteResult `json:"deletePosition"`
	}
	req := gql.Request{
		OperationName: "DeletePosition",
		Query:         deletePositionMutation,
		Variables:     map[string]any{"positionId": id},
	}
	return do(ctx, s.dispatch, req, &out)
}
