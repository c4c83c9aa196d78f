package service

import (
	"context"

	"github.com/hrforge/cvclient/core/apierror"
	"github.com/hrforge/cvclient/core/gql"
)

const (
	cvsQuery = `query CVs {
  cvs {
    id
    name
    education
    description
    user { id }
  }
}`

	cvQuery = `query CV($cvId: ID!) {
  cv(cvId: $cvId) {
    id
    name
    education
    description
    user { id }
  }
}`

	createCVMutation = `mutation CreateCv($cv: CvInput!) {
  createCv(cv: $cv) {
    id
    name
    education
    description
    user { id }
  }
}`

	updateCVMutation = `mutation UpdateCv($cvId: ID!, $cv: CvInput!) {
  updateCv(cvId: $cvId, cv: $cv) {
    id
    name
    education
    description
    user { id }
  }
}`

	deleteCVMutation = `mutation DeleteCv($cvId: ID!) {
  deleteCv(cvId: $cvId) { affected }
}`
)

// CVInput carries the writable fields of a CV.
type CVInput struct {
	Name        string `json:"name"`
	Education   string `json:"education,omitempty"`
	Description string `json:"description"`
	UserID      string `json:"userId,omitempty"`
}

// CVs exposes curriculum vitae queries and mutations over the authenticated
// client.
type CVs struct {
	dispatch Dispatcher
}

// NewCVs creates the CVs service.
func NewCVs(dispatch Dispatcher) *CVs {
	return &CVs{dispatch: dispatch}
}

// List returns all CVs.
func (s *CVs) List(ctx context.Context) ([]CV, error) {
	var out struct {
		CVs []CV `json:"cvs"`
	}
	req := gql.Request{OperationName: "CVs", Query: cvsQuery}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return nil, err
	}
	return out.CVs, nil
}

// Get returns a single CV. IDs that cannot name an existing CV are rejected
// locally with the not-found category.
func (s *CVs) Get(ctx context.Context, id string) (CV, error) {
	cvID, err := parseID(id, apierror.KindCVNotFound)
	if err != nil {
		return CV{}, err
	}

	var out struct {
		CV CV `json:"cv"`
	}
	req := gql.Request{
		OperationName: "CV",
		Query:         cvQuery,
		Variables:     map[string]any{"cvId": cvID},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return CV{}, err
	}
	return out.CV, nil
}

// Create adds a new CV and returns the created record.
func (s *CVs) Create(ctx context.Context, input CVInput) (CV, error) {
	var out struct {
		CreateCV CV `json:"createCv"`
	}
	req := gql.Request{
		OperationName: "CreateCv",
		Query:         createCVMutation,
		Variables:     map[string]any{"cv": input},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return CV{}, err
	}
	return out.CreateCV, nil
}

// Update changes a CV and returns the updated record.
func (s *CVs) Update(ctx context.Context, id string, input CVInput) (CV, error) {
	cvID, err := parseID(id, apierror.KindCVNotFound)
	if err != nil {
		return CV{}, err
	}

	var out struct {
		UpdateCV CV `json:"updateCv"`
	}
	req := gql.Request{
		OperationName: "UpdateCv",
		Query:         updateCVMutation,
		Variables:     map[string]any{"cvId": cvID, "cv": input},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return CV{}, err
	}
	return out.UpdateCV, nil
}

// Delete removes a CV.
func (s *CVs) Delete(ctx context.Context, id string) error {
	cvID, err := parseID(id, apierror.KindCVNotFound)
	if err != nil {
		return err
	}

	var out struct {
		DeleteCV DeleteResult `json:"deleteCv"`
	}
	req := gql.Request{
		OperationName: "DeleteCv",
		Query:         deleteCVMutation,
		Variables:     map[string]any{"cvId": cvID},
	}
	return do(ctx, s.dispatch, req, &out)
}
