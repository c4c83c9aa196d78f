package service

import (
	"context"

	"github.com/hrforge/cvclient/core/gql"
)

const (
	departmentsQuery = `query Departments {
  departments { id name }
}`

	createDepartmentMutation = `mutation CreateDepartment($department: DepartmentInput!) {
  createDepartment(department: $department) { id name }
}`

	updateDepartmentMutation = `mutation UpdateDepartment($departmentId: ID!, $department: DepartmentInput!) {
  updateDepartment(departmentId: $departmentId, department: $department) { id name }
}`

	deleteDepartmentMutation = `mutation DeleteDepartment($departmentId: ID!) {
  deleteDepartment(departmentId: $departmentId) { affected }
}`
)

// DepartmentInput carries the writable fields of a department.
type DepartmentInput struct {
	Name string `json:"name"`
}

// Departments exposes the department reference table over the authenticated
// client.
type Departments struct {
	dispatch Dispatcher
}

// NewDepartments creates the departments service.
func NewDepartments(dispatch Dispatcher) *Departments {
	return &Departments{dispatch: dispatch}
}

// List returns all departments.
func (s *Departments) List(ctx context.Context) ([]Department, error) {
	var out struct {
		Departments []Department `json:"departments"`
	}
	req := gql.Request{OperationName: "Departments", Query: departmentsQuery}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return nil, err
	}
	return out.Departments, nil
}

// Create adds a new department and returns the created record.
func (s *Departments) Create(ctx context.Context, input DepartmentInput) (Department, error) {
	var out struct {
		CreateDepartment Department `json:"createDepartment"`
	}
	req := gql.Request{
		OperationName: "CreateDepartment",
		Query:         createDepartmentMutation,
		Variables:     map[string]any{"department": input},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return Department{}, err
	}
	return out.CreateDepartment, nil
}

// Update changes a department and returns the updated record.
func (s *Departments) Update(ctx context.Context, id string, input DepartmentInput) (Department, error) {
	var out struct {
		UpdateDepartment Department `json:"updateDepartment"`
	}
	req := gql.Request{
		OperationName: "UpdateDepartment",
		Query:         updateDepartmentMutation,
		Variables:     map[string]any{"departmentId": id, "department": input},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return Department{}, err
	}
	return out.UpdateDepartment, nil
}

// Delete removes a department.
func (s *Departments) Delete(ctx context.Context, id string) error {
	var out struct {
		DeleteDepartment DeleteResult `json:"deleteDepartment"`
	}
	req := gql.Request{
		OperationName: "DeleteDepartment",
		Query:         deleteDepartmentMutation,
		Variables:     map[string]any{"departmentId": id},
	}
	return do(ctx, s.dispatch, req, &out)
}
