package service

import (
	"context"

	"github.com/hrforge/cvclient/core/gql"
)

const (
	projectsQuery = `query Projects {
  projects { id name internal_name domain description start_date end_date }
}`

	projectQuery = `query Project($projectId: ID!) {
  project(projectId: $projectId) { id name internal_name domain description start_date end_date }
}`

	createProjectMutation = `mutation CreateProject($project: ProjectInput!) {
  createProject(project: $project) { id name internal_name domain description start_date end_date }
}`

	updateProjectMutation = `mutation UpdateProject($projectId: ID!, $project: ProjectInput!) {
  updateProject(projectId: $projectId, project: $project) { id name internal_name domain description start_date end_date }
}`

	deleteProjectMutation = `mutation DeleteProject($projectId: ID!) {
  deleteProject(projectId: $projectId) { affected }
}`
)

// ProjectInput carries the writable fields of a project.
type ProjectInput struct {
	Name         string `json:"name"`
	InternalName string `json:"internalName,omitempty"`
	Domain       string `json:"domain"`
	Description  string `json:"description"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
}

// Projects exposes project queries and mutations over the authenticated
// client.
type Projects struct {
	dispatch Dispatcher
}

// NewProjects creates the projects service.
func NewProjects(dispatch Dispatcher) *Projects {
	return &Projects{dispatch: dispatch}
}

// List returns all projects.
func (s *Projects) List(ctx context.Context) ([]Project, error) {
	var out struct {
		Projects []Project `json:"projects"`
	}
	req := gql.Request{OperationName: "Projects", Query: projectsQuery}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

// Get returns a single project.
func (s *Projects) Get(ctx context.Context, id string) (Project, error) {
	var out struct {
		Project Project `json:"project"`
	}
	req := gql.Request{
		OperationName: "Project",
		Query:         projectQuery,
		Variables:     map[string]any{"projectId": id},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return Project{}, err
	}
	return out.Project, nil
}

// Create adds a new project and returns the created record.
func (s *Projects) Create(ctx context.Context, input ProjectInput) (Project, error) {
	var out struct {
		CreateProject Project `json:"createProject"`
	}
	req := gql.Request{
		OperationName: "CreateProject",
		Query:         createProjectMutation,
		Variables:     map[string]any{"project": input},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return Project{}, err
	}
	return out.CreateProject, nil
}

// Update changes a project and returns the updated record.
func (s *Projects) Update(ctx context.Context, id string, input ProjectInput) (Project, error) {
	var out struct {
		UpdateProject Project `json:"updateProject"`
	}
	req := gql.Request{
		OperationName: "UpdateProject",
		Query:         updateProjectMutation,
		Variables:     map[string]any{"projectId": id, "project": input},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return Project{}, err
	}
	return out.UpdateProject, nil
}

// Delete removes a project.
func (s *Projects) Delete(ctx context.Context, id string) error {
	var out struct {
		DeleteProject DeleteResult `json:"deleteProject"`
	}
	req := gql.Request{
		OperationName: "DeleteProject",
		Query:         deleteProjectMutation,
		Variables:     map[string]any{"projectId": id},
	}
	return do(ctx, s.dispatch, req, &out)
}
