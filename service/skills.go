package service

import (
	"context"

	"github.com/hrforge/cvclient/core/gql"
)

const (
	skillsQuery = `query Skills {
  skills { id name category }
}`

	createSkillMutation = `mutation CreateSkill($skill: SkillInput!) {
  createSkill(skill: $skill) { id name category }
}`

	updateSkillMutation = `mutation UpdateSkill($skillId: ID!, $skill: SkillInput!) {
  updateSkill(skillId: $skillId, skill: $skill) { id name category }
}`

	deleteSkillMutation = `mutation DeleteSkill($skillId: ID!) {
  deleteSkill(skillId: $skillId) { affected }
}`
)

// SkillInput carries the writable fields of a skill.
type SkillInput struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Skills exposes the skill reference table over the authenticated client.
type Skills struct {
	dispatch Dispatcher
}

// NewSkills creates the skills service.
func NewSkills(dispatch Dispatcher) *Skills {
	return &Skills{dispatch: dispatch}
}

// List returns all skills.
func (s *Skills) List(ctx context.Context) ([]Skill, error) {
	var out struct {
		Skills []Skill `json:"skills"`
	}
	req := gql.Request{OperationName: "Skills", Query: skillsQuery}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return nil, err
	}
	return out.Skills, nil
}

// Create adds a new skill and returns the created record.
func (s *Skills) Create(ctx context.Context, input SkillInput) (Skill, error) {
	var out struct {
		CreateSkill Skill `json:"createSkill"`
	}
	req := gql.Request{
		OperationName: "CreateSkill",
		Query:         createSkillMutation,
		Variables:     map[string]any{"skill": input},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return Skill{}, err
	}
	return out.CreateSkill, nil
}

// Update changes a skill and returns the updated record.
func (s *Skills) Update(ctx context.Context, id string, input SkillInput) (Skill, error) {
	var out struct {
		UpdateSkill Skill `json:"updateSkill"`
	}
	req := gql.Request{
		OperationName: "UpdateSkill",
		Query:         updateSkillMutation,
		Variables:     map[string]any{"skillId": id, "skill": input},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return Skill{}, err
	}
	return out.UpdateSkill, nil
}

// Delete removes a skill.
func (s *Skills) Delete(ctx context.Context, id string) error {
	var out struct {
		DeleteSkill DeleteResult `json:"deleteSkill"`
	}
	req := gql.Request{
		OperationName: "DeleteSkill",
		Query:         deleteSkillMutation,
		Variables:     map[string]any{"skillId": id},
	}
	return do(ctx, s.dispatch, req, &out)
}
