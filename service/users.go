package service

import (
	"context"

	"github.com/hrforge/cvclient/core/apierror"
	"github.com/hrforge/cvclient/core/gql"
)

const (
	usersQuery = `query Users {
  users {
    id
    email
    profile { first_name last_name full_name avatar }
    department_name
    position_name
  }
}`

	userQuery = `query User($userId: ID!) {
  user(userId: $userId) {
    id
    email
    profile { first_name last_name full_name avatar }
    department_name
    position_name
  }
}`

	updateUserMutation = `mutation UpdateUser($userId: ID!, $user: UpdateUserInput!) {
  updateUser(userId: $userId, user: $user) {
    id
    email
    profile { first_name last_name full_name avatar }
    department_name
    position_name
  }
}`

	deleteUserMutation = `mutation DeleteUser($userId: ID!) {
  deleteUser(userId: $userId) { affected }
}`
)

// UpdateUserInput carries the editable fields of a user account.
type UpdateUserInput struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DepartmentID string `json:"departmentId,omitempty"`
	PositionID   string `json:"positionId,omitempty"`
}

// Users exposes account queries and mutations over the authenticated client.
type Users struct {
	dispatch Dispatcher
}

// NewUsers creates the users service.
func NewUsers(dispatch Dispatcher) *Users {
	return &Users{dispatch: dispatch}
}

// List returns all accounts.
func (s *Users) List(ctx context.Context) ([]User, error) {
	var out struct {
		Users []User `json:"users"`
	}
	req := gql.Request{OperationName: "Users", Query: usersQuery}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// Get returns a single account. IDs that cannot name an existing account are
// rejected locally with the not-found category.
func (s *Users) Get(ctx context.Context, id string) (User, error) {
	userID, err := parseID(id, apierror.KindUserNotFound)
	if err != nil {
		return User{}, err
	}

	var out struct {
		User User `json:"user"`
	}
	req := gql.Request{
		OperationName: "User",
		Query:         userQuery,
		Variables:     map[string]any{"userId": userID},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return User{}, err
	}
	return out.User, nil
}

// Update changes an account's editable fields and returns the updated record.
func (s *Users) Update(ctx context.Context, id string, input UpdateUserInput) (User, error) {
	userID, err := parseID(id, apierror.KindUserNotFound)
	if err != nil {
		return User{}, err
	}

	var out struct {
		UpdateUser User `json:"updateUser"`
	}
	req := gql.Request{
		OperationName: "UpdateUser",
		Query:         updateUserMutation,
		Variables:     map[string]any{"userId": userID, "user": input},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return User{}, err
	}
	return out.UpdateUser, nil
}

// Delete removes an account.
func (s *Users) Delete(ctx context.Context, id string) error {
	userID, err := parseID(id, apierror.KindUserNotFound)
	if err != nil {
		return err
	}

	var out struct {
		DeleteUser DeleteResult `json:"deleteUser"`
	}
	req := gql.Request{
		OperationName: "DeleteUser",
		Query:         deleteUserMutation,
		Variables:     map[string]any{"userId": userID},
	}
	return do(ctx, s.dispatch, req, &out)
}
