package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrforge/cvclient/core/apierror"
	"github.com/hrforge/cvclient/core/gql"
	"github.com/hrforge/cvclient/service"
)

// fakeDispatcher records requests and decodes a canned JSON document into
// out, standing in for the authenticated client.
type fakeDispatcher struct {
	requests []gql.Request
	response string
	err      error
}

func (f *fakeDispatcher) Do(_ context.Context, req gql.Request, out any) error {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return f.err
	}
	if f.response == "" || out == nil {
		return nil
	}
	return json.Unmarshal([]byte(f.response), out)
}

func TestUsers_List(t *testing.T) {
	t.Parallel()

	dispatch := &fakeDispatcher{response: `{
		"users": [
			{"id": "1", "email": "a@b.c", "profile": {"first_name": "Ann", "last_name": "Bow", "full_name": "Ann Bow", "avatar": ""}, "department_name": "Core", "position_name": "Engineer"},
			{"id": "2", "email": "d@e.f", "profile": {}, "department_name": "", "position_name": ""}
		]
	}`}
	users := service.NewUsers(dispatch)

	got, err := users.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a@b.c", got[0].Email)
	assert.Equal(t, "Ann Bow", got[0].Profile.FullName)

	require.Len(t, dispatch.requests, 1)
	assert.Equal(t, "Users", dispatch.requests[0].OperationName)
}

func TestUsers_Get(t *testing.T) {
	t.Parallel()

	t.Run("valid id is sent as int32", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{response: `{"user": {"id": "42", "email": "a@b.c"}}`}
		users := service.NewUsers(dispatch)

		got, err := users.Get(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, "42", got.ID)

		require.Len(t, dispatch.requests, 1)
		assert.Equal(t, "User", dispatch.requests[0].OperationName)
		assert.Equal(t, int32(42), dispatch.requests[0].Variables["userId"])
	})

	t.Run("non-numeric id fails locally", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{}
		users := service.NewUsers(dispatch)

		_, err := users.Get(context.Background(), "abc")
		assert.True(t, apierror.IsKind(err, apierror.KindUserNotFound))
		assert.Empty(t, dispatch.requests, "invalid IDs must not reach the network")
	})

	t.Run("id beyond int32 fails locally", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{}
		users := service.NewUsers(dispatch)

		_, err := users.Get(context.Background(), "2147483648")
		assert.True(t, apierror.IsKind(err, apierror.KindUserNotFound))
		assert.Empty(t, dispatch.requests)
	})

	t.Run("server null user maps to the not-found category", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{err: errors.New("Cannot return null for non-nullable field Query.user.")}
		users := service.NewUsers(dispatch)

		_, err := users.Get(context.Background(), "7")
		assert.True(t, apierror.IsKind(err, apierror.KindUserNotFound))
	})
}

func TestUsers_UpdateDelete(t *testing.T) {
	t.Parallel()

	t.Run("update returns the new record", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{response: `{"updateUser": {"id": "7", "profile": {"first_name": "New"}}}`}
		users := service.NewUsers(dispatch)

		got, err := users.Update(context.Background(), "7", service.UpdateUserInput{FirstName: "New"})
		require.NoError(t, err)
		assert.Equal(t, "New", got.Profile.FirstName)

		require.Len(t, dispatch.requests, 1)
		assert.Equal(t, "UpdateUser", dispatch.requests[0].OperationName)
	})

	t.Run("delete guards the id", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{}
		users := service.NewUsers(dispatch)

		err := users.Delete(context.Background(), "-3")
		assert.True(t, apierror.IsKind(err, apierror.KindUserNotFound))
		assert.Empty(t, dispatch.requests)
	})
}

func TestCVs(t *testing.T) {
	t.Parallel()

	t.Run("get guards with the cv category", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{}
		cvs := service.NewCVs(dispatch)

		_, err := cvs.Get(context.Background(), "not-a-number")
		assert.True(t, apierror.IsKind(err, apierror.KindCVNotFound))
		assert.Empty(t, dispatch.requests)
	})

	t.Run("create sends the input", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{response: `{"createCv": {"id": "3", "name": "Backend CV"}}`}
		cvs := service.NewCVs(dispatch)

		got, err := cvs.Create(context.Background(), service.CVInput{Name: "Backend CV", Description: "Go services"})
		require.NoError(t, err)
		assert.Equal(t, "Backend CV", got.Name)

		require.Len(t, dispatch.requests, 1)
		assert.Equal(t, "CreateCv", dispatch.requests[0].OperationName)
		input, ok := dispatch.requests[0].Variables["cv"].(service.CVInput)
		require.True(t, ok)
		assert.Equal(t, "Backend CV", input.Name)
	})

	t.Run("server null cv maps to the not-found category", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{err: errors.New("Cannot return null for non-nullable field Query.cv.")}
		cvs := service.NewCVs(dispatch)

		_, err := cvs.Get(context.Background(), "9")
		assert.True(t, apierror.IsKind(err, apierror.KindCVNotFound))
	})
}

func TestReferenceTables(t *testing.T) {
	t.Parallel()

	t.Run("skills list", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{response: `{"skills": [{"id": "1", "name": "Go", "category": "Backend"}]}`}
		skills := service.NewSkills(dispatch)

		got, err := skills.List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Go", got[0].Name)
	})

	t.Run("languages create", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{response: `{"createLanguage": {"id": "4", "iso2": "de", "name": "German", "native_name": "Deutsch"}}`}
		languages := service.NewLanguages(dispatch)

		got, err := languages.Create(context.Background(), service.LanguageInput{ISO2: "de", Name: "German"})
		require.NoError(t, err)
		assert.Equal(t, "Deutsch", got.NativeName)
		assert.Equal(t, "CreateLanguage", dispatch.requests[0].OperationName)
	})

	t.Run("departments update", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{response: `{"updateDepartment": {"id": "2", "name": "Platform"}}`}
		departments := service.NewDepartments(dispatch)

		got, err := departments.Update(context.Background(), "2", service.DepartmentInput{Name: "Platform"})
		require.NoError(t, err)
		assert.Equal(t, "Platform", got.Name)
	})

	t.Run("positions delete", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{response: `{"deletePosition": {"affected": 1}}`}
		positions := service.NewPositions(dispatch)

		require.NoError(t, positions.Delete(context.Background(), "5"))
		assert.Equal(t, "DeletePosition", dispatch.requests[0].OperationName)
	})

	t.Run("projects get", func(t *testing.T) {
		t.Parallel()

		dispatch := &fakeDispatcher{response: `{"project": {"id": "11", "name": "HR Forge", "domain": "HR"}}`}
		projects := service.NewProjects(dispatch)

		got, err := projects.Get(context.Background(), "11")
		require.NoError(t, err)
		assert.Equal(t, "HR Forge", got.Name)
	})
}

func TestDispatchFailureIsCategorized(t *testing.T) {
	t.Parallel()

	dispatch := &fakeDispatcher{err: errors.New("boom")}
	skills := service.NewSkills(dispatch)

	_, err := skills.List(context.Background())
	assert.True(t, apierror.IsKind(err, apierror.KindUnexpected))
}
