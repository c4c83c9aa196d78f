package service

import (
	"context"

	"github.com/hrforge/cvclient/core/gql"
)

const (
	languagesQuery = `query Languages {
  languages { id iso2 name native_name }
}`

	createLanguageMutation = `mutation CreateLanguage($language: LanguageInput!) {
  createLanguage(language: $language) { id iso2 name native_name }
}`

	updateLanguageMutation = `mutation UpdateLanguage($languageId: ID!, $language: LanguageInput!) {
  updateLanguage(languageId: $languageId, language: $language) { id iso2 name native_name }
}`

	deleteLanguageMutation = `mutation DeleteLanguage($languageId: ID!) {
  deleteLanguage(languageId: $languageId) { affected }
}`
)

// LanguageInput carries the writable fields of a language.
type LanguageInput struct {
	ISO2       string `json:"iso2"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName,omitempty"`
}

// Languages exposes the language reference table over the authenticated
// client.
type Languages struct {
	dispatch Dispatcher
}

// NewLanguages creates the languages service.
func NewLanguages(dispatch Dispatcher) *Languages {
	return &Languages{dispatch: dispatch}
}

// List returns all languages.
func (s *Languages) List(ctx context.Context) ([]Language, error) {
	var out struct {
		Languages []Language `json:"languages"`
	}
	req := gql.Request{OperationName: "Languages", Query: languagesQuery}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return nil, err
	}
	return out.Languages, nil
}

// Create adds a new language and returns the created record.
func (s *Languages) Create(ctx context.Context, input LanguageInput) (Language, error) {
	var out struct {
		CreateLanguage Language `json:"createLanguage"`
	}
	req := gql.Request{
		OperationName: "CreateLanguage",
		Query:         createLanguageMutation,
		Variables:     map[string]any{"language": input},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return Language{}, err
	}
	return out.CreateLanguage, nil
}

// Update changes a language and returns the updated record.
func (s *Languages) Update(ctx context.Context, id string, input LanguageInput) (Language, error) {
	var out struct {
		UpdateLanguage Language `json:"updateLanguage"`
	}
	req := gql.Request{
		OperationName: "UpdateLanguage",
		Query:         updateLanguageMutation,
		Variables:     map[string]any{"languageId": id, "language": input},
	}
	if err := do(ctx, s.dispatch, req, &out); err != nil {
		return Language{}, err
	}
	return out.UpdateLanguage, nil
}

// Delete removes a language.
func (s *Languages) Delete(ctx context.Context, id string) error {
	var out struct {
		DeleteLanguage DeleteResult `json:"deleteLanguage"`
	}
	req := gql.Request{
		OperationName: "DeleteLanguage",
		Query:         deleteLanguageMutation,
		Variables:     map[string]any{"languageId": id},
	}
	return do(ctx, s.dispatch, req, &out)
}
