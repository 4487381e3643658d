package schema

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-bootstrap-layout/pkg/model"
)

// Document wraps the form schema in an OpenAPI document: the schema is
// registered as component <form.ID> and referenced by a POST /forms/<form.ID>
// request body.
func Document(form model.FormModel, title, version string) *openapi3.T {
	ref := "#/components/schemas/" + form.ID

	operation := &openapi3.Operation{
		OperationID: "submit_" + form.ID,
		Summary:     "Submit " + form.ID,
		RequestBody: &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithRequired(true).
				WithJSONSchemaRef(openapi3.NewSchemaRef(ref, nil)),
		},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusNoContent, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().WithDescription("Saved"),
			}),
		),
	}

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/forms/"+form.ID, &openapi3.PathItem{Post: operation}),
		),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				form.ID: openapi3.NewSchemaRef("", ForForm(form)),
			},
		},
	}
}

// MarshalDocument renders Document as indented JSON.
func MarshalDocument(form model.FormModel, title, version string) ([]byte, error) {
	payload, err := json.MarshalIndent(Document(form, title, version), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: marshal document: %w", err)
	}
	return payload, nil
}
