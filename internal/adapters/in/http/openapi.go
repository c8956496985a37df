package http

import (
	"context"
	"fmt"

	"shipping/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// OpenAPIJSON parses and validates the embedded OpenAPI contract and returns
// it rendered as JSON. Called once at server construction so a broken contract
// fails startup instead of the first request.
func OpenAPIJSON() ([]byte, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(api.Spec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse openapi document: %w", err)
	}

	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("openapi document is invalid: %w", err)
	}

	rendered, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to render openapi document: %w", err)
	}

	return rendered, nil
}
