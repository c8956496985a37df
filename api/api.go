// Package api holds the OpenAPI contract of the shipping service.
package api

import _ "embed"

// Spec is the raw OpenAPI document, embedded so the binary can serve and
// validate it without filesystem access.
//
//go:embed openapi.yml
var Spec []byte
