// Package schemas carries the JSON Schema for profile documents and the
// entry point for validating a document against it. The schema file is
// embedded so validation works from any working directory.
package schemas

import (
	_ "embed"

	internal "github.com/ducban/minimalist-cv/internal/schemas"
)

// ProfileSchema is the embedded JSON Schema (draft-07) that profile
// documents must satisfy before they are decoded.
//
//go:embed profile.schema.json
var ProfileSchema string

// ValidateProfile checks a raw profile document (JSON bytes) against the
// embedded schema. On failure it returns *schemas.ValidationError with one
// entry per offending field.
func ValidateProfile(document []byte) error {
	return internal.ValidateJSONString(ProfileSchema, string(document))
}
