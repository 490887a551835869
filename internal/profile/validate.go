package profile

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the struct-level constraints (required names, well-formed
// URLs and email). Document-shape validation against the JSON schema happens
// earlier, in Load; this is the second, typed gate.
func (p *Profile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	return nil
}
