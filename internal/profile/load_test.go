package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducban/minimalist-cv/internal/schemas"
)

const minimalJSONDoc = `{
	"name": "Ban Nguyen",
	"about": "Engineer",
	"contact": {
		"email": "hi@ducban.dev",
		"social": [
			{"name": "GitHub", "url": "https://github.com/ducban"}
		]
	},
	"work": [{
		"company": "Acme",
		"title": "Engineer",
		"start": "2020",
		"end": "Present",
		"description": "Shipped the storefront."
	}],
	"skills": ["Go"]
}`

const minimalYAMLDoc = `name: Ban Nguyen
about: Engineer
contact:
  email: hi@ducban.dev
  social:
    - name: GitHub
      url: https://github.com/ducban
work:
  - company: Acme
    title: Engineer
    start: "2020"
    end: Present
    description: Shipped the storefront.
skills:
  - Go
`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_JSONDocument(t *testing.T) {
	p, err := Load(writeDoc(t, "profile.json", minimalJSONDoc))
	require.NoError(t, err)

	assert.Equal(t, "Ban Nguyen", p.Name)
	assert.Equal(t, "hi@ducban.dev", p.Contact.Email)
	require.Len(t, p.Work, 1)
	assert.Equal(t, Present, p.Work[0].End)
	assert.Equal(t, "Shipped the storefront.", p.Work[0].Description.Flatten())
	// Normalization applies to loaded documents as well.
	assert.NotNil(t, p.Projects)
	assert.NotNil(t, p.Work[0].Badges)
}

func TestLoad_YAMLDocument_MatchesJSON(t *testing.T) {
	fromJSON, err := Load(writeDoc(t, "profile.json", minimalJSONDoc))
	require.NoError(t, err)

	fromYAML, err := Load(writeDoc(t, "profile.yaml", minimalYAMLDoc))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML, "YAML and JSON forms of the same document should load identically")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profile document")
}

func TestParse_SchemaViolation_MissingName(t *testing.T) {
	_, err := Parse([]byte(`{"about": "Engineer"}`), ".json")
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %T", err)
	assert.Contains(t, validationErr.Error(), "name is required")
}

func TestParse_SchemaViolation_UnknownField(t *testing.T) {
	_, err := Parse([]byte(`{"name": "Ban Nguyen", "hobbies": []}`), ".json")
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestParse_ValidatorGate_BadEmail(t *testing.T) {
	doc := `{"name": "Ban Nguyen", "contact": {"email": "not-an-email"}}`
	_, err := Parse([]byte(doc), ".json")
	require.Error(t, err)

	// Passes the schema (plain string) but fails the struct validator.
	var validationErr *schemas.ValidationError
	assert.False(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "profile validation failed")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("name: [unclosed"), ".yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_StringShorthandSummary(t *testing.T) {
	doc := `{"name": "Ban Nguyen", "summary": "One line about me."}`
	p, err := Parse([]byte(doc), ".json")
	require.NoError(t, err)
	assert.Equal(t, "One line about me.", p.Summary.Flatten())
}

func TestParse_EmptyExtensionTreatedAsJSON(t *testing.T) {
	p, err := Parse([]byte(`{"name": "Ban Nguyen"}`), "")
	require.NoError(t, err)
	assert.Equal(t, "Ban Nguyen", p.Name)
}
