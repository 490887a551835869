package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ducban/minimalist-cv/internal/profile"
	"github.com/ducban/minimalist-cv/internal/wire"
)

func fixtureFetch() ProfileFunc {
	record := wire.FromProfile(profile.Default())
	return func(context.Context) (*wire.Profile, error) {
		return record, nil
	}
}

func newTestService(production bool) *Service {
	return New(Config{
		Fetch:      fixtureFetch(),
		Production: production,
		Logger:     zap.NewNop(),
	})
}

func errCode(t *testing.T, resp *Response) string {
	t.Helper()
	require.NotEmpty(t, resp.Errors)
	code, ok := resp.Errors[0].Extensions["code"].(string)
	require.True(t, ok, "error should carry a string extensions.code")
	return code
}

func TestExecute_FetchName_ExactEnvelope(t *testing.T) {
	svc := newTestService(false)

	resp, status := svc.Execute(context.Background(), &Request{Query: "{ fetchProfile { name } }"})
	require.Equal(t, http.StatusOK, status)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"data":{"fetchProfile":{"name":"Ban Nguyen"}}}`, string(raw))
}

func TestExecute_NestedSelection(t *testing.T) {
	svc := newTestService(false)

	query := `{
		fetchProfile {
			name
			contact { email social { name url } }
			work { company end badges description }
			skills
		}
	}`
	resp, status := svc.Execute(context.Background(), &Request{Query: query})
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, resp.Errors)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	record, ok := data["fetchProfile"].(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, "Ban Nguyen", record["name"])

	work, ok := record["work"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, work)
	first, ok := work[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Present", first["end"], "the Present sentinel crosses the wire verbatim")
	assert.IsType(t, "", first["description"], "rich descriptions arrive as plain strings")
}

func TestExecute_UnknownField(t *testing.T) {
	svc := newTestService(false)

	resp, status := svc.Execute(context.Background(), &Request{Query: "{ fetchProfile { unknownField } }"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, CodeValidationFailed, errCode(t, resp))
	assert.Nil(t, resp.Data)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"data"`, "failure envelope must not carry a data key")
}

func TestExecute_SyntaxError(t *testing.T) {
	svc := newTestService(false)

	resp, status := svc.Execute(context.Background(), &Request{Query: "{ fetchProfile {"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, CodeValidationFailed, errCode(t, resp))
}

func TestExecute_EmptyQuery(t *testing.T) {
	svc := newTestService(false)

	for _, query := range []string{"", "   \n\t"} {
		resp, status := svc.Execute(context.Background(), &Request{Query: query})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, CodeBadRequest, errCode(t, resp))
	}
}

func TestExecute_MultipleOperations(t *testing.T) {
	svc := newTestService(false)
	query := `
		query A { fetchProfile { name } }
		query B { fetchProfile { initials } }
	`

	resp, status := svc.Execute(context.Background(), &Request{Query: query})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, CodeBadRequest, errCode(t, resp))

	resp, status = svc.Execute(context.Background(), &Request{Query: query, OperationName: "B"})
	require.Equal(t, http.StatusOK, status)
	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"data":{"fetchProfile":{"initials":"BN"}}}`, string(raw))
}

func TestExecute_ResolverFailure(t *testing.T) {
	boom := func(context.Context) (*wire.Profile, error) {
		return nil, errors.New("record store exploded")
	}

	dev := New(Config{Fetch: boom, Logger: zap.NewNop()})
	resp, status := dev.Execute(context.Background(), &Request{Query: "{ fetchProfile { name } }"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, CodeInternal, errCode(t, resp))
	assert.Contains(t, resp.Errors[0].Message, "record store exploded",
		"development builds keep the underlying message")

	prod := New(Config{Fetch: boom, Production: true, Logger: zap.NewNop()})
	resp, status = prod.Execute(context.Background(), &Request{Query: "{ fetchProfile { name } }"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, CodeInternal, errCode(t, resp))
	assert.Equal(t, "Internal server error", resp.Errors[0].Message,
		"production builds suppress internal detail")
}

func TestExecute_IntrospectionAllowedInDevelopment(t *testing.T) {
	svc := newTestService(false)

	resp, status := svc.Execute(context.Background(),
		&Request{Query: "{ __schema { queryType { name } } }"})
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, resp.Errors)
	assert.NotNil(t, resp.Data)
}

func TestExecute_IntrospectionBlockedInProduction(t *testing.T) {
	svc := newTestService(true)

	queries := []string{
		"{ __schema { queryType { name } } }",
		`{ __type(name: "Profile") { name } }`,
		"{ fetchProfile { name } __schema { queryType { name } } }",
	}
	for _, query := range queries {
		resp, status := svc.Execute(context.Background(), &Request{Query: query})
		assert.Equal(t, http.StatusBadRequest, status, "query: %s", query)
		assert.Equal(t, CodeValidationFailed, errCode(t, resp), "query: %s", query)
	}
}

func TestExecute_TypenameAllowedInProduction(t *testing.T) {
	svc := newTestService(true)

	resp, status := svc.Execute(context.Background(),
		&Request{Query: "{ fetchProfile { __typename name } }"})
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, resp.Errors)
}

func TestExecute_Degraded(t *testing.T) {
	svc := NewDegraded(Config{Logger: zap.NewNop()})
	assert.False(t, svc.Ready())

	first, status := svc.Execute(context.Background(), &Request{Query: "{ fetchProfile { name } }"})
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, CodeInternal, errCode(t, first))

	// Every request gets the same fixed envelope, whatever the query.
	second, _ := svc.Execute(context.Background(), &Request{Query: "nonsense {{{"})
	firstRaw, err := json.Marshal(first)
	require.NoError(t, err)
	secondRaw, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstRaw, secondRaw)
}

func TestNew_NilFetchDegrades(t *testing.T) {
	svc := New(Config{Logger: zap.NewNop()})
	assert.False(t, svc.Ready())

	_, status := svc.Execute(context.Background(), &Request{Query: "{ fetchProfile { name } }"})
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestExecute_Deterministic(t *testing.T) {
	svc := newTestService(false)
	req := &Request{Query: "{ fetchProfile { name summary work { company description } } }"}

	first, _ := svc.Execute(context.Background(), req)
	second, _ := svc.Execute(context.Background(), req)

	firstRaw, err := json.Marshal(first)
	require.NoError(t, err)
	secondRaw, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstRaw, secondRaw, "identical requests should serialize identically")
}
