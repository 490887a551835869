package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"
	"go.uber.org/zap"
)

// Config carries the dependencies of the read API.
type Config struct {
	// Fetch supplies the wire record for each request.
	Fetch ProfileFunc
	// Production suppresses internal error detail and disables
	// schema introspection.
	Production bool
	Logger     *zap.Logger
}

// Service answers GraphQL requests over a single schema. It is stateless
// across requests; the only state is whether schema construction succeeded
// at startup. A Service that failed to build serves the fixed unavailable
// envelope to every request instead of crashing the process.
type Service struct {
	schema     graphql.Schema
	production bool
	logger     *zap.Logger
	ready      bool
}

// New builds the service. If schema construction fails, the error is logged
// and the returned service is permanently degraded.
func New(cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	schema, err := BuildSchema(cfg.Fetch)
	if err != nil {
		logger.Error("graphql schema construction failed, serving fixed unavailable responses",
			zap.Error(err))
		return &Service{production: cfg.Production, logger: logger}
	}

	return &Service{
		schema:     schema,
		production: cfg.Production,
		logger:     logger,
		ready:      true,
	}
}

// NewDegraded returns a service that is permanently in the schema-failed
// state. New falls back to this state on its own; the constructor exists so
// callers can exercise the degraded path directly.
func NewDegraded(cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{production: cfg.Production, logger: logger}
}

// Ready reports whether the schema built successfully at startup.
func (s *Service) Ready() bool {
	return s.ready
}

// Execute runs one request through parse, validate, and execute, and returns
// the response envelope together with the HTTP status it should be served
// with. It never panics and never returns a nil response.
func (s *Service) Execute(ctx context.Context, req *Request) (*Response, int) {
	if !s.ready {
		return UnavailableResponse(), http.StatusServiceUnavailable
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return ErrorResponse(CodeBadRequest, "Must provide query string."), http.StatusBadRequest
	}

	src := source.NewSource(&source.Source{
		Body: []byte(query),
		Name: "GraphQL request",
	})
	doc, err := parser.Parse(parser.ParseParams{Source: src})
	if err != nil {
		return ErrorResponse(CodeValidationFailed, err.Error()), http.StatusBadRequest
	}

	if s.production && hasIntrospectionFields(doc) {
		return ErrorResponse(CodeValidationFailed,
			"GraphQL introspection is not allowed in production."), http.StatusBadRequest
	}

	if vr := graphql.ValidateDocument(&s.schema, doc, nil); !vr.IsValid {
		resp := &Response{Errors: make([]ResponseError, 0, len(vr.Errors))}
		for _, ve := range vr.Errors {
			resp.Errors = append(resp.Errors, ResponseError{
				Message:    ve.Message,
				Extensions: map[string]interface{}{"code": CodeValidationFailed},
			})
		}
		return resp, http.StatusBadRequest
	}

	if countOperations(doc) > 1 && req.OperationName == "" {
		return ErrorResponse(CodeBadRequest,
			"Must provide operation name if query contains multiple operations."), http.StatusBadRequest
	}

	result := graphql.Execute(graphql.ExecuteParams{
		Schema:        s.schema,
		AST:           doc,
		OperationName: req.OperationName,
		Args:          req.Variables,
		Context:       ctx,
	})

	if result.HasErrors() {
		resp := &Response{Errors: make([]ResponseError, 0, len(result.Errors))}
		for _, ee := range result.Errors {
			s.logger.Error("graphql execution failed", zap.String("error", ee.Message))
			message := ee.Message
			if s.production {
				message = "Internal server error"
			}
			resp.Errors = append(resp.Errors, ResponseError{
				Message:    message,
				Extensions: map[string]interface{}{"code": CodeInternal},
			})
		}
		return resp, http.StatusInternalServerError
	}

	return &Response{Data: result.Data}, http.StatusOK
}

// hasIntrospectionFields walks every selection in the document looking for
// the __schema and __type meta fields. __typename stays allowed.
func hasIntrospectionFields(doc *ast.Document) bool {
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition:
			if selectionHasIntrospection(d.SelectionSet) {
				return true
			}
		case *ast.FragmentDefinition:
			if selectionHasIntrospection(d.SelectionSet) {
				return true
			}
		}
	}
	return false
}

func selectionHasIntrospection(set *ast.SelectionSet) bool {
	if set == nil {
		return false
	}
	for _, sel := range set.Selections {
		switch s := sel.(type) {
		case *ast.Field:
			if s.Name != nil && (s.Name.Value == "__schema" || s.Name.Value == "__type") {
				return true
			}
			if selectionHasIntrospection(s.SelectionSet) {
				return true
			}
		case *ast.InlineFragment:
			if selectionHasIntrospection(s.SelectionSet) {
				return true
			}
		}
	}
	return false
}

func countOperations(doc *ast.Document) int {
	n := 0
	for _, def := range doc.Definitions {
		if _, ok := def.(*ast.OperationDefinition); ok {
			n++
		}
	}
	return n
}
