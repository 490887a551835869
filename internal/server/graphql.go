package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ducban/minimalist-cv/internal/api"
)

// maxQueryBytes bounds the request body. The schema has one query returning
// a small record, so anything near the cap is abuse.
const maxQueryBytes = 1 << 20

// handleGraphQL dispatches by method so rejected methods still get the
// standard error envelope instead of the mux default.
func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleGraphQLPost(w, r)
	case http.MethodGet:
		s.handleGraphQLGet(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		s.jsonResponse(w, http.StatusMethodNotAllowed,
			api.ErrorResponse(api.CodeBadRequest, "GraphQL only supports GET and POST requests."))
	}
}

// handleGraphQLPost reads the request from a JSON body.
func (s *Server) handleGraphQLPost(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxQueryBytes))
	if err != nil {
		s.jsonResponse(w, http.StatusBadRequest,
			api.ErrorResponse(api.CodeBadRequest, "Failed to read request body."))
		return
	}

	var req api.Request
	if err := json.Unmarshal(body, &req); err != nil {
		s.logger.Debug("graphql request body is not valid json", zap.Error(err))
		s.jsonResponse(w, http.StatusBadRequest,
			api.ErrorResponse(api.CodeBadRequest, "Request body is not valid JSON."))
		return
	}

	resp, status := s.api.Execute(r.Context(), &req)
	s.jsonResponse(w, status, resp)
}

// handleGraphQLGet reads the request from query parameters: query,
// operationName, and variables as a JSON object. A browser hitting the
// endpoint without a query in development gets the query console instead.
func (s *Server) handleGraphQLGet(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	if !s.production && params.Get("query") == "" && wantsHTML(r) {
		s.servePlayground(w)
		return
	}

	req := api.Request{
		Query:         params.Get("query"),
		OperationName: params.Get("operationName"),
	}

	if raw := params.Get("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			s.jsonResponse(w, http.StatusBadRequest,
				api.ErrorResponse(api.CodeBadRequest, "Variables are not valid JSON."))
			return
		}
	}

	resp, status := s.api.Execute(r.Context(), &req)
	s.jsonResponse(w, status, resp)
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// servePlayground serves the development query console.
func (s *Server) servePlayground(w http.ResponseWriter) {
	page, err := staticFiles.ReadFile("static/playground.html")
	if err != nil {
		s.logger.Error("playground page missing from embedded assets", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(page); err != nil {
		s.logger.Error("failed to write playground response", zap.Error(err))
	}
}
