// Package api - thin, deterministic API layer.
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs pricing logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"service-quote/core/pricing"
	"service-quote/core/quote"
	"service-quote/core/recalc"
	"service-quote/core/refdata"
)

// Server is the API server
type Server struct {
	mux     *http.ServeMux
	version string
	tables  *refdata.Tables
	policy  pricing.Policy
	recalc  *recalc.Transformer
}

// NewServer creates a new API server over the given reference tables.
func NewServer(version string, tables *refdata.Tables, policy pricing.Policy, transformer *recalc.Transformer) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		version: version,
		tables:  tables,
		policy:  policy,
		recalc:  transformer,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /quote", s.handleQuote)
	s.mux.HandleFunc("POST /recalc", s.handleRecalc)

	// Reference data
	s.mux.HandleFunc("GET /reference/countries", s.handleCountries)
	s.mux.HandleFunc("GET /reference/risks", s.handleRisks)
	s.mux.HandleFunc("GET /reference/offerings", s.handleOfferings)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleQuote handles POST /quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest, nil)
		return
	}

	// Build session and compute (NO PRICING LOGIC HERE)
	session := BuildSession(&req, s.policy)
	result := quote.Compute(session, s.tables)

	resp := mapResult(result)
	if req.MailtoRecipient != "" {
		resp.Mailto = quote.MailtoURL(req.MailtoRecipient, result)
	}
	resp.Metadata = &ResponseMetadata{
		EngineVersion: s.version,
		DurationMs:    time.Since(start).Milliseconds(),
	}

	s.writeJSON(w, resp, http.StatusOK)
}

// handleRecalc handles POST /recalc
func (s *Server) handleRecalc(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest, nil)
		return
	}

	dataset := &recalc.Dataset{Headers: req.Headers, Rows: req.Rows}
	out, err := s.recalc.Apply(dataset)
	if err != nil {
		s.writeError(w, "MISSING_COLUMNS", err.Error(), http.StatusBadRequest,
			recalc.MissingColumns(err))
		return
	}

	s.writeJSON(w, &RecalcResponse{
		Headers:  out.Headers,
		Rows:     out.Rows,
		RowCount: len(out.Rows),
		Metadata: &ResponseMetadata{
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}, http.StatusOK)
}

// handleCountries handles GET /reference/countries
func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, referenceResponse{Countries: s.tables.Countries}, http.StatusOK)
}

// handleRisks handles GET /reference/risks
func (s *Server) handleRisks(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, referenceResponse{Risks: s.tables.Risks}, http.StatusOK)
}

// handleOfferings handles GET /reference/offerings
func (s *Server) handleOfferings(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, referenceResponse{Offerings: s.tables.Offerings}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "service-quote",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int, missing []string) {
	s.writeJSON(w, &ErrorResponse{
		Code:           code,
		Message:        message,
		MissingColumns: missing,
	}, status)
}
