package httpapi

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/zerr"
)

type rankRequest struct {
	Target    string   `json:"target"`
	Molecules []string `json:"molecules"`
}

type errorResponse struct {
	Error     string         `json:"error"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:     "invalid request body: " + err.Error(),
			RequestID: r.Header.Get(RequestIDHeader),
		})
		return
	}

	ranking, err := s.svc.Rank(r.Context(), req.Molecules, req.Target)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ranking)
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	exp, err := s.svc.Explain(r.PathValue("key"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, exp)
}

func (s *Server) handleInterpret(w http.ResponseWriter, r *http.Request) {
	score, err := strconv.ParseFloat(r.URL.Query().Get("score"), 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:     "score must be a finite number",
			RequestID: r.Header.Get(RequestIDHeader),
		})
		return
	}
	s.writeJSON(w, http.StatusOK, s.svc.Interpret(score))
}

func (s *Server) handleTargets(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.svc.Targets())
}

func (s *Server) handleTarget(w http.ResponseWriter, r *http.Request) {
	details, err := s.svc.Target(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.CacheStats()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidTarget),
		errors.Is(err, domain.ErrInvalidMolecule),
		errors.Is(err, domain.ErrNoMolecules):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownKey):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	resp := errorResponse{Error: err.Error(), RequestID: r.Header.Get(RequestIDHeader)}
	var zErr *zerr.Error
	if errors.As(err, &zErr) {
		if meta := zErr.Metadata(); len(meta) > 0 {
			resp.Details = meta
		}
	}
	if status == http.StatusInternalServerError {
		s.log.Error(err)
		resp.Details = nil
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error(zerr.Wrap(err, "failed to encode response"))
	}
}
