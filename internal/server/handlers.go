package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/leapstack-labs/timelang/internal/engine"
	"github.com/leapstack-labs/timelang/pkg/format"
	"github.com/leapstack-labs/timelang/pkg/parser"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type parseRequest struct {
	Input string `json:"input"`
	As    string `json:"as,omitempty"`
}

type parseResponse struct {
	Input     string       `json:"input"`
	Rule      string       `json:"rule"`
	Kind      string       `json:"kind,omitempty"`
	Node      string       `json:"node"`
	Canonical string       `json:"canonical"`
	AST       *format.Tree `json:"ast"`
}

type checkRequest struct {
	Inputs []string `json:"inputs"`
}

type checkResponse struct {
	Results []engine.Result `json:"results"`
	Summary engine.Summary  `json:"summary"`
}

type formatRequest struct {
	Document string `json:"document"`
}

type formatResponse struct {
	Document string `json:"document"`
	Changed  []int  `json:"changed"`
}

type errorResponse struct {
	Error *engine.ErrorInfo `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRules(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default": s.engine.Rule(),
		"rules":   parser.Rules(),
	})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !decode(w, r, &req) {
		return
	}

	res := s.engine.EvaluateAs(req.As, req.Input)
	if !res.OK() {
		var ure *parser.UnknownRuleError
		if errors.As(res.Err, &ure) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: res.Error})
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: res.Error})
		return
	}

	writeJSON(w, http.StatusOK, parseResponse{
		Input:     res.Input,
		Rule:      res.Rule,
		Kind:      res.Kind,
		Node:      res.NodeType,
		Canonical: res.Canonical,
		AST:       res.Tree(),
	})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if !decode(w, r, &req) {
		return
	}

	results, err := s.engine.EvaluateAll(r.Context(), req.Inputs)
	if err != nil {
		s.logger.Error("check failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if results == nil {
		results = []engine.Result{}
	}

	writeJSON(w, http.StatusOK, checkResponse{
		Results: results,
		Summary: engine.Summarize(results),
	})
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if !decode(w, r, &req) {
		return
	}

	doc, changed, err := s.engine.FormatDocument(r.Context(), req.Document)
	if err != nil {
		var le *engine.LineError
		if errors.As(err, &le) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: le.Result.Error})
			return
		}
		s.logger.Error("format failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if changed == nil {
		changed = []int{}
	}

	writeJSON(w, http.StatusOK, formatResponse{Document: doc, Changed: changed})
}

// decode reads a JSON body into v, answering 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: &engine.ErrorInfo{Message: msg}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
