// Package server exposes the conversion engine as a JSON HTTP API.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	colorlab "github.com/MeKo-Tech/colorlab"
)

// API serves the conversion, difference and naming endpoints.
type API struct {
	logger *slog.Logger
}

// NewAPI creates the JSON API handler set.
func NewAPI(logger *slog.Logger) *API {
	return &API{logger: logger}
}

// Handler returns the routed HTTP handler for all endpoints.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/v1/convert", a.handleConvert)
	mux.HandleFunc("/v1/distance", a.handleDistance)
	mux.HandleFunc("/v1/category", a.handleCategory)
	return withCORS(mux)
}

// ConvertRequest is the body of POST /v1/convert.
type ConvertRequest struct {
	Value [3]float64 `json:"value"`
	From  string     `json:"from"`
	To    string     `json:"to"`
}

// ConvertResponse is the body of a successful conversion.
type ConvertResponse struct {
	Result    [3]float64 `json:"result"`
	Saturated bool       `json:"saturated"`
}

// DistanceRequest is the body of POST /v1/distance.
type DistanceRequest struct {
	A     [3]float64 `json:"a"`
	B     [3]float64 `json:"b"`
	Space string     `json:"space"`
}

// DistanceResponse is the body of a successful difference request.
type DistanceResponse struct {
	Distance float64 `json:"distance"`
}

// CategoryRequest is the body of POST /v1/category.
type CategoryRequest struct {
	Value [3]float64 `json:"value"`
	Space string     `json:"space"`
}

// CategoryResponse is the body of a successful naming request.
type CategoryResponse struct {
	Category string `json:"category"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (a *API) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if !a.decode(w, r, &req) {
		return
	}

	result, saturated, err := colorlab.ConvertNamed(req.Value, req.From, req.To)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err)
		return
	}

	a.writeJSON(w, ConvertResponse{Result: result, Saturated: saturated})
}

func (a *API) handleDistance(w http.ResponseWriter, r *http.Request) {
	var req DistanceRequest
	if !a.decode(w, r, &req) {
		return
	}

	space, err := colorlab.ParseSpace(req.Space)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err)
		return
	}
	d, err := colorlab.Distance(req.A, req.B, space)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err)
		return
	}

	a.writeJSON(w, DistanceResponse{Distance: d})
}

func (a *API) handleCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !a.decode(w, r, &req) {
		return
	}

	space, err := colorlab.ParseSpace(req.Space)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err)
		return
	}
	name, err := colorlab.CategoryOf(req.Value, space)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err)
		return
	}

	a.writeJSON(w, CategoryResponse{Category: name})
}

// decode parses a JSON POST body; on failure it writes the error
// response and returns false.
func (a *API) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		a.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		a.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func (a *API) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("Failed to encode response", "error", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, err error) {
	a.logger.Warn("Request failed", "status", status, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

// withCORS allows simple cross-origin use of the API.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
