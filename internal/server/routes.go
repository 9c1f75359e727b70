package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/leapstack-labs/slownie/internal/batch"
	"github.com/leapstack-labs/slownie/internal/output"
)

const (
	maxBodyBytes    = 1 << 20
	maxBatchNumbers = 10_000

	requestIDHeader = "X-Request-ID"
)

type wordsResponse struct {
	Number    int64    `json:"number"`
	Words     string   `json:"words"`
	Fragments []string `json:"fragments"`
}

type batchRequest struct {
	Numbers []string `json:"numbers"`
}

type batchResponse struct {
	Results []output.Result `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) routes(r chi.Router) {
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/v1/words", func(r chi.Router) {
		r.Get("/{number}", s.handleConvert)
		r.Post("/", s.handleBatch)
	})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	n, err := batch.ParseNumber(chi.URLParam(r, "number"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	res := output.NewResult("", n)
	writeJSON(w, http.StatusOK, wordsResponse{
		Number:    res.Number,
		Words:     res.Words,
		Fragments: res.Fragments,
	})
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if len(req.Numbers) > maxBatchNumbers {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("too many numbers: %d (max %d)", len(req.Numbers), maxBatchNumbers),
		})
		return
	}

	results, err := batch.Run(r.Context(), req.Numbers, batch.Options{Workers: s.workers, Logger: s.logger})
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}
	if results == nil {
		results = []output.Result{}
	}
	writeJSON(w, http.StatusOK, batchResponse{Results: results})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestID propagates an incoming X-Request-ID or assigns a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", w.Header().Get(requestIDHeader),
		)
	})
}
