// Package server exposes the results store as a small JSON API.
package server

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/consensys/groth16-agg/common"
	"github.com/consensys/groth16-agg/store"

	"github.com/gorilla/mux"
)

type Server struct {
	router *mux.Router
	log    *log.Logger
	store  *store.Store
}

func New(st *store.Store) *Server {
	s := &Server{
		router: mux.NewRouter(),
		log:    common.NewLogger("server"),
		store:  st,
	}

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/runs", s.handleListRuns).Methods("GET")
	s.router.HandleFunc("/runs/{id}", s.handleGetRun).Methods("GET")

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start blocks serving the API
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf("[::]:%d", port)
	s.log.Printf("Listening on %s", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Printf("writing response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if q := r.URL.Query().Get("limit"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed < 1 {
			s.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	runs, err := s.store.ListRuns(limit)
	if err != nil {
		s.log.Printf("listing runs: %v", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid run id")
		return
	}

	run, err := s.store.GetRun(id)
	if err == sql.ErrNoRows {
		s.writeError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		s.log.Printf("getting run %d: %v", id, err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}
