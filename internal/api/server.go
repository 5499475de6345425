package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/zester4/RaidenAlpha/internal/memory"
	"github.com/zester4/RaidenAlpha/internal/service"
)

// RegisterRoutes wires the HTTP surface onto mux. The memory store may be
// nil, in which case the /memory endpoints report it unavailable.
func RegisterRoutes(mux *http.ServeMux, svc *service.Service, store *memory.Store) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/analyses", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			respondJSON(w, svc.ListJobs())
		case http.MethodPost:
			var req struct {
				Tool   string         `json:"tool"`
				Inputs map[string]any `json:"inputs"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if req.Tool == "" {
				req.Tool = "text_analysis"
			}
			job, err := svc.CreateJob(req.Tool, req.Inputs)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			respondJSON(w, job)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/analyses/start/", func(w http.ResponseWriter, r *http.Request) {
		// path: /analyses/start/{id}
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		id := r.URL.Path[len("/analyses/start/"):]
		if _, ok := svc.GetJob(id); !ok {
			http.NotFound(w, r)
			return
		}
		go func() {
			if err := svc.Run(context.Background(), id); err != nil {
				log.Printf("run error: %v", err)
			}
		}()
		w.WriteHeader(http.StatusAccepted)
	})

	mux.HandleFunc("/analyses/", func(w http.ResponseWriter, r *http.Request) {
		// path: /analyses/{id}
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		id := r.URL.Path[len("/analyses/"):]
		job, ok := svc.GetJob(id)
		if !ok {
			http.NotFound(w, r)
			return
		}
		respondJSON(w, job)
	})

	mux.HandleFunc("/events/", func(w http.ResponseWriter, r *http.Request) {
		// path: /events/{id}, SSE stream of job events
		id := r.URL.Path[len("/events/"):]
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		ch, cancel := svc.Subscribe(id)
		defer cancel()
		for {
			select {
			case <-r.Context().Done():
				return
			case payload, open := <-ch:
				if !open {
					return
				}
				fmt.Fprintf(w, "data: %s\n\n", payload)
				flusher.Flush()
			}
		}
	})

	mux.HandleFunc("/memory/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if store == nil {
			http.Error(w, "memory store unavailable", http.StatusServiceUnavailable)
			return
		}
		var req struct {
			Query        string `json:"query"`
			ResultsCount int    `json:"results_count"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		matches, err := store.Search(r.Context(), req.Query, req.ResultsCount)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respondJSON(w, matches)
	})

	mux.HandleFunc("/memory/add", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if store == nil {
			http.Error(w, "memory store unavailable", http.StatusServiceUnavailable)
			return
		}
		var req struct {
			Texts       []string          `json:"texts"`
			Metadata    map[string]string `json:"metadata"`
			MaxParallel int               `json:"max_parallel"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(req.Texts) == 0 {
			http.Error(w, "missing texts", http.StatusBadRequest)
			return
		}
		if err := store.AddBatch(r.Context(), req.Texts, req.Metadata, req.MaxParallel); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		respondJSON(w, map[string]any{"stored": store.Len()})
	})
}

func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
