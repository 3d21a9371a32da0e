package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/njchilds90/poly1d"
)

// newRouter wires the tool, schema and health endpoints. Middlewares run
// in order: recovery, CORS (when origins are configured), compression.
func newRouter(cfg Config) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/tool", toolHandler(cfg.MaxBodyBytes, cfg.toolOptions())).Methods(http.MethodPost)
	r.HandleFunc("/schema", schemaHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	if len(cfg.CORSOrigins) > 0 {
		r.Use(handlers.CORS(handlers.AllowedOrigins(cfg.CORSOrigins)))
	}
	if !cfg.DisableCompression {
		r.Use(handlers.CompressHandler)
	}
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(glogRecovery{}),
		handlers.PrintRecoveryStack(true),
	)
	return recovery(r)
}

type glogRecovery struct{}

func (glogRecovery) Println(v ...interface{}) { glog.Error(v...) }

func toolHandler(maxBodyBytes int, opts poly1d.ToolOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, int64(maxBodyBytes))
		defer r.Body.Close()

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req poly1d.ToolRequest
		if err := dec.Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		// Ensure there's no trailing junk.
		if dec.More() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: trailing data"})
			return
		}

		resp := poly1d.HandleToolCallWith(req, opts)
		if resp.Error != "" {
			glog.Warningf("tool %s: %s", req.Tool, resp.Error)
		} else {
			glog.V(1).Infof("tool %s ok", req.Tool)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func schemaHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, poly1d.MCPToolSpec())
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		glog.Warningf("write response: %v", err)
	}
}

// runHTTP serves until ctx is cancelled, then shuts down gracefully.
func runHTTP(ctx context.Context, cfg Config) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           newRouter(cfg),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		glog.Infof("poly1d MCP server listening on %s", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	glog.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
