package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/gymnarium/visualisers-base/internal/config"
	mw "github.com/gymnarium/visualisers-base/internal/middleware"
	"github.com/gymnarium/visualisers-base/internal/scene"
	"github.com/gymnarium/visualisers-base/internal/session"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	sessionService, err := session.NewService(cfg.PublisherKey, cfg.JWTSecret)
	if err != nil {
		slog.Error("init session service", "error", err)
		os.Exit(1)
	}
	sessionHandler := session.NewHandler(sessionService)

	hub := scene.NewHub()
	go hub.Run()

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.AllowedOrigins))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Session endpoints
	r.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	r.HandleFunc("/sessions", sessionHandler.List).Methods("GET")
	r.HandleFunc("/sessions/{sessionId}", sessionHandler.Get).Methods("GET")

	// WebSocket endpoint
	r.HandleFunc("/ws/session/{sessionId}", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, hub, sessionService, cfg)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, hub *scene.Hub, sessionSvc *session.Service, cfg *config.Config) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	if _, err := sessionSvc.Get(sessionID); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	// Publishers present their session-scoped token; viewers join by
	// session ID alone.
	role := scene.RoleViewer
	if token := r.URL.Query().Get("token"); token != "" {
		tokenSessionID, err := sessionSvc.ValidateToken(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		if tokenSessionID != sessionID {
			http.Error(w, "token is for another session", http.StatusForbidden)
			return
		}
		role = scene.RolePublisher
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: originPatterns(cfg.AllowedOrigins),
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	clientID := uuid.New().String()
	client := scene.NewClient(hub, conn, sessionID, clientID, role, cfg.MaxFrameBytes)

	hub.Register(client)

	if role == scene.RolePublisher {
		sessionSvc.SetPublisherPresent(sessionID, true)
		defer sessionSvc.SetPublisherPresent(sessionID, false)
	}

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}

// originPatterns strips schemes from the configured origins for the
// websocket accept check.
func originPatterns(allowedOrigins string) []string {
	patterns := make([]string, 0)
	for _, origin := range strings.Split(allowedOrigins, ",") {
		origin = strings.TrimSpace(origin)
		origin = strings.TrimPrefix(origin, "http://")
		origin = strings.TrimPrefix(origin, "https://")
		if origin != "" {
			patterns = append(patterns, origin)
		}
	}
	return patterns
}
