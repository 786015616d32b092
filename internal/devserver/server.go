// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jeranaias/cookbot-tui/internal/api"
	"github.com/jeranaias/cookbot-tui/internal/model"
)

// ============================================================================
// CONSTANTS
// ============================================================================

const (
	// DefaultAddr is where the dev server listens by default.
	DefaultAddr = "127.0.0.1:5000"

	// MaxRequestBodySize caps request bodies.
	MaxRequestBodySize = 64 * 1024

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout = 5 * time.Second
)

// Error messages returned in {"error": ...} bodies.
const (
	MsgEmptyMessage     = "Message cannot be empty"
	MsgFieldsRequired   = "All fields are required."
	MsgSaveMissing      = "Missing required session_id or recipe_data"
	MsgSessionRequired  = "Session ID required to retrieve recipes"
	MsgInvalidRequest   = "Invalid request format"
	MsgChatInternal     = "An internal server error occurred processing your request. Please try again later."
	MsgContactSent      = "Message sent successfully! We will get back to you soon."
	MsgRecipeSaved      = "Recipe saved successfully!"
	defaultAllowedCORS  = "http://localhost:5173"
	statusHealthy       = "healthy"
	requestBodyTooLarge = "http: request body too large"
)

// ============================================================================
// SERVER
// ============================================================================

// Config configures a Server.
type Config struct {
	Addr           string
	AllowedOrigins []string
	Logger         *zap.Logger

	// Assistant defaults to the canned cooking assistant.
	Assistant Assistant

	// Store defaults to an empty in-memory store.
	Store *Store
}

// Server is the local CookBot backend.
type Server struct {
	addr      string
	logger    *zap.Logger
	assistant Assistant
	store     *Store
	metrics   *Metrics
	router    chi.Router
	started   time.Time
}

// New creates a Server and builds its routes.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Assistant == nil {
		cfg.Assistant = NewCannedAssistant()
	}
	if cfg.Store == nil {
		cfg.Store = NewStore()
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{defaultAllowedCORS}
	}

	s := &Server{
		addr:      cfg.Addr,
		logger:    cfg.Logger.Named("devserver"),
		assistant: cfg.Assistant,
		store:     cfg.Store,
		metrics:   NewMetrics(),
		started:   time.Now(),
	}
	s.router = s.routes(cfg.AllowedOrigins)
	return s
}

// Handler returns the HTTP handler, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Store returns the server's storage.
func (s *Server) Store() *Store {
	return s.store
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// ============================================================================
// ROUTES
// ============================================================================

func (s *Server) routes(origins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(MetricsMiddleware(s.metrics))
	r.Use(SecurityHeadersMiddleware)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(LoggingMiddleware(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestSize(MaxRequestBodySize))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Post("/save_recipe", s.handleSaveRecipe)
		r.Get("/my_recipes", s.handleMyRecipes)
		r.Post("/contact", s.handleContact)
		r.Get("/health", s.handleHealth)
	})

	return r
}

// ============================================================================
// CHAT HANDLER
// ============================================================================

// chatResponse is the wire form of a chat reply.
type chatResponse struct {
	Response   string        `json:"response"`
	SessionID  string        `json:"session_id"`
	IsRecipe   bool          `json:"is_recipe"`
	RecipeData *model.Recipe `json:"recipe_data,omitempty"`
}

// handleChat handles POST /api/chat.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req api.ChatRequest
	if !s.decode(w, r, &req) {
		return
	}

	text := strings.TrimSpace(req.Message)
	if text == "" {
		s.writeError(w, http.StatusBadRequest, MsgEmptyMessage)
		return
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply, err := s.assistant.Reply(r.Context(), s.store.History(sessionID), text)
	if err != nil {
		s.logger.Error("assistant failed", zap.String("session_id", sessionID), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, MsgChatInternal)
		return
	}

	resp := chatResponse{SessionID: sessionID}
	if reply.Recipe != nil {
		raw, err := json.Marshal(reply.Recipe)
		if err != nil {
			s.logger.Error("encode recipe", zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, MsgChatInternal)
			return
		}
		resp.Response = string(raw)
		resp.IsRecipe = true
		resp.RecipeData = reply.Recipe
		s.metrics.ChatMessages.WithLabelValues("recipe").Inc()
	} else {
		resp.Response = reply.Text
		s.metrics.ChatMessages.WithLabelValues("text").Inc()
	}

	s.store.AppendTurn(sessionID,
		model.NewUserMessage(text),
		model.NewAssistantMessage(resp.Response, reply.Recipe),
	)
	s.writeJSON(w, http.StatusOK, resp)
}

// ============================================================================
// RECIPE HANDLERS
// ============================================================================

// saveRecipeRequest keeps recipe_data raw so a missing payload can be told
// apart from a malformed one in the logs.
type saveRecipeRequest struct {
	SessionID  string          `json:"session_id"`
	RecipeData json.RawMessage `json:"recipe_data"`
}

// handleSaveRecipe handles POST /api/save_recipe.
func (s *Server) handleSaveRecipe(w http.ResponseWriter, r *http.Request) {
	var req saveRecipeRequest
	if !s.decode(w, r, &req) {
		return
	}

	if req.SessionID == "" || len(req.RecipeData) == 0 || string(req.RecipeData) == "null" {
		s.writeError(w, http.StatusBadRequest, MsgSaveMissing)
		return
	}

	var recipe model.Recipe
	if err := json.Unmarshal(req.RecipeData, &recipe); err != nil {
		s.logger.Info("malformed recipe_data", zap.Error(err))
		s.writeError(w, http.StatusBadRequest, MsgSaveMissing)
		return
	}

	id := s.store.SaveRecipe(req.SessionID, &recipe)
	s.metrics.RecipesSaved.Inc()
	s.logger.Info("recipe saved",
		zap.String("session_id", req.SessionID),
		zap.String("recipe_id", id),
	)

	s.writeJSON(w, http.StatusOK, api.SaveResult{
		Success:  true,
		RecipeID: id,
		Message:  MsgRecipeSaved,
	})
}

// handleMyRecipes handles GET /api/my_recipes.
func (s *Server) handleMyRecipes(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		s.writeError(w, http.StatusBadRequest, MsgSessionRequired)
		return
	}

	recipes := s.store.Recipes(sessionID)
	s.logger.Info("recipes listed",
		zap.String("session_id", sessionID),
		zap.Int("count", len(recipes)),
	)
	s.writeJSON(w, http.StatusOK, api.SavedRecipes{Recipes: recipes})
}

// ============================================================================
// CONTACT HANDLER
// ============================================================================

// handleContact handles POST /api/contact. Submissions are kept in memory
// instead of being mailed.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var form api.ContactForm
	if !s.decode(w, r, &form) {
		return
	}

	form = form.Trimmed()
	if form.Name == "" || form.Email == "" || form.Message == "" {
		s.writeError(w, http.StatusBadRequest, MsgFieldsRequired)
		return
	}

	s.store.AddContact(form)
	s.metrics.ContactSubmissions.Inc()
	s.logger.Info("contact form received",
		zap.String("name", form.Name),
		zap.String("email", form.Email),
	)

	s.writeJSON(w, http.StatusOK, api.ContactResult{
		Success: true,
		Message: MsgContactSent,
	})
}

// ============================================================================
// HEALTH HANDLER
// ============================================================================

// handleHealth handles GET /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, api.HealthStatus{
		Status:    statusHealthy,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// ============================================================================
// SERVER LIFECYCLE
// ============================================================================

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("server started", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// ============================================================================
// HELPERS
// ============================================================================

// decode reads a JSON body into v, writing a 400 or 413 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if err.Error() == requestBodyTooLarge {
			s.writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Request body exceeds maximum size of %d bytes", MaxRequestBodySize))
			return false
		}
		s.logger.Info("invalid request body", zap.String("path", r.URL.Path), zap.Error(err))
		s.writeError(w, http.StatusBadRequest, MsgInvalidRequest)
		return false
	}
	return true
}

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", zap.Error(err))
	}
}

// writeError writes {"error": message}.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
