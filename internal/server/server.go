package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/cv-portal/internal/config"
	"github.com/jonathan/cv-portal/internal/db"
	"github.com/jonathan/cv-portal/internal/export"
	"github.com/jonathan/cv-portal/internal/i18n"
	"github.com/jonathan/cv-portal/internal/llm"
	"github.com/jonathan/cv-portal/internal/server/middleware"
	"github.com/jonathan/cv-portal/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	db             *db.DB
	bundle         *i18n.Bundle
	exporter       *export.Exporter
	suggester      *llm.Suggester // nil when no API key is configured
	rateLimiter    *ratelimit.Limiter
	jwtService     *JWTService
	passwordConfig *config.PasswordConfig
	defaultLocale  string
}

// New creates a new server instance wired to the database, translation
// bundle and supporting services.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}

	bundle := i18n.NewBundle(cfg.DefaultLocale)
	if err := bundle.LoadDir(cfg.TranslationsDir); err != nil {
		// Translations are optional; missing keys echo back.
		log.Printf("[I18N] No translations loaded: %v", err)
	} else {
		go func() {
			if err := bundle.Watch(ctx, cfg.TranslationsDir); err != nil {
				log.Printf("[I18N] Watch failed: %v", err)
			}
		}()
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}

	s := &Server{
		db:             database,
		bundle:         bundle,
		exporter:       export.NewExporter(),
		rateLimiter:    ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		jwtService:     NewJWTService(jwtConfig),
		passwordConfig: passwordConfig,
		defaultLocale:  cfg.DefaultLocale,
	}

	if cfg.GeminiAPIKey != "" {
		suggester, err := llm.NewSuggester(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("[LLM] Summary suggestions disabled: %v", err)
		} else {
			s.suggester = suggester
		}
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF export can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes assembles the public and authenticated route sets.
func (s *Server) routes() http.Handler {
	authed := http.NewServeMux()

	// User endpoints
	authed.HandleFunc("GET /users", s.handleListUsers)
	authed.HandleFunc("GET /users/{id}", s.handleGetUser)
	authed.HandleFunc("PUT /users/{id}", s.handleUpdateUser)
	authed.HandleFunc("DELETE /users/{id}", s.handleDeleteUser)

	// CV endpoints
	authed.HandleFunc("POST /users/{id}/cvs", s.handleCreateCV)
	authed.HandleFunc("GET /users/{id}/cvs", s.handleListCVs)
	authed.HandleFunc("GET /cvs/{id}", s.handleGetCV)
	authed.HandleFunc("PUT /cvs/{id}", s.handleUpdateCV)
	authed.HandleFunc("DELETE /cvs/{id}", s.handleDeleteCV)
	authed.HandleFunc("POST /cvs/import", s.handleImportCV)

	// Skill, language and project endpoints
	authed.HandleFunc("PUT /cvs/{id}/skills", s.handleUpsertSkill)
	authed.HandleFunc("DELETE /cvs/{id}/skills/{name}", s.handleDeleteSkill)
	authed.HandleFunc("PUT /cvs/{id}/languages", s.handleUpsertLanguage)
	authed.HandleFunc("DELETE /cvs/{id}/languages/{name}", s.handleDeleteLanguage)
	authed.HandleFunc("POST /cvs/{id}/projects", s.handleCreateProject)
	authed.HandleFunc("PUT /projects/{id}", s.handleUpdateProject)
	authed.HandleFunc("DELETE /projects/{id}", s.handleDeleteProject)

	// Skill category endpoints
	authed.HandleFunc("GET /categories", s.handleListCategories)
	authed.HandleFunc("POST /categories", s.handleCreateCategory)
	authed.HandleFunc("DELETE /categories/{id}", s.handleDeleteCategory)

	// Preview and export read from the same derived view-model
	authed.HandleFunc("GET /cvs/{id}/preview", s.handlePreviewCV)
	authed.HandleFunc("POST /cvs/{id}/export", s.handleExportCV)
	authed.HandleFunc("POST /cvs/{id}/suggest-summary", s.handleSuggestSummary)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("/", middleware.Auth(s.jwtService.AsTokenValidator())(authed))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	if s.suggester != nil {
		_ = s.suggester.Close()
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients over their request budget.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path)

		if info.Limit > 0 {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
		}

		if !allowed {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
			}
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// extractClientID extracts the client identifier (IP) from the request.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
