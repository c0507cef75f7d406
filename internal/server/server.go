package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pruthviraj/career-compass/internal/config"
	"github.com/pruthviraj/career-compass/internal/db"
	"github.com/pruthviraj/career-compass/internal/llm"
	"github.com/pruthviraj/career-compass/internal/mentor"
	"github.com/pruthviraj/career-compass/internal/recommend"
	"github.com/pruthviraj/career-compass/internal/resources"
	"github.com/pruthviraj/career-compass/internal/roadmap"
	"github.com/pruthviraj/career-compass/internal/server/middleware"
	"github.com/pruthviraj/career-compass/internal/server/ratelimit"
	"github.com/pruthviraj/career-compass/internal/startup"
)

// Server is the HTTP API for the career guidance service.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	validator   *validator.Validate

	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler

	careers       CareerStore
	plans         PlanStore
	resourceStore ResourceStore
	startupStore  StartupStore

	recommender *recommend.Service
	mentorSvc   *mentor.Service
	startupSvc  *startup.Service
	refresher   *resources.Refresher
	llmClient   llm.Client
}

// New creates a server, connecting to the database and wiring every service.
// The Gemini-backed endpoints stay disabled when no API key is configured.
func New(cfg config.Config, logger *zap.Logger) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:            database,
		logger:        logger,
		validator:     validator.New(),
		careers:       database,
		plans:         database,
		resourceStore: database,
		startupStore:  database,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.recommender = recommend.NewService(database, roadmap.NewGenerator(nil))
	s.refresher = resources.NewRefresher(database, nil, logger)

	if cfg.APIKey != "" {
		client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
		s.mentorSvc = mentor.NewService(client, database)
		s.startupSvc = startup.NewService(client, database)
	} else {
		logger.Warn("no Gemini API key configured, mentor chat and business plans disabled")
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // LLM and crawling endpoints are slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.Auth(s.jwtService.AsTokenValidator())

	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("GET /users/me", requireAuth(http.HandlerFunc(s.handleGetMe)))
	mux.Handle("PUT /auth/password", requireAuth(http.HandlerFunc(s.handleUpdatePassword)))

	// Career catalog (mutations are admin-style and require a login)
	mux.HandleFunc("GET /careers", s.handleListCareers)
	mux.HandleFunc("GET /careers/{id}", s.handleGetCareer)
	mux.Handle("POST /careers", requireAuth(http.HandlerFunc(s.handleCreateCareer)))
	mux.Handle("PUT /careers/{id}", requireAuth(http.HandlerFunc(s.handleUpdateCareer)))
	mux.Handle("DELETE /careers/{id}", requireAuth(http.HandlerFunc(s.handleDeleteCareer)))

	// Matching and roadmaps
	mux.HandleFunc("POST /recommendations", s.handleRecommendations)
	mux.HandleFunc("POST /roadmaps", s.handleBuildRoadmap)

	// Saved plans (owned by the authenticated user)
	mux.Handle("GET /plans", requireAuth(http.HandlerFunc(s.handleListPlans)))
	mux.Handle("POST /plans", requireAuth(http.HandlerFunc(s.handleCreatePlan)))
	mux.Handle("GET /plans/{id}", requireAuth(http.HandlerFunc(s.handleGetPlan)))
	mux.Handle("PUT /plans/{id}/progress", requireAuth(http.HandlerFunc(s.handleUpdateProgress)))
	mux.Handle("DELETE /plans/{id}", requireAuth(http.HandlerFunc(s.handleDeletePlan)))

	// Learning resources
	mux.HandleFunc("GET /resources", s.handleListResources)
	mux.HandleFunc("GET /resources/{id}", s.handleGetResource)
	mux.Handle("POST /resources", requireAuth(http.HandlerFunc(s.handleCreateResource)))
	mux.Handle("POST /resources/refresh-metadata", requireAuth(http.HandlerFunc(s.handleRefreshAllMetadata)))
	mux.Handle("POST /resources/{id}/refresh-metadata", requireAuth(http.HandlerFunc(s.handleRefreshMetadata)))

	// Startup ideas
	mux.HandleFunc("GET /startup-ideas", s.handleListStartupIdeas)
	mux.HandleFunc("GET /startup-ideas/{id}", s.handleGetStartupIdea)
	mux.Handle("POST /startup-ideas/{id}/business-plan", requireAuth(http.HandlerFunc(s.handleGenerateBusinessPlan)))

	// Mentor chat
	mux.Handle("POST /chat", requireAuth(http.HandlerFunc(s.handleChat)))
	mux.Handle("GET /chat/history", requireAuth(http.HandlerFunc(s.handleChatHistory)))

	return mux
}

// Start begins listening and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	s.db.Close()

	s.logger.Info("server stopped")
	return nil
}

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

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID identifies the client for rate limiting, by IP.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
