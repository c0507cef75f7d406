package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pruthviraj/career-compass/internal/types"
)

// StartupStore is the startup-idea persistence surface. *db.DB satisfies it.
type StartupStore interface {
	GetStartupIdea(ctx context.Context, id uuid.UUID) (*types.StartupIdea, error)
	ListStartupIdeas(ctx context.Context, category string) ([]types.StartupIdea, error)
}

func (s *Server) handleListStartupIdeas(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	ideas, err := s.startupStore.ListStartupIdeas(r.Context(), category)
	if err != nil {
		s.logger.Error("failed to list startup ideas", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list startup ideas")
		return
	}
	if ideas == nil {
		ideas = []types.StartupIdea{}
	}
	s.jsonResponse(w, http.StatusOK, ideas)
}

func (s *Server) handleGetStartupIdea(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	idea, err := s.startupStore.GetStartupIdea(r.Context(), id)
	if err != nil {
		s.logger.Error("failed to get startup idea", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to get startup idea")
		return
	}
	if idea == nil {
		s.errorResponse(w, http.StatusNotFound, "startup idea not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, idea)
}

func (s *Server) handleGenerateBusinessPlan(w http.ResponseWriter, r *http.Request) {
	if s.startupSvc == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "business plan generation is not configured")
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	plan, err := s.startupSvc.GeneratePlan(r.Context(), id)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("business plan generation failed", zap.Error(err))
			s.errorResponse(w, status, "failed to generate business plan")
			return
		}
		s.errorResponse(w, status, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, plan)
}
