package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pruthviraj/career-compass/internal/types"
)

// ResourceStore is the learning-resource persistence surface. *db.DB
// satisfies it.
type ResourceStore interface {
	CreateLearningResource(ctx context.Context, r *types.LearningResource) (uuid.UUID, error)
	GetLearningResource(ctx context.Context, id uuid.UUID) (*types.LearningResource, error)
	ListLearningResources(ctx context.Context, category string) ([]types.LearningResource, error)
}

func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	list, err := s.resourceStore.ListLearningResources(r.Context(), category)
	if err != nil {
		s.logger.Error("failed to list resources", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list resources")
		return
	}
	if list == nil {
		list = []types.LearningResource{}
	}
	s.jsonResponse(w, http.StatusOK, list)
}

func (s *Server) handleGetResource(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	resource, err := s.resourceStore.GetLearningResource(r.Context(), id)
	if err != nil {
		s.logger.Error("failed to get resource", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to get resource")
		return
	}
	if resource == nil {
		s.errorResponse(w, http.StatusNotFound, "resource not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, resource)
}

func (s *Server) handleCreateResource(w http.ResponseWriter, r *http.Request) {
	var req types.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resource := &types.LearningResource{
		Title:    req.Title,
		Platform: req.Platform,
		Category: req.Category,
		URL:      req.URL,
	}

	id, err := s.resourceStore.CreateLearningResource(r.Context(), resource)
	if err != nil {
		s.logger.Error("failed to create resource", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to create resource")
		return
	}

	created, err := s.resourceStore.GetLearningResource(r.Context(), id)
	if err != nil || created == nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load created resource")
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

func (s *Server) handleRefreshMetadata(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.refresher.RefreshOne(r.Context(), id); err != nil {
		s.logger.Warn("metadata refresh failed", zap.String("resource_id", id.String()), zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, "failed to refresh metadata")
		return
	}

	resource, err := s.resourceStore.GetLearningResource(r.Context(), id)
	if err != nil || resource == nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load refreshed resource")
		return
	}
	s.jsonResponse(w, http.StatusOK, resource)
}

func (s *Server) handleRefreshAllMetadata(w http.ResponseWriter, r *http.Request) {
	updated, err := s.refresher.RefreshAll(r.Context())
	if err != nil {
		s.logger.Error("bulk metadata refresh failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to refresh metadata")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]int{"updated": updated})
}
