package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pruthviraj/career-compass/internal/types"
)

// CareerStore is the catalog persistence surface. *db.DB satisfies it.
type CareerStore interface {
	CreateCareerPath(ctx context.Context, c *types.CareerPath) (uuid.UUID, error)
	GetCareerPath(ctx context.Context, id uuid.UUID) (*types.CareerPath, error)
	ListCareerPaths(ctx context.Context) ([]types.CareerPath, error)
	UpdateCareerPath(ctx context.Context, id uuid.UUID, c *types.CareerPath) error
	DeleteCareerPath(ctx context.Context, id uuid.UUID) error
}

func (s *Server) handleListCareers(w http.ResponseWriter, r *http.Request) {
	careers, err := s.careers.ListCareerPaths(r.Context())
	if err != nil {
		s.logger.Error("failed to list careers", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list careers")
		return
	}
	if careers == nil {
		careers = []types.CareerPath{}
	}
	s.jsonResponse(w, http.StatusOK, careers)
}

func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	career, err := s.careers.GetCareerPath(r.Context(), id)
	if err != nil {
		s.logger.Error("failed to get career", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to get career")
		return
	}
	if career == nil {
		s.errorResponse(w, http.StatusNotFound, "career not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, career)
}

func (s *Server) handleCreateCareer(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCareerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	career := &types.CareerPath{
		Title:             req.Title,
		Category:          req.Category,
		Description:       req.Description,
		RequiredEducation: req.RequiredEducation,
		RequiredSkills:    req.RequiredSkills,
		RelatedInterests:  req.RelatedInterests,
		AvgSalary:         req.AvgSalary,
		GrowthOutlook:     req.GrowthOutlook,
		Demand:            req.Demand,
	}

	id, err := s.careers.CreateCareerPath(r.Context(), career)
	if err != nil {
		s.logger.Error("failed to create career", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to create career")
		return
	}

	created, err := s.careers.GetCareerPath(r.Context(), id)
	if err != nil || created == nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load created career")
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateCareer(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	existing, err := s.careers.GetCareerPath(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get career")
		return
	}
	if existing == nil {
		s.errorResponse(w, http.StatusNotFound, "career not found")
		return
	}

	var req types.CreateCareerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	career := &types.CareerPath{
		Title:             req.Title,
		Category:          req.Category,
		Description:       req.Description,
		RequiredEducation: req.RequiredEducation,
		RequiredSkills:    req.RequiredSkills,
		RelatedInterests:  req.RelatedInterests,
		AvgSalary:         req.AvgSalary,
		GrowthOutlook:     req.GrowthOutlook,
		Demand:            req.Demand,
	}

	if err := s.careers.UpdateCareerPath(r.Context(), id, career); err != nil {
		s.logger.Error("failed to update career", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to update career")
		return
	}

	updated, err := s.careers.GetCareerPath(r.Context(), id)
	if err != nil || updated == nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load updated career")
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteCareer(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	existing, err := s.careers.GetCareerPath(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get career")
		return
	}
	if existing == nil {
		s.errorResponse(w, http.StatusNotFound, "career not found")
		return
	}

	if err := s.careers.DeleteCareerPath(r.Context(), id); err != nil {
		s.logger.Error("failed to delete career", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete career")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} path segment, writing a 400 on failure.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
