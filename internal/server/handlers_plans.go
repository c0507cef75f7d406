package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pruthviraj/career-compass/internal/server/middleware"
	"github.com/pruthviraj/career-compass/internal/types"
)

// PlanStore is the saved-plan persistence surface. *db.DB satisfies it.
type PlanStore interface {
	CreatePlan(ctx context.Context, userID uuid.UUID, title string, roadmap *types.Roadmap) (uuid.UUID, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*types.CareerPlan, error)
	ListPlansByUser(ctx context.Context, userID uuid.UUID) ([]types.CareerPlan, error)
	UpdateProgress(ctx context.Context, userID, planID uuid.UUID, progress []string) error
	DeletePlan(ctx context.Context, userID, planID uuid.UUID) error
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	plans, err := s.plans.ListPlansByUser(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to list plans", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list plans")
		return
	}
	if plans == nil {
		plans = []types.CareerPlan{}
	}
	s.jsonResponse(w, http.StatusOK, plans)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	title := req.Title
	if title == "" {
		title = req.Roadmap.CareerPath
	}

	planID, err := s.plans.CreatePlan(r.Context(), userID, title, &req.Roadmap)
	if err != nil {
		s.logger.Error("failed to create plan", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to create plan")
		return
	}

	plan, err := s.plans.GetPlan(r.Context(), planID)
	if err != nil || plan == nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load created plan")
		return
	}
	s.jsonResponse(w, http.StatusCreated, plan)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	planID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	plan, err := s.plans.GetPlan(r.Context(), planID)
	if err != nil {
		s.logger.Error("failed to get plan", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to get plan")
		return
	}
	// A plan belonging to another user is reported as missing, not forbidden.
	if plan == nil || plan.UserID != userID {
		s.errorResponse(w, http.StatusNotFound, "plan not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, plan)
}

func (s *Server) handleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	planID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req types.UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.plans.UpdateProgress(r.Context(), userID, planID, req.Progress); err != nil {
		s.errorResponse(w, http.StatusNotFound, "plan not found")
		return
	}

	plan, err := s.plans.GetPlan(r.Context(), planID)
	if err != nil || plan == nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load updated plan")
		return
	}
	s.jsonResponse(w, http.StatusOK, plan)
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	planID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.plans.DeletePlan(r.Context(), userID, planID); err != nil {
		s.errorResponse(w, http.StatusNotFound, "plan not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
