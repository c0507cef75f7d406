package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/pruthviraj/career-compass/internal/types"
)

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	matches, err := s.recommender.Recommend(r.Context(), req.Profile)
	if err != nil {
		s.logger.Error("recommendation failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to compute recommendations")
		return
	}
	s.jsonResponse(w, http.StatusOK, types.RecommendationResponse{Matches: matches})
}

func (s *Server) handleBuildRoadmap(w http.ResponseWriter, r *http.Request) {
	var req types.RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	roadmap, err := s.recommender.BuildRoadmap(r.Context(), req.Profile, req.Learner, req.CareerID)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("roadmap generation failed", zap.Error(err))
			s.errorResponse(w, status, "failed to generate roadmap")
			return
		}
		s.errorResponse(w, status, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, roadmap)
}
