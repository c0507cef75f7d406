package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/pruthviraj/career-compass/internal/server/middleware"
	"github.com/pruthviraj/career-compass/internal/types"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.mentorSvc == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "mentor chat is not configured")
		return
	}

	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	reply, err := s.mentorSvc.Chat(r.Context(), userID, req.Message)
	if err != nil {
		s.logger.Error("mentor chat failed", zap.Error(err))
		s.errorResponse(w, http.StatusBadGateway, "mentor is unavailable")
		return
	}
	s.jsonResponse(w, http.StatusOK, types.ChatResponse{Reply: reply})
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	if s.mentorSvc == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "mentor chat is not configured")
		return
	}

	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	history, err := s.mentorSvc.History(r.Context(), userID)
	if err != nil {
		s.logger.Error("failed to load chat history", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to load chat history")
		return
	}
	s.jsonResponse(w, http.StatusOK, history)
}
