package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizhub/quizhub-backend/internal/middleware"
	"github.com/quizhub/quizhub-backend/internal/response"
	"github.com/quizhub/quizhub-backend/internal/service"
)

// LeaderboardHandler serves the standings routes.
type LeaderboardHandler struct {
	leaderboard *service.LeaderboardService
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(leaderboard *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

// Top godoc
// GET /api/v1/leaderboard?category=...
// An empty category returns the global board.
func (h *LeaderboardHandler) Top(c *gin.Context) {
	entries, err := h.leaderboard.Top(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"entries": entries})
}

// MyRank godoc
// GET /api/v1/leaderboard/me?category=...
func (h *LeaderboardHandler) MyRank(c *gin.Context) {
	claims := middleware.GetClaims(c)
	category := c.Query("category")

	rank, err := h.leaderboard.Rank(c.Request.Context(), claims.UserID, category)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rank": rank, "category": category})
}
