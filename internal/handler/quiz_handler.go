package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quizhub/quizhub-backend/internal/middleware"
	"github.com/quizhub/quizhub-backend/internal/model"
	"github.com/quizhub/quizhub-backend/internal/response"
	"github.com/quizhub/quizhub-backend/internal/service"
	"github.com/quizhub/quizhub-backend/internal/validator"
)

// QuizHandler serves quiz authoring routes and the player catalog.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// ListCatalog godoc
// GET /api/v1/quizzes?category=...
// Published quizzes visible to players.
func (h *QuizHandler) ListCatalog(c *gin.Context) {
	quizzes, err := h.quizService.List(c.Request.Context(), model.QuizStatusPublished, c.Query("category"), 0)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if quizzes == nil {
		quizzes = []model.QuizSummary{}
	}
	response.Success(c, http.StatusOK, gin.H{"quizzes": quizzes})
}

// Categories godoc
// GET /api/v1/quizzes/categories
func (h *QuizHandler) Categories(c *gin.Context) {
	categories, err := h.quizService.Categories(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// GetPaper godoc
// GET /api/v1/quizzes/:quiz_id/paper
// The answer-key-free payload a player takes the quiz from.
func (h *QuizHandler) GetPaper(c *gin.Context) {
	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	payload, err := h.quizService.GetPayload(c.Request.Context(), quizID)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quiz": payload})
}

// ListMine godoc
// GET /api/v1/author/quizzes
// All quizzes owned by the authenticated author, any status.
func (h *QuizHandler) ListMine(c *gin.Context) {
	claims := middleware.GetClaims(c)
	quizzes, err := h.quizService.List(c.Request.Context(), "", c.Query("category"), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if quizzes == nil {
		quizzes = []model.QuizSummary{}
	}
	response.Success(c, http.StatusOK, gin.H{"quizzes": quizzes})
}

// Create godoc
// POST /api/v1/author/quizzes
func (h *QuizHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.SaveQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	quiz, err := h.quizService.Create(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"quiz": quiz})
}

// Get godoc
// GET /api/v1/author/quizzes/:quiz_id
// Full quiz including answer keys; author only.
func (h *QuizHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)
	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	quiz, err := h.quizService.Get(c.Request.Context(), quizID)
	if err != nil {
		failFromService(c, err)
		return
	}
	if quiz.AuthorID != claims.UserID && claims.Role != model.RoleAdmin {
		response.Fail(c, http.StatusForbidden, response.ErrNotQuizAuthor)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
}

// Update godoc
// PUT /api/v1/author/quizzes/:quiz_id
func (h *QuizHandler) Update(c *gin.Context) {
	claims := middleware.GetClaims(c)
	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SaveQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	quiz, err := h.quizService.Update(c.Request.Context(), quizID, claims.UserID, &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
}

// Publish godoc
// POST /api/v1/author/quizzes/:quiz_id/publish
func (h *QuizHandler) Publish(c *gin.Context) {
	claims := middleware.GetClaims(c)
	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	quiz, err := h.quizService.Publish(c.Request.Context(), quizID, claims.UserID)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
}

// Archive godoc
// POST /api/v1/author/quizzes/:quiz_id/archive
func (h *QuizHandler) Archive(c *gin.Context) {
	claims := middleware.GetClaims(c)
	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.quizService.Archive(c.Request.Context(), quizID, claims.UserID); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "quiz archived"})
}

// Delete godoc
// DELETE /api/v1/author/quizzes/:quiz_id
func (h *QuizHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	quizID, err := uuid.Parse(c.Param("quiz_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.quizService.Delete(c.Request.Context(), quizID, claims.UserID); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "quiz deleted"})
}
