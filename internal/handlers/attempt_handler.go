package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/services"
	"github.com/SAP-F-2025/learning-service/internal/utils"
)

type AttemptHandler struct {
	BaseHandler
	attemptService services.AttemptService
	scoreService   services.ScoreService
}

func NewAttemptHandler(attemptService services.AttemptService, scoreService services.ScoreService, logger utils.Logger) *AttemptHandler {
	return &AttemptHandler{
		BaseHandler:    NewBaseHandler(logger),
		attemptService: attemptService,
		scoreService:   scoreService,
	}
}

// SubmitAnswer records one answer
// @Summary Submit answer
// @Description Records the selected option and returns the correct option and explanation
// @Tags attempts
// @Accept json
// @Produce json
// @Param attempt body models.SubmitAnswerRequest true "Answer"
// @Success 201 {object} models.SubmitAnswerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /attempts [post]
func (h *AttemptHandler) SubmitAnswer(c *gin.Context) {
	h.LogRequest(c, "Submitting answer")

	var req models.SubmitAnswerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.attemptService.SubmitAnswer(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetStudentAttempts
// @Summary List a student's attempts, oldest first
// @Tags attempts
// @Produce json
// @Param id path uint true "Student ID"
// @Param type query string false "quiz or assessment"
// @Success 200 {array} models.QuizAttempt
// @Failure 400 {object} ErrorResponse
// @Router /students/{id}/attempts [get]
func (h *AttemptHandler) GetStudentAttempts(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var attemptType *models.AttemptType
	if raw := c.Query("type"); raw != "" {
		t, err := models.ParseAttemptType(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid type", Details: err.Error()})
			return
		}
		attemptType = &t
	}

	h.LogRequest(c, "Getting student attempts", "student_id", id)

	attempts, err := h.attemptService.GetStudentAttempts(c.Request.Context(), id, attemptType)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempts)
}

// ComputeScore
// @Summary Score a student's attempts of one type
// @Tags attempts
// @Produce json
// @Param id path uint true "Student ID"
// @Param type query string true "quiz or assessment"
// @Success 200 {object} models.ScoreSummary
// @Failure 400 {object} ErrorResponse
// @Router /students/{id}/score [get]
func (h *AttemptHandler) ComputeScore(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	attemptType, err := models.ParseAttemptType(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid type", Details: err.Error()})
		return
	}

	h.LogRequest(c, "Computing score", "student_id", id, "type", attemptType)

	summary, err := h.scoreService.ComputeScore(c.Request.Context(), id, attemptType)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
