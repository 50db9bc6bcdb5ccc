package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/services"
	"github.com/SAP-F-2025/learning-service/internal/utils"
)

type ProgressHandler struct {
	BaseHandler
	progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService, logger utils.Logger) *ProgressHandler {
	return &ProgressHandler{
		BaseHandler:     NewBaseHandler(logger),
		progressService: progressService,
	}
}

// GetProgress
// @Summary Current lesson run of a student
// @Tags progress
// @Produce json
// @Param id path uint true "Student ID"
// @Success 200 {object} models.LessonProgress
// @Failure 503 {object} ErrorResponse
// @Router /students/{id}/progress [get]
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Getting progress", "student_id", id)

	progress, err := h.progressService.GetProgress(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// MarkStep
// @Summary Mark a lesson step done
// @Tags progress
// @Produce json
// @Param id path uint true "Student ID"
// @Param step path string true "material, quiz or assessment"
// @Success 200 {object} models.LessonProgress
// @Router /students/{id}/progress/{step} [post]
func (h *ProgressHandler) MarkStep(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}
	step := models.LessonStep(c.Param("step"))

	h.LogRequest(c, "Marking lesson step", "student_id", id, "step", step)

	progress, err := h.progressService.MarkStep(c.Request.Context(), id, step)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// ResetProgress
// @Summary Discard the lesson run
// @Tags progress
// @Param id path uint true "Student ID"
// @Success 204
// @Router /students/{id}/progress [delete]
func (h *ProgressHandler) ResetProgress(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Resetting progress", "student_id", id)

	if err := h.progressService.ResetProgress(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
