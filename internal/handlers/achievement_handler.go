package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/services"
	"github.com/SAP-F-2025/learning-service/internal/utils"
)

type AchievementHandler struct {
	BaseHandler
	achievementService services.AchievementService
	reportService      services.ReportService
}

func NewAchievementHandler(achievementService services.AchievementService, reportService services.ReportService, logger utils.Logger) *AchievementHandler {
	return &AchievementHandler{
		BaseHandler:        NewBaseHandler(logger),
		achievementService: achievementService,
		reportService:      reportService,
	}
}

// RecordAchievement
// @Summary Record an achievement snapshot
// @Tags achievements
// @Accept json
// @Produce json
// @Param achievement body models.RecordAchievementRequest true "Snapshot"
// @Success 201 {object} models.StudentAchievement
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /achievements [post]
func (h *AchievementHandler) RecordAchievement(c *gin.Context) {
	h.LogRequest(c, "Recording achievement")

	var req models.RecordAchievementRequest
	if !h.bindJSON(c, &req) {
		return
	}

	achievement, err := h.achievementService.RecordAchievement(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, achievement)
}

// ListStudentAchievements
// @Summary List a student's achievements, newest first
// @Tags achievements
// @Produce json
// @Param id path uint true "Student ID"
// @Success 200 {array} models.StudentAchievement
// @Router /students/{id}/achievements [get]
func (h *AchievementHandler) ListStudentAchievements(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Listing achievements", "student_id", id)

	achievements, err := h.achievementService.ListStudentAchievements(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, achievements)
}

// CompleteLesson
// @Summary Score both attempt types and record the achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Param id path uint true "Student ID"
// @Param body body models.CompleteLessonRequest false "Optional time spent"
// @Success 201 {object} models.StudentAchievement
// @Failure 404 {object} ErrorResponse
// @Router /students/{id}/complete [post]
func (h *AchievementHandler) CompleteLesson(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Completing lesson", "student_id", id)

	var req models.CompleteLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	achievement, err := h.achievementService.CompleteLesson(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, achievement)
}

// GetReport
// @Summary Assemble an achievement report
// @Tags reports
// @Produce json
// @Param id path uint true "Student ID"
// @Param achievement_id query uint false "Achievement ID; latest when omitted"
// @Success 200 {object} models.AchievementReport
// @Failure 404 {object} ErrorResponse
// @Router /students/{id}/report [get]
func (h *AchievementHandler) GetReport(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}
	achievementID, ok := h.parseOptionalIDQuery(c, "achievement_id")
	if !ok {
		return
	}

	h.LogRequest(c, "Getting report", "student_id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id, achievementID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Report not found"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportReport
// @Summary Download the achievement report as a spreadsheet
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path uint true "Student ID"
// @Param achievement_id query uint false "Achievement ID; latest when omitted"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /students/{id}/report/export [get]
func (h *AchievementHandler) ExportReport(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}
	achievementID, ok := h.parseOptionalIDQuery(c, "achievement_id")
	if !ok {
		return
	}

	h.LogRequest(c, "Exporting report", "student_id", id)

	export, err := h.reportService.ExportReport(c.Request.Context(), id, achievementID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, export.ContentType, export.Data)
}
