package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/learning-service/internal/models"
	"github.com/SAP-F-2025/learning-service/internal/services"
	"github.com/SAP-F-2025/learning-service/internal/utils"
)

// ContentHandler serves lesson material and questions
type ContentHandler struct {
	BaseHandler
	materialService services.MaterialService
	questionService services.QuestionService
}

func NewContentHandler(materialService services.MaterialService, questionService services.QuestionService, logger utils.Logger) *ContentHandler {
	return &ContentHandler{
		BaseHandler:     NewBaseHandler(logger),
		materialService: materialService,
		questionService: questionService,
	}
}

// ListMaterialSections
// @Summary List lesson material in display order
// @Tags materials
// @Produce json
// @Success 200 {array} models.MaterialSection
// @Router /materials [get]
func (h *ContentHandler) ListMaterialSections(c *gin.Context) {
	h.LogRequest(c, "Listing material sections")

	sections, err := h.materialService.ListMaterialSections(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sections)
}

// CreateMaterialSection
// @Summary Create material section
// @Tags materials
// @Accept json
// @Produce json
// @Param section body models.CreateMaterialSectionRequest true "Section"
// @Success 201 {object} models.MaterialSection
// @Failure 400 {object} ErrorResponse
// @Router /materials [post]
func (h *ContentHandler) CreateMaterialSection(c *gin.Context) {
	h.LogRequest(c, "Creating material section")

	var req models.CreateMaterialSectionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	section, err := h.materialService.CreateMaterialSection(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, section)
}

// ListQuestions returns questions of one type without their answer keys
// @Summary List questions
// @Tags questions
// @Produce json
// @Param type query string false "quiz or assessment" default(quiz)
// @Success 200 {array} models.StudentQuestion
// @Failure 400 {object} ErrorResponse
// @Router /questions [get]
func (h *ContentHandler) ListQuestions(c *gin.Context) {
	questionType, err := models.ParseAttemptType(c.DefaultQuery("type", string(models.AttemptQuiz)))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid type", Details: err.Error()})
		return
	}

	h.LogRequest(c, "Listing questions", "type", questionType)

	questions, err := h.questionService.ListQuestions(c.Request.Context(), questionType)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// CreateQuestion
// @Summary Create question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body models.CreateQuestionRequest true "Question"
// @Success 201 {object} models.QuizQuestion
// @Failure 400 {object} ErrorResponse
// @Router /questions [post]
func (h *ContentHandler) CreateQuestion(c *gin.Context) {
	h.LogRequest(c, "Creating question")

	var req models.CreateQuestionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}
