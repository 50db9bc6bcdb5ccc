package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/learning-service/internal/monitoring"
	"github.com/SAP-F-2025/learning-service/internal/services"
	"github.com/SAP-F-2025/learning-service/internal/utils"
)

const serviceName = "learning-service"

type HandlerManager struct {
	studentHandler     *StudentHandler
	contentHandler     *ContentHandler
	attemptHandler     *AttemptHandler
	achievementHandler *AchievementHandler
	progressHandler    *ProgressHandler
	serviceManager     services.ServiceManager
	authMiddleware     *CasdoorAuthMiddleware
}

// NewHandlerManager builds every handler. authMiddleware may be nil, in which case
// the API is served without authentication.
func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
	authMiddleware *CasdoorAuthMiddleware,
) *HandlerManager {
	return &HandlerManager{
		studentHandler:     NewStudentHandler(serviceManager.Student(), logger),
		contentHandler:     NewContentHandler(serviceManager.Material(), serviceManager.Question(), logger),
		attemptHandler:     NewAttemptHandler(serviceManager.Attempt(), serviceManager.Score(), logger),
		achievementHandler: NewAchievementHandler(serviceManager.Achievement(), serviceManager.Report(), logger),
		progressHandler:    NewProgressHandler(serviceManager.Progress(), logger),
		serviceManager:     serviceManager,
		authMiddleware:     authMiddleware,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	if hm.authMiddleware != nil {
		v1.Use(hm.authMiddleware.AuthMiddleware())
	}
	{
		students := v1.Group("/students")
		{
			students.POST("", hm.studentHandler.CreateStudent)
			students.GET("", hm.studentHandler.ListStudents)
			students.GET("/:id", hm.studentHandler.GetStudent)

			students.GET("/:id/attempts", hm.attemptHandler.GetStudentAttempts)
			students.GET("/:id/score", hm.attemptHandler.ComputeScore)

			students.GET("/:id/achievements", hm.achievementHandler.ListStudentAchievements)
			students.POST("/:id/complete", hm.achievementHandler.CompleteLesson)
			students.GET("/:id/report", hm.achievementHandler.GetReport)
			students.GET("/:id/report/export", hm.achievementHandler.ExportReport)

			students.GET("/:id/progress", hm.progressHandler.GetProgress)
			students.DELETE("/:id/progress", hm.progressHandler.ResetProgress)
			students.POST("/:id/progress/:step", hm.progressHandler.MarkStep)
		}

		materials := v1.Group("/materials")
		{
			materials.GET("", hm.contentHandler.ListMaterialSections)
			materials.POST("", hm.contentHandler.CreateMaterialSection)
		}

		questions := v1.Group("/questions")
		{
			questions.GET("", hm.contentHandler.ListQuestions)
			questions.POST("", hm.contentHandler.CreateQuestion)
		}

		v1.POST("/attempts", hm.attemptHandler.SubmitAnswer)
		v1.POST("/achievements", hm.achievementHandler.RecordAchievement)
	}

	router.GET("/health", hm.health)
	router.GET("/metrics", monitoring.PrometheusHandler())
}

func (hm *HandlerManager) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := hm.serviceManager.HealthCheck(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": serviceName,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}
