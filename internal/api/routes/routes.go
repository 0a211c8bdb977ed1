package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ignitai/ignitai-backend/internal/api/handlers"
)

type Deps struct {
	Interview     *handlers.InterviewHandler
	RealInterview *handlers.RealInterviewHandler
	Application   *handlers.ApplicationHandler
	Certificate   *handlers.CertificateHandler
	Feedback      *handlers.FeedbackHandler
	Contact       *handlers.ContactHandler
	Quiz          *handlers.QuizHandler
	Results       *handlers.ResultHandler

	// UploadDir is served under /uploads when set.
	UploadDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if d.UploadDir != "" {
		r.Static("/uploads", d.UploadDir)
	}

	api := r.Group("/api")

	api.POST("/apply", d.Application.Apply)
	api.GET("/verify-certificate", d.Certificate.Verify)
	api.POST("/feedback", d.Feedback.Create)
	api.GET("/feedback", d.Feedback.List)
	api.POST("/contact", d.Contact.Send)

	basic := api.Group("/ai-interview")
	basic.POST("/start", d.Interview.Start)
	basic.POST("/submit-answer", d.Interview.SubmitAnswer)
	basic.GET("/results/:sessionId", d.Interview.Results)
	basic.GET("/stats", d.Interview.Stats)

	adv := api.Group("/real-ai-interview")
	adv.POST("/start", d.RealInterview.Start)
	adv.POST("/submit-answer", d.RealInterview.SubmitAnswer)
	adv.GET("/results/:sessionId", d.RealInterview.Results)

	q := api.Group("/quiz")
	q.POST("/generate", d.Quiz.Generate)
	q.POST("/code-match", d.Quiz.CodeMatch)

	// No auth model: admin routes are unauthenticated.
	admin := api.Group("/admin")
	admin.POST("/upload-certificates", d.Certificate.Upload)
	admin.GET("/interview-results", d.Results.ListRecent)
}
