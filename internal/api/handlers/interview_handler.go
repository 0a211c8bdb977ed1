package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ignitai/ignitai-backend/internal/api/middleware"
	"github.com/ignitai/ignitai-backend/internal/services"
)

type InterviewHandler struct {
	svc services.InterviewService
}

func NewInterviewHandler(svc services.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

type StartInterviewRequest struct {
	CourseTrack string `json:"courseTrack"`
}

func (h *InterviewHandler) Start(c *gin.Context) {
	var req StartInterviewRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		writeError(c, badRequest("InterviewHandler.Start", "invalid request body", err))
		return
	}

	res, err := h.svc.Start(c.Request.Context(), req.CourseTrack)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.SessionIDKey, res.SessionID)
	c.JSON(http.StatusOK, res)
}

type SubmitAnswerRequest struct {
	SessionID     string `json:"sessionId"`
	Answer        string `json:"answer"`
	QuestionIndex *int   `json:"questionIndex"`
}

func (h *InterviewHandler) SubmitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, badRequest("InterviewHandler.SubmitAnswer", "invalid request body", err))
		return
	}
	c.Set(middleware.SessionIDKey, req.SessionID)

	res, err := h.svc.SubmitAnswer(c.Request.Context(), services.SubmitAnswerInput{
		SessionID:     req.SessionID,
		Answer:        req.Answer,
		QuestionIndex: req.QuestionIndex,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *InterviewHandler) Results(c *gin.Context) {
	report, err := h.svc.Results(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *InterviewHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Stats(c.Request.Context()))
}
