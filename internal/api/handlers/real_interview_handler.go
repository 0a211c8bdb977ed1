package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ignitai/ignitai-backend/internal/api/middleware"
	"github.com/ignitai/ignitai-backend/internal/services"
)

type RealInterviewHandler struct {
	svc services.RealInterviewService
}

func NewRealInterviewHandler(svc services.RealInterviewService) *RealInterviewHandler {
	return &RealInterviewHandler{svc: svc}
}

type StartRealInterviewRequest struct {
	CourseTrack  string `json:"courseTrack"`
	SelectedTech string `json:"selectedTech"`
}

func (h *RealInterviewHandler) Start(c *gin.Context) {
	var req StartRealInterviewRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		writeError(c, badRequest("RealInterviewHandler.Start", "invalid request body", err))
		return
	}

	res, err := h.svc.Start(c.Request.Context(), services.StartRealInterviewInput{
		Track: req.CourseTrack,
		Tech:  req.SelectedTech,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set(middleware.SessionIDKey, res.SessionID)
	c.JSON(http.StatusOK, res)
}

type SubmitRealAnswerRequest struct {
	SessionID     string `json:"sessionId"`
	Answer        string `json:"answer"`
	Round         *int   `json:"round"`
	QuestionIndex *int   `json:"questionIndex"`
	SelectedTech  string `json:"selectedTech"`
}

func (h *RealInterviewHandler) SubmitAnswer(c *gin.Context) {
	const op = "RealInterviewHandler.SubmitAnswer"

	var req SubmitRealAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, badRequest(op, "invalid request body", err))
		return
	}
	c.Set(middleware.SessionIDKey, req.SessionID)
	if req.Round == nil {
		writeError(c, badRequest(op, "round is required", nil))
		return
	}
	if req.QuestionIndex == nil {
		writeError(c, badRequest(op, "questionIndex is required", nil))
		return
	}

	res, err := h.svc.SubmitAnswer(c.Request.Context(), services.SubmitRealAnswerInput{
		SessionID:     req.SessionID,
		Answer:        req.Answer,
		Round:         *req.Round,
		QuestionIndex: *req.QuestionIndex,
		Tech:          req.SelectedTech,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *RealInterviewHandler) Results(c *gin.Context) {
	report, err := h.svc.Results(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
