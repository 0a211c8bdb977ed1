package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ignitai/ignitai-backend/internal/services"
)

type QuizHandler struct {
	svc services.QuizService
}

func NewQuizHandler(svc services.QuizService) *QuizHandler {
	return &QuizHandler{svc: svc}
}

type GenerateQuizRequest struct {
	Topics     []string `json:"topics" binding:"required"`
	Count      int      `json:"count"`
	Difficulty string   `json:"difficulty"`
}

func (h *QuizHandler) Generate(c *gin.Context) {
	var req GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, badRequest("QuizHandler.Generate", "topics is required", err))
		return
	}

	res, err := h.svc.Generate(c.Request.Context(), services.GenerateQuizInput{
		Topics:     req.Topics,
		Count:      req.Count,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type CodeMatchRequest struct {
	HTML         string `json:"html"`
	CSS          string `json:"css"`
	ExpectedHTML string `json:"expectedHtml"`
	ExpectedCSS  string `json:"expectedCss"`
}

func (h *QuizHandler) CodeMatch(c *gin.Context) {
	var req CodeMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, badRequest("QuizHandler.CodeMatch", "invalid request body", err))
		return
	}

	res, err := h.svc.CodeMatch(c.Request.Context(), services.CodeMatchInput{
		HTML:         req.HTML,
		CSS:          req.CSS,
		ExpectedHTML: req.ExpectedHTML,
		ExpectedCSS:  req.ExpectedCSS,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
