package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ignitai/ignitai-backend/internal/models"
	"github.com/ignitai/ignitai-backend/internal/services"
)

type FeedbackHandler struct {
	svc services.FeedbackService
}

func NewFeedbackHandler(svc services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

type FeedbackResponse struct {
	Message  string           `json:"message"`
	Feedback *models.Feedback `json:"feedback"`
}

// Create accepts multipart/form-data with an optional "image" file. Badges
// may be repeated fields or one comma separated value.
func (h *FeedbackHandler) Create(c *gin.Context) {
	img, err := readUpload(c, "FeedbackHandler.Create", "image", isImage)
	if err != nil {
		writeError(c, err)
		return
	}

	badges := c.PostFormArray("badges")
	if len(badges) == 0 {
		badges = c.PostFormArray("badges[]")
	}

	f, err := h.svc.Create(c.Request.Context(), services.FeedbackInput{
		Name:     c.PostForm("name"),
		Role:     c.PostForm("role"),
		Quote:    c.PostForm("quote"),
		Badges:   badges,
		Rating:   c.PostForm("rating"),
		LinkedIn: c.PostForm("linkedin"),
		Image:    img,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, FeedbackResponse{Message: "Feedback submitted successfully!", Feedback: f})
}

func (h *FeedbackHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
