package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ignitai/ignitai-backend/internal/services"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Apply accepts multipart/form-data with an optional "resume" file.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	resume, err := readUpload(c, "ApplicationHandler.Apply", "resume", nil)
	if err != nil {
		writeError(c, err)
		return
	}

	_, err = h.svc.Submit(c.Request.Context(), services.ApplicationInput{
		FirstName:  c.PostForm("firstName"),
		LastName:   c.PostForm("lastName"),
		Email:      c.PostForm("email"),
		Phone:      c.PostForm("phone"),
		Program:    c.PostForm("program"),
		Experience: c.PostForm("experience"),
		Motivation: c.PostForm("motivation"),
		Resume:     resume,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Application submitted successfully!"})
}
