package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ignitai/ignitai-backend/internal/models"
	"github.com/ignitai/ignitai-backend/internal/services"
)

type CertificateHandler struct {
	svc services.CertificateService
}

func NewCertificateHandler(svc services.CertificateService) *CertificateHandler {
	return &CertificateHandler{svc: svc}
}

// Verify answers 200 for both valid and unknown ids.
func (h *CertificateHandler) Verify(c *gin.Context) {
	res, err := h.svc.Verify(c.Request.Context(), c.Query("certificateId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type UploadCertificatesResponse struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
}

func (h *CertificateHandler) Upload(c *gin.Context) {
	const op = "CertificateHandler.Upload"
	const notArray = "Expected an array of certificates."

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, badRequest(op, notArray, err))
		return
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		writeError(c, badRequest(op, notArray, nil))
		return
	}

	var certs []models.Certificate
	if err := json.Unmarshal(body, &certs); err != nil {
		writeError(c, badRequest(op, notArray, err))
		return
	}

	n, err := h.svc.Upload(c.Request.Context(), certs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, UploadCertificatesResponse{Message: "Certificates uploaded successfully!", Inserted: n})
}
