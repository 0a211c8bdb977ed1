package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ignitai/ignitai-backend/internal/services"
)

type ResultHandler struct {
	archive services.ResultArchive
}

func NewResultHandler(archive services.ResultArchive) *ResultHandler {
	return &ResultHandler{archive: archive}
}

func (h *ResultHandler) ListRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	rows, err := h.archive.ListRecent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": rows, "count": len(rows)})
}
