package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ignitai/ignitai-backend/internal/services"
	"github.com/ignitai/ignitai-backend/internal/utils"
)

const maxUploadSize = 10 << 20

type APIError struct {
	Error string     `json:"error"`
	Code  utils.Code `json:"code"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// writeError renders err as {"error", "code"}. Server-side failures are
// attached to the gin context so the request logger records the cause.
func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{Error: utils.SafeMessage(err), Code: ae.Code})
		return
	}

	c.JSON(status, APIError{Error: http.StatusText(status), Code: utils.CodeInternal})
}

// bindOptionalJSON binds a JSON body that may be absent. An empty body,
// chunked or not, leaves v untouched.
func bindOptionalJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func badRequest(op, msg string, err error) error {
	return utils.E(utils.CodeInvalidArgument, op, msg, err)
}

// readUpload reads an optional multipart file. It returns nil when the field
// is absent. accept may reject the sniffed content type.
func readUpload(c *gin.Context, op, field string, accept func(contentType string) bool) (*services.UploadedFile, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, badRequest(op, "invalid multipart field '"+field+"'", err)
	}
	if fh.Size > maxUploadSize {
		return nil, badRequest(op, "file too large (max 10MB)", nil)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to open upload", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to read upload", err)
	}
	if len(content) > maxUploadSize {
		return nil, badRequest(op, "file too large (max 10MB)", nil)
	}

	ct := http.DetectContentType(content)
	if accept != nil && !accept(ct) {
		return nil, badRequest(op, "unsupported file type", nil)
	}

	return &services.UploadedFile{Filename: fh.Filename, ContentType: ct, Content: content}, nil
}

func isImage(contentType string) bool { return strings.HasPrefix(contentType, "image/") }
