package media

import (
	"net/http"
	"strings"

	"portfolio-cms/pkg/apperrors"
	"portfolio-cms/pkg/logger"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	storage  *Storage
	mediaURL string
	log      logger.Logger
}

func NewHandler(storage *Storage, mediaURL string, log logger.Logger) *Handler {
	return &Handler{
		storage:  storage,
		mediaURL: strings.TrimSuffix(mediaURL, "/"),
		log:      log.WithComponent("media"),
	}
}

// Upload handles POST /admin/media/upload. The returned path is what
// content records store in their image columns.
func (h *Handler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid form data")
	}

	files := form.File["file"]
	if len(files) == 0 {
		return apperrors.NewBadRequest(apperrors.ErrCodeMissingField, "No file uploaded")
	}

	relPath, err := h.storage.Save(files[0])
	if err != nil {
		h.log.Warn("Upload rejected", logger.Err(err), logger.String("filename", files[0].Filename))
		return apperrors.NewBadRequest(apperrors.ErrCodeUploadRejected, err.Error())
	}

	h.log.Info("Media uploaded", logger.String("path", relPath))
	return c.JSON(http.StatusCreated, map[string]string{
		"path": relPath,
		"url":  h.mediaURL + "/" + relPath,
	})
}
