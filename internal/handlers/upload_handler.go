package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"alvindra/resume-match/internal/models"
	"alvindra/resume-match/internal/presenter"
	"alvindra/resume-match/internal/services"
	"alvindra/resume-match/internal/session"
)

type UploadHandler struct {
	store       *session.Store
	extractor   services.TextExtractor
	maxFileSize int64
}

func NewUploadHandler(
	store *session.Store,
	extractor services.TextExtractor,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		store:       store,
		extractor:   extractor,
		maxFileSize: maxFileSize,
	}
}

// HandleUploadResume handles POST /sessions/:id/resume. It runs the whole
// extraction sub-flow within the request: Parsing, then either ResumeReady
// or ExtractionFailed with the resume cleared.
func (h *UploadHandler) HandleUploadResume(c *fiber.Ctx) error {
	sess, err := sessionFromParams(c, h.store)
	if sess == nil {
		return err
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return presenter.Error(c, fiber.StatusBadRequest, "No resume file uploaded. Please attach a 'resume' file.")
	}

	if fileHeader.Size > h.maxFileSize {
		return presenter.Error(c, fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	if err := sess.BeginParsing(); err != nil {
		return presenter.Error(c, fiber.StatusConflict, "A previous operation is still running. Please wait.")
	}

	fileBytes, err := readUpload(fileHeader)
	if err != nil {
		log.Printf("❌ Failed to read upload for session %s: %v\n", sess.ID, err)
		sess.FailParsing(models.FailureCorruptOrUnreadable)
		return presenter.JSON(c, fiber.StatusUnprocessableEntity, presenter.NewSessionView(sess.Snapshot()))
	}

	declaredMime := fileHeader.Header.Get("Content-Type")

	text, err := h.extractor.Extract(fileBytes, declaredMime)
	if err != nil {
		kind := models.FailureCorruptOrUnreadable
		var extractionErr *models.ExtractionError
		if errors.As(err, &extractionErr) {
			kind = extractionErr.Kind
		}

		log.Printf("❌ Extraction failed for session %s (%s): %v\n", sess.ID, fileHeader.Filename, err)
		sess.FailParsing(kind)
		return presenter.JSON(c, fiber.StatusUnprocessableEntity, presenter.NewSessionView(sess.Snapshot()))
	}

	sess.CompleteParsing(fileHeader.Filename, text)
	log.Printf("📄 Extracted %d characters from %s for session %s\n", len(text), fileHeader.Filename, sess.ID)

	return presenter.JSON(c, fiber.StatusOK, presenter.NewSessionView(sess.Snapshot()))
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return fileBytes, nil
}
