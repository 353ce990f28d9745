package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"alvindra/resume-match/internal/models"
)

// PDFMimeType is the only declared content type the extractor accepts.
const PDFMimeType = "application/pdf"

// minReadableChars is the heuristic floor below which a document is treated
// as having no extractable text (e.g. a scanned image), even when the
// library reported no error.
const minReadableChars = 50

type TextExtractor interface {
	Extract(fileBytes []byte, declaredMimeType string) (string, error)
}

type pdfTextExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &pdfTextExtractor{}
}

// Extract converts an uploaded PDF into a single text string, pages joined
// by newlines in page order. Failures come back as *models.ExtractionError.
func (p *pdfTextExtractor) Extract(fileBytes []byte, declaredMimeType string) (string, error) {
	if declaredMimeType != PDFMimeType {
		return "", &models.ExtractionError{
			Kind: models.FailureUnsupportedFormat,
			Err:  fmt.Errorf("declared mime type %q is not %s", declaredMimeType, PDFMimeType),
		}
	}

	text, err := readAllPages(fileBytes)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return "", &models.ExtractionError{Kind: models.FailurePasswordProtected, Err: err}
		}
		return "", &models.ExtractionError{Kind: models.FailureCorruptOrUnreadable, Err: err}
	}

	if len(strings.TrimSpace(text)) < minReadableChars {
		return "", &models.ExtractionError{
			Kind: models.FailureNoReadableText,
			Err:  fmt.Errorf("extracted only %d readable characters", len(strings.TrimSpace(text))),
		}
	}

	return text, nil
}

// readAllPages walks the document page by page and concatenates the text
// content. The pdf library panics on some malformed inputs, so the whole
// read is guarded and a panic surfaces as a plain error.
func readAllPages(fileBytes []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var pages []string
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}

		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
