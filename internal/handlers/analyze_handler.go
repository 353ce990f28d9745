package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alvindra/resume-match/internal/models"
	"alvindra/resume-match/internal/presenter"
	"alvindra/resume-match/internal/services"
	"alvindra/resume-match/internal/session"
)

type AnalyzeHandler struct {
	store    *session.Store
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(store *session.Store, analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		store:    store,
		analyzer: analyzer,
	}
}

// HandleAnalyze handles POST /sessions/:id/analyze. The analysis runs
// synchronously within the request; the session's busy flags are the sole
// admission control, so a second trigger during an in-flight run gets a
// conflict instead of a queue slot.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	sess, err := sessionFromParams(c, h.store)
	if sess == nil {
		return err
	}

	if _, err := h.analyzer.Analyze(c.Context(), sess); err != nil {
		var validationErr *models.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return presenter.Error(c, fiber.StatusUnprocessableEntity, validationErr.Message)
		case errors.Is(err, session.ErrSessionBusy):
			return presenter.Error(c, fiber.StatusConflict, "An analysis is already running. Please wait.")
		default:
			// Session already holds the user-facing message; the view
			// carries it back alongside the rest of the state.
			return presenter.JSON(c, fiber.StatusBadGateway, presenter.NewSessionView(sess.Snapshot()))
		}
	}

	return presenter.JSON(c, fiber.StatusOK, presenter.NewSessionView(sess.Snapshot()))
}
