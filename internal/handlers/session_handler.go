package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alvindra/resume-match/internal/models"
	"alvindra/resume-match/internal/presenter"
	"alvindra/resume-match/internal/session"
)

type SessionHandler struct {
	store    *session.Store
	validate *validator.Validate
}

func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{
		store:    store,
		validate: validator.New(),
	}
}

// HandleCreateSession handles POST /sessions
func (h *SessionHandler) HandleCreateSession(c *fiber.Ctx) error {
	sess := h.store.Create()
	return presenter.JSON(c, fiber.StatusCreated, presenter.NewSessionView(sess.Snapshot()))
}

// HandleGetSession handles GET /sessions/:id
func (h *SessionHandler) HandleGetSession(c *fiber.Ctx) error {
	sess, err := sessionFromParams(c, h.store)
	if sess == nil {
		return err
	}

	return presenter.JSON(c, fiber.StatusOK, presenter.NewSessionView(sess.Snapshot()))
}

// HandleSetJob handles PUT /sessions/:id/job. Changing the selection never
// resets the uploaded resume or a previous result.
func (h *SessionHandler) HandleSetJob(c *fiber.Ctx) error {
	sess, err := sessionFromParams(c, h.store)
	if sess == nil {
		return err
	}

	var req models.JobSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	if err := h.validate.Struct(&req); err != nil {
		return presenter.Error(c, fiber.StatusBadRequest, "predefined_title is required")
	}

	if !models.IsPredefinedTitle(req.PredefinedTitle) {
		return presenter.Error(c, fiber.StatusBadRequest, "Unknown job title selection")
	}

	sess.SetJobSelection(models.JobSelection{
		PredefinedTitle: req.PredefinedTitle,
		CustomTitle:     req.CustomTitle,
	})

	return presenter.JSON(c, fiber.StatusOK, presenter.NewSessionView(sess.Snapshot()))
}

// HandleListJobs handles GET /jobs
func (h *SessionHandler) HandleListJobs(c *fiber.Ctx) error {
	return presenter.JSON(c, fiber.StatusOK, models.JobListResponse{Titles: models.PredefinedTitles})
}

// sessionFromParams resolves the :id path parameter into a live session.
// On failure the error response has already been written; callers check
// for a nil session and return the given error as-is.
func sessionFromParams(c *fiber.Ctx, store *session.Store) (*session.Session, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, presenter.Error(c, fiber.StatusBadRequest, "Invalid session ID format")
	}

	sess, ok := store.Get(id)
	if !ok {
		return nil, presenter.Error(c, fiber.StatusNotFound, "Session not found")
	}

	return sess, nil
}
