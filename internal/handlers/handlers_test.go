package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alvindra/resume-match/internal/models"
	"alvindra/resume-match/internal/presenter"
	"alvindra/resume-match/internal/services"
	"alvindra/resume-match/internal/session"
)

const cannedResponse = `{
	"overallScore": 90,
	"summary": "Strong match.",
	"breakdown": [
		{"criterion": "Current role requirements", "score": 9, "feedback": "solid"}
	],
	"keywordAnalysis": {"foundKeywords": ["React"], "missingKeywords": ["GraphQL"]}
}`

type stubClient struct {
	response string
	err      error
	calls    int
}

func (s *stubClient) Submit(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestApp(t *testing.T, client services.AnalysisClient) (*fiber.App, *session.Store) {
	t.Helper()

	store := session.NewStore(30*time.Minute, time.Minute)

	parser, err := services.NewResponseParser()
	require.NoError(t, err)

	sessionHandler := NewSessionHandler(store)
	uploadHandler := NewUploadHandler(store, services.NewTextExtractor(), 10<<20)
	analyzeHandler := NewAnalyzeHandler(store, services.NewAnalyzerService(client, parser))

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Get("/jobs", sessionHandler.HandleListJobs)
	api.Post("/sessions", sessionHandler.HandleCreateSession)
	api.Get("/sessions/:id", sessionHandler.HandleGetSession)
	api.Put("/sessions/:id/job", sessionHandler.HandleSetJob)
	api.Post("/sessions/:id/resume", uploadHandler.HandleUploadResume)
	api.Post("/sessions/:id/analyze", analyzeHandler.HandleAnalyze)

	return app, store
}

func decodeView(t *testing.T, resp *http.Response) presenter.SessionView {
	t.Helper()

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var view presenter.SessionView
	require.NoError(t, json.Unmarshal(body, &view))
	return view
}

func multipartUpload(t *testing.T, url, contentType string, fileBytes []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="resume"; filename="resume.pdf"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(fileBytes)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestCreateAndGetSession(t *testing.T) {
	app, _ := newTestApp(t, &stubClient{})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	view := decodeView(t, resp)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, presenter.ViewPlaceholder, view.View)
	assert.False(t, view.CanAnalyze)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+view.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetSession_UnknownAndMalformedIDs(t *testing.T) {
	app, _ := newTestApp(t, &stubClient{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet,
		"/api/v1/sessions/00000000-0000-0000-0000-000000000000", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSetJob_RejectsUnknownSelection(t *testing.T) {
	app, store := newTestApp(t, &stubClient{})
	sess := store.Create()

	payload := strings.NewReader(`{"predefined_title": "Wizard"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/"+sess.ID.String()+"/job", payload)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSetJob_OtherWithCustomTitle(t *testing.T) {
	app, store := newTestApp(t, &stubClient{})
	sess := store.Create()

	payload := strings.NewReader(`{"predefined_title": "Other", "custom_title": " Site Reliability Engineer "}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/"+sess.ID.String()+"/job", payload)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	view := decodeView(t, resp)
	assert.Equal(t, "Site Reliability Engineer", view.Job.EffectiveTitle)
}

func TestUploadResume_NonPDFDeclaredTypeClearsResume(t *testing.T) {
	app, store := newTestApp(t, &stubClient{})
	sess := store.Create()

	req := multipartUpload(t, "/api/v1/sessions/"+sess.ID.String()+"/resume",
		"text/plain", []byte("just some text"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	view := decodeView(t, resp)
	assert.Nil(t, view.Resume)
	assert.Equal(t, models.FailureUnsupportedFormat.UserMessage(), view.Error)

	snap := sess.Snapshot()
	assert.Empty(t, snap.Resume.FileName)
	assert.Empty(t, snap.Resume.RawText)
}

func TestUploadResume_CorruptPDF(t *testing.T) {
	app, store := newTestApp(t, &stubClient{})
	sess := store.Create()

	req := multipartUpload(t, "/api/v1/sessions/"+sess.ID.String()+"/resume",
		"application/pdf", []byte("%PDF-1.4 garbage"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	view := decodeView(t, resp)
	assert.Equal(t, models.FailureCorruptOrUnreadable.UserMessage(), view.Error)
}

func TestAnalyze_ValidationBeforeAnyServiceCall(t *testing.T) {
	client := &stubClient{response: cannedResponse}
	app, store := newTestApp(t, client)

	// Resume present, but "Other" with an empty custom title.
	sess := store.Create()
	sess.SetJobSelection(models.JobSelection{PredefinedTitle: models.OtherTitle})
	sess.CompleteParsing("resume.pdf", strings.Repeat("text ", 40))

	resp, err := app.Test(httptest.NewRequest(http.MethodPost,
		"/api/v1/sessions/"+sess.ID.String()+"/analyze", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Zero(t, client.calls)
}

func TestAnalyze_FullFlowRendersHighScore(t *testing.T) {
	app, store := newTestApp(t, &stubClient{response: cannedResponse})

	sess := store.Create()
	sess.SetJobSelection(models.JobSelection{PredefinedTitle: "Frontend Developer"})
	sess.CompleteParsing("resume.pdf", strings.Repeat("react typescript frontend ", 8))

	resp, err := app.Test(httptest.NewRequest(http.MethodPost,
		"/api/v1/sessions/"+sess.ID.String()+"/analyze", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	view := decodeView(t, resp)
	assert.Equal(t, presenter.ViewResult, view.View)
	require.NotNil(t, view.Result)
	assert.Equal(t, 90, view.Result.OverallScore)
	assert.Equal(t, "high-score", view.Result.ScoreClass)
	assert.Equal(t, []string{"GraphQL"}, view.Result.KeywordAnalysis.MissingKeywords)
}

func TestAnalyze_ServiceFailureSurfacesUserMessage(t *testing.T) {
	client := &stubClient{err: &models.ServiceError{Err: errors.New("upstream down")}}
	app, store := newTestApp(t, client)

	sess := store.Create()
	sess.SetJobSelection(models.JobSelection{PredefinedTitle: "Backend Developer"})
	sess.CompleteParsing("resume.pdf", strings.Repeat("golang ", 20))

	resp, err := app.Test(httptest.NewRequest(http.MethodPost,
		"/api/v1/sessions/"+sess.ID.String()+"/analyze", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	view := decodeView(t, resp)
	assert.Equal(t, models.FailureService.UserMessage(), view.Error)
	assert.NotContains(t, view.Error, "upstream down")
}

func TestListJobs(t *testing.T) {
	app, _ := newTestApp(t, &stubClient{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	var jobs models.JobListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&jobs))
	assert.Contains(t, jobs.Titles, "Frontend Developer")
	assert.Contains(t, jobs.Titles, models.OtherTitle)
}
