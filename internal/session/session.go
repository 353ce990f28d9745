package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"alvindra/resume-match/internal/models"
)

// ErrSessionBusy rejects a trigger while a prior extraction or analysis is
// still in flight. The in-flight operation is never cancelled or queued
// behind; the caller simply retries once the session is idle again.
var ErrSessionBusy = errors.New("session is busy with a previous operation")

// Session is the single client-held state machine driving one analysis
// flow. All mutation happens inside transition methods under the session
// mutex, so there is one logical thread of control per session.
type Session struct {
	ID uuid.UUID

	mu          sync.Mutex
	job         models.JobSelection
	resume      models.ResumeDocument
	result      *models.AnalysisResult
	parsingFile bool
	analyzing   bool
	lastError   string
	lastTouched time.Time
}

func newSession() *Session {
	return &Session{
		ID:          uuid.New(),
		lastTouched: time.Now(),
	}
}

// Snapshot is a consistent copy of the session for rendering.
type Snapshot struct {
	ID          uuid.UUID
	Job         models.JobSelection
	Resume      models.ResumeDocument
	Result      *models.AnalysisResult
	ParsingFile bool
	Analyzing   bool
	LastError   string
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:          s.ID,
		Job:         s.job,
		Resume:      s.resume,
		Result:      s.result,
		ParsingFile: s.parsingFile,
		Analyzing:   s.analyzing,
		LastError:   s.lastError,
	}
}

// SetJobSelection updates the job choice. It never resets the resume or a
// previous result; it only affects what the next analysis trigger uses.
func (s *Session) SetJobSelection(sel models.JobSelection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.job = sel
	s.lastTouched = time.Now()
}

// BeginParsing transitions into the Parsing state, clearing any prior
// result and error. It fails with ErrSessionBusy while another operation
// is in flight.
func (s *Session) BeginParsing() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.parsingFile || s.analyzing {
		return ErrSessionBusy
	}

	s.parsingFile = true
	s.result = nil
	s.lastError = ""
	s.lastTouched = time.Now()
	return nil
}

// CompleteParsing stores the extracted document and enters ResumeReady.
func (s *Session) CompleteParsing(fileName, rawText string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resume = models.ResumeDocument{FileName: fileName, RawText: rawText}
	s.parsingFile = false
	s.lastError = ""
	s.lastTouched = time.Now()
}

// FailParsing clears the resume entirely and stores the user-facing
// message for the failure kind. Each failed selection fully overwrites any
// prior error state.
func (s *Session) FailParsing(kind models.FailureKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resume = models.ResumeDocument{}
	s.parsingFile = false
	s.lastError = kind.UserMessage()
	s.lastTouched = time.Now()
}

// BeginAnalysis validates the trigger preconditions and enters the
// Analyzing state, discarding the previous result and error. Precondition
// violations return *models.ValidationError synchronously; the async flow
// is never started.
func (s *Session) BeginAnalysis() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.parsingFile || s.analyzing {
		return ErrSessionBusy
	}

	if s.job.EffectiveTitle() == "" {
		return &models.ValidationError{Message: "Please select or enter a job title."}
	}

	if !s.resume.IsPresent() {
		return &models.ValidationError{Message: "Please upload a resume first."}
	}

	s.analyzing = true
	s.result = nil
	s.lastError = ""
	s.lastTouched = time.Now()
	return nil
}

// CompleteAnalysis stores the result wholesale and returns to idle.
func (s *Session) CompleteAnalysis(result *models.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = result
	s.analyzing = false
	s.lastError = ""
	s.lastTouched = time.Now()
}

// FailAnalysis returns to idle with the failure kind's user-facing
// message. Internal detail stays in the server log.
func (s *Session) FailAnalysis(kind models.FailureKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analyzing = false
	s.lastError = kind.UserMessage()
	s.lastTouched = time.Now()
}

// EffectiveTitle returns the title the next analysis would run against.
func (s *Session) EffectiveTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.job.EffectiveTitle()
}

// ResumeText returns the currently held resume text, empty when absent.
func (s *Session) ResumeText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resume.RawText
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouched.Before(cutoff) && !s.parsingFile && !s.analyzing
}
