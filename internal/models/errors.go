package models

import "fmt"

// FailureKind classifies everything that can go wrong between a file
// selection and a rendered result.
type FailureKind string

const (
	FailureUnsupportedFormat   FailureKind = "unsupported_format"
	FailureNoReadableText      FailureKind = "no_readable_text"
	FailurePasswordProtected   FailureKind = "password_protected"
	FailureCorruptOrUnreadable FailureKind = "corrupt_or_unreadable"
	FailureService             FailureKind = "service_failure"
	FailureParse               FailureKind = "parse_failure"
	FailureValidation          FailureKind = "validation_error"
)

// userMessages maps each failure kind to the single message shown to the
// end user. Diagnostic detail stays in the server log.
var userMessages = map[FailureKind]string{
	FailureUnsupportedFormat:   "Please upload a PDF file.",
	FailureNoReadableText:      "No readable text found in this PDF. It may be a scanned image.",
	FailurePasswordProtected:   "This PDF is password-protected. Please upload an unlocked copy.",
	FailureCorruptOrUnreadable: "This PDF could not be read. Please try a different file.",
	FailureService:             "The analysis service is unavailable right now. Please try again.",
	FailureParse:               "The analysis could not be completed. Please try again.",
	FailureValidation:          "Select a job title and upload a resume before analyzing.",
}

// UserMessage returns the user-facing message for the kind.
func (k FailureKind) UserMessage() string {
	if msg, ok := userMessages[k]; ok {
		return msg
	}
	return "Something went wrong. Please try again."
}

// ExtractionError is a classified failure from the PDF text extractor.
type ExtractionError struct {
	Kind FailureKind
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("extraction failed (%s)", e.Kind)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ServiceError is the single opaque failure kind for the AI service call.
// The upstream boundary does not guarantee distinguishable error surfaces,
// so timeouts, auth and rate limits all collapse into it.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("analysis service call failed: %v", e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// ParseError reports malformed model output. Raw keeps the full response
// text for diagnostics; it is logged, never rendered.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse analysis response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError is returned synchronously when an analysis trigger is
// attempted without its preconditions.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
