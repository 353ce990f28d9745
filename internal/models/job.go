package models

import "strings"

// OtherTitle is the selection value that switches the effective title
// over to the user-supplied custom text.
const OtherTitle = "Other"

// PredefinedTitles is the fixed list offered by the job select control.
var PredefinedTitles = []string{
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"Mobile Developer",
	"DevOps Engineer",
	"Data Scientist",
	"Data Analyst",
	"QA Engineer",
	"Product Manager",
	"UI/UX Designer",
	OtherTitle,
}

type JobSelection struct {
	PredefinedTitle string `json:"predefined_title"`
	CustomTitle     string `json:"custom_title"`
}

// EffectiveTitle returns the title an analysis will actually run against:
// the trimmed custom text when "Other" is selected, the predefined title
// otherwise. Empty means no valid selection has been made yet.
func (j JobSelection) EffectiveTitle() string {
	if j.PredefinedTitle == OtherTitle {
		return strings.TrimSpace(j.CustomTitle)
	}
	return strings.TrimSpace(j.PredefinedTitle)
}

// IsPredefinedTitle reports whether title is one of the offered options.
func IsPredefinedTitle(title string) bool {
	for _, t := range PredefinedTitles {
		if t == title {
			return true
		}
	}
	return false
}
