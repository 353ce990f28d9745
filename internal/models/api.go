package models

// JobSelectionRequest is the payload for updating a session's job choice.
// CustomTitle only matters when PredefinedTitle is "Other".
type JobSelectionRequest struct {
	PredefinedTitle string `json:"predefined_title" validate:"required"`
	CustomTitle     string `json:"custom_title"`
}

type JobListResponse struct {
	Titles []string `json:"titles"`
}
