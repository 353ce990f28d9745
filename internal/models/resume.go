package models

// ResumeDocument holds the extracted text of a successfully parsed upload.
// Either both fields are set or both are empty; a failed extraction always
// clears the whole document.
type ResumeDocument struct {
	FileName string `json:"file_name"`
	RawText  string `json:"-"`
}

func (r ResumeDocument) IsPresent() bool {
	return r.FileName != "" && r.RawText != ""
}
