package model

import "time"

// GeneratedFile describes a document written to the public file area.
// Files are never cleaned up by this service.
type GeneratedFile struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`

	// Reference and VerificationCode are printed on the document itself.
	Reference        string `json:"reference,omitempty"`
	VerificationCode string `json:"verification_code,omitempty"`
}
