package models

import "time"

// DocumentKind enumerates the paperwork a student can request.
type DocumentKind string

const (
	DocTranscript    DocumentKind = "TRANSCRIPT"
	DocClearanceForm DocumentKind = "CLEARANCE_FORM"
	DocCompletion    DocumentKind = "COMPLETION_LETTER"
)

// KnownDocumentKind reports whether kind is a recognised document type.
func KnownDocumentKind(kind DocumentKind) bool {
	switch kind {
	case DocTranscript, DocClearanceForm, DocCompletion:
		return true
	}
	return false
}

// DocumentRequestStatus is the lifecycle of a document request.
type DocumentRequestStatus string

const (
	DocRequested DocumentRequestStatus = "REQUESTED"
	DocReady     DocumentRequestStatus = "READY"
	DocCollected DocumentRequestStatus = "COLLECTED"
)

// DocumentRequest is one student's request for generated paperwork.
type DocumentRequest struct {
	ID          string                `json:"id"`
	StudentID   string                `json:"student_id"`
	Kind        DocumentKind          `json:"kind"`
	Status      DocumentRequestStatus `json:"status"`
	FilePath    string                `json:"-"`
	RequestedAt time.Time             `json:"requested_at"`
	ReadyAt     *time.Time            `json:"ready_at,omitempty"`
}

// DocumentFilter narrows request listings. Search matches student ID.
type DocumentFilter struct {
	Search   string
	Kind     DocumentKind
	Status   DocumentRequestStatus
	Page     int
	PageSize int
}
