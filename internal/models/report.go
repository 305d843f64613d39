package models

import "time"

// ReportKind is a closed enum of report types. Each kind carries its own
// typed options struct on ReportRequest so an unhandled kind is a
// compile-time concern, not a stringly-typed switch at runtime.
type ReportKind string

const (
	ReportClearanceSummary   ReportKind = "CLEARANCE_SUMMARY"
	ReportGraduationList     ReportKind = "GRADUATION_LIST"
	ReportFinanceCollection  ReportKind = "FINANCE_COLLECTION"
	ReportCeremonyAttendance ReportKind = "CEREMONY_ATTENDANCE"
)

// KnownReportKind reports whether kind is one of the supported reports.
func KnownReportKind(kind ReportKind) bool {
	switch kind {
	case ReportClearanceSummary, ReportGraduationList, ReportFinanceCollection, ReportCeremonyAttendance:
		return true
	}
	return false
}

// ReportFormat selects the rendered output.
type ReportFormat string

const (
	FormatCSV ReportFormat = "csv"
	FormatPDF ReportFormat = "pdf"
)

// ClearanceSummaryOptions narrows the clearance summary report.
type ClearanceSummaryOptions struct {
	Faculty string `json:"faculty,omitempty"`
	Status  string `json:"status,omitempty"`
}

// GraduationListOptions narrows the graduation list report.
type GraduationListOptions struct {
	School string `json:"school,omitempty"`
}

// FinanceCollectionOptions narrows the finance collection report.
type FinanceCollectionOptions struct {
	Method string `json:"method,omitempty"`
}

// CeremonyAttendanceOptions narrows the ceremony attendance report.
type CeremonyAttendanceOptions struct {
	ConfirmedOnly bool `json:"confirmed_only,omitempty"`
}

// ReportResult is the rendered artifact stored until its TTL lapses.
type ReportResult struct {
	ID          string       `json:"id"`
	Kind        ReportKind   `json:"kind"`
	Format      ReportFormat `json:"format"`
	Filename    string       `json:"filename"`
	FilePath    string       `json:"-"`
	GeneratedAt time.Time    `json:"generated_at"`
	ExpiresAt   time.Time    `json:"expires_at"`
}
