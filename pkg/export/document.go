package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// StudentDocument carries the fields printed onto generated student
// paperwork (clearance forms, enrollment letters).
type StudentDocument struct {
	Title       string
	StudentName string
	StudentCode string
	Program     string
	Department  string
	Faculty     string
	Lines       []DocumentLine
	IssuedAt    time.Time
}

// DocumentLine is one label/value pair on the document body.
type DocumentLine struct {
	Label string
	Value string
}

// DocumentRenderer produces single-student PDF documents.
type DocumentRenderer struct {
	institution string
}

// NewDocumentRenderer constructs a renderer stamped with the institution name.
func NewDocumentRenderer(institution string) *DocumentRenderer {
	if institution == "" {
		institution = "Office of the Registrar"
	}
	return &DocumentRenderer{institution: institution}
}

// Render lays out a letter-style document for one student.
func (r *DocumentRenderer) Render(doc StudentDocument) ([]byte, error) {
	if doc.Title == "" {
		return nil, fmt.Errorf("document requires a title")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, r.institution, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 9, doc.Title, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	writeField := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	writeField("Student", doc.StudentName)
	writeField("Registration No.", doc.StudentCode)
	if doc.Program != "" {
		writeField("Program", doc.Program)
	}
	if doc.Department != "" {
		writeField("Department", doc.Department)
	}
	if doc.Faculty != "" {
		writeField("Faculty", doc.Faculty)
	}
	pdf.Ln(4)

	for _, line := range doc.Lines {
		writeField(line.Label, line.Value)
	}

	pdf.Ln(10)
	issued := doc.IssuedAt
	if issued.IsZero() {
		issued = time.Now().UTC()
	}
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 8, fmt.Sprintf("Issued on %s", issued.Format("02 January 2006")), "", 1, "L", false, 0, "")

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return buf.Bytes(), nil
}
