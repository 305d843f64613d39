package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gradpoint/gms-api/internal/dto"
	"github.com/gradpoint/gms-api/internal/models"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
	"github.com/gradpoint/gms-api/pkg/export"
)

// ReportServiceConfig governs where rendered reports land and how long
// they stay downloadable.
type ReportServiceConfig struct {
	StorageDir string
	ResultTTL  time.Duration
}

// ReportDownload aggregates resolved download data.
type ReportDownload struct {
	File     *os.File
	Filename string
	Format   models.ReportFormat
}

// ReportService renders the four admin reports through the task queue.
// Rendered artifacts are held in memory until their TTL lapses; the file
// itself sits under StorageDir.
type ReportService struct {
	students   studentStore
	graduation *GraduationService
	ledger     paymentLedger
	attendees  ceremonyStore
	tasks      *TaskService
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	logger     *zap.Logger
	cfg        ReportServiceConfig

	mu      sync.RWMutex
	results map[string]models.ReportResult
}

// NewReportService constructs the report service.
func NewReportService(students studentStore, graduation *GraduationService, ledger paymentLedger, attendees ceremonyStore, tasks *TaskService, csv *export.CSVExporter, pdf *export.PDFExporter, logger *zap.Logger, cfg ReportServiceConfig) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.StorageDir == "" {
		cfg.StorageDir = "./reports"
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	return &ReportService{
		students:   students,
		graduation: graduation,
		ledger:     ledger,
		attendees:  attendees,
		tasks:      tasks,
		csv:        csv,
		pdf:        pdf,
		logger:     logger,
		cfg:        cfg,
		results:    make(map[string]models.ReportResult),
	}
}

// Generate validates the request and submits the rendering task. The task
// result carries the ReportResult whose ID resolves the download.
func (s *ReportService) Generate(ctx context.Context, req dto.ReportRequest) (*models.Task, error) {
	if req.Kind == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "report type not selected")
	}
	if !models.KnownReportKind(req.Kind) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported report type: "+string(req.Kind))
	}
	if req.Format == "" {
		req.Format = models.FormatCSV
	}
	if req.Format != models.FormatCSV && req.Format != models.FormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported report format: "+string(req.Format))
	}

	targetKey := "reports:generate:" + string(req.Kind)
	return s.tasks.Submit(ctx, "generate_report", targetKey, func(taskCtx context.Context) interface{} {
		result, err := s.render(taskCtx, req)
		if err != nil {
			// Rendering never fails the task; the client simply gets no
			// artifact and can resubmit.
			s.logger.Warn("report render failed", zap.String("kind", string(req.Kind)), zap.Error(err))
			return models.ReportResult{Kind: req.Kind, Format: req.Format}
		}
		s.mu.Lock()
		s.results[result.ID] = result
		s.mu.Unlock()
		s.logger.Info("report generated",
			zap.String("report_id", result.ID),
			zap.String("kind", string(req.Kind)),
			zap.String("format", string(req.Format)))
		return result
	})
}

// ResolveDownload opens the stored artifact for a generated report.
func (s *ReportService) ResolveDownload(ctx context.Context, reportID string) (*ReportDownload, error) {
	s.mu.RLock()
	result, ok := s.results[reportID]
	s.mu.RUnlock()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "report not found")
	}
	if time.Now().After(result.ExpiresAt) {
		s.mu.Lock()
		delete(s.results, reportID)
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrNotFound, "report expired")
	}
	f, err := os.Open(result.FilePath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open report file")
	}
	return &ReportDownload{File: f, Filename: result.Filename, Format: result.Format}, nil
}

// Cleanup drops results whose TTL lapsed and removes their files. Returns
// the number of reports purged.
func (s *ReportService) Cleanup(ctx context.Context) int {
	now := time.Now()
	purged := 0
	s.mu.Lock()
	for id, result := range s.results {
		if now.After(result.ExpiresAt) {
			if result.FilePath != "" {
				if err := os.Remove(result.FilePath); err != nil && !os.IsNotExist(err) {
					s.logger.Warn("report file cleanup failed", zap.String("path", result.FilePath), zap.Error(err))
				}
			}
			delete(s.results, id)
			purged++
		}
	}
	s.mu.Unlock()
	return purged
}

// StartCleanup boots a goroutine that purges expired reports periodically.
func (s *ReportService) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Cleanup(ctx)
			}
		}
	}()
}

func (s *ReportService) render(ctx context.Context, req dto.ReportRequest) (models.ReportResult, error) {
	var (
		payload []byte
		err     error
	)
	switch req.Kind {
	case models.ReportClearanceSummary:
		payload, err = s.renderTabular(req.Format, "Clearance Summary", s.clearanceDataset(req.Clearance))
	case models.ReportGraduationList:
		payload, err = s.renderGraduationList(ctx, req.Format, req.List)
	case models.ReportFinanceCollection:
		payload, err = s.renderTabular(req.Format, "Finance Collection", s.financeDataset(req.Finance))
	case models.ReportCeremonyAttendance:
		payload, err = s.renderTabular(req.Format, "Ceremony Attendance", s.ceremonyDataset(req.Ceremony))
	}
	if err != nil {
		return models.ReportResult{}, err
	}

	id := uuid.NewString()
	filename := fmt.Sprintf("%s-%s.%s", strings.ToLower(string(req.Kind)), id[:8], req.Format)
	path := filepath.Join(s.cfg.StorageDir, filename)
	if err := os.MkdirAll(s.cfg.StorageDir, 0o755); err != nil {
		return models.ReportResult{}, fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return models.ReportResult{}, fmt.Errorf("write report file: %w", err)
	}

	now := time.Now().UTC()
	return models.ReportResult{
		ID:          id,
		Kind:        req.Kind,
		Format:      req.Format,
		Filename:    filename,
		FilePath:    path,
		GeneratedAt: now,
		ExpiresAt:   now.Add(s.cfg.ResultTTL),
	}, nil
}

func (s *ReportService) renderTabular(format models.ReportFormat, title string, data export.Dataset) ([]byte, error) {
	if format == models.FormatPDF {
		return s.pdf.Render(data, title)
	}
	return s.csv.Render(data)
}

func (s *ReportService) clearanceDataset(opts models.ClearanceSummaryOptions) export.Dataset {
	headers := []string{"Student ID", "Name", "Faculty", "Program"}
	for _, dept := range models.Departments {
		headers = append(headers, string(dept))
	}
	headers = append(headers, "Status")

	data := export.Dataset{Headers: headers}
	for _, st := range s.students.All() {
		status := st.ClearanceStatus()
		if opts.Faculty != "" && st.Faculty != opts.Faculty {
			continue
		}
		if opts.Status != "" && string(status) != opts.Status {
			continue
		}
		row := map[string]string{
			"Student ID": st.StudentID,
			"Name":       st.Name,
			"Faculty":    st.Faculty,
			"Program":    st.Program,
			"Status":     string(status),
		}
		for _, dept := range models.Departments {
			row[string(dept)] = string(st.Clearance.Get(dept))
		}
		data.Rows = append(data.Rows, row)
	}
	return data
}

func (s *ReportService) renderGraduationList(ctx context.Context, format models.ReportFormat, opts models.GraduationListOptions) ([]byte, error) {
	_, hierarchy := s.graduation.Snapshot(ctx)
	headers := []string{"Student ID", "Name", "Program"}

	if format == models.FormatPDF {
		var sections []export.Section
		for _, school := range hierarchy.Schools {
			if opts.School != "" && school.School != opts.School {
				continue
			}
			for _, level := range school.Levels {
				for _, program := range level.Programs {
					section := export.Section{
						Heading: fmt.Sprintf("%s / %s / %s", school.School, level.Level, program.Program),
						Data:    export.Dataset{Headers: headers},
					}
					for _, st := range program.Students {
						section.Data.Rows = append(section.Data.Rows, map[string]string{
							"Student ID": st.StudentID,
							"Name":       st.Name,
							"Program":    st.Program,
						})
					}
					sections = append(sections, section)
				}
			}
		}
		return s.pdf.RenderSectioned("Graduation List", sections)
	}

	data := export.Dataset{Headers: []string{"School", "Level", "Program", "Student ID", "Name"}}
	for _, school := range hierarchy.Schools {
		if opts.School != "" && school.School != opts.School {
			continue
		}
		for _, level := range school.Levels {
			for _, program := range level.Programs {
				for _, st := range program.Students {
					data.Rows = append(data.Rows, map[string]string{
						"School":     school.School,
						"Level":      string(level.Level),
						"Program":    program.Program,
						"Student ID": st.StudentID,
						"Name":       st.Name,
					})
				}
			}
		}
	}
	return s.csv.Render(data)
}

func (s *ReportService) financeDataset(opts models.FinanceCollectionOptions) export.Dataset {
	data := export.Dataset{Headers: []string{"Reference", "Student ID", "Amount", "Method", "Recorded At"}}
	payments := s.ledger.Filter(func(p models.Payment) bool {
		return opts.Method == "" || string(p.Method) == opts.Method
	})
	for _, p := range payments {
		data.Rows = append(data.Rows, map[string]string{
			"Reference":   p.Reference,
			"Student ID":  p.StudentID,
			"Amount":      fmt.Sprintf("%.2f", p.Amount),
			"Method":      string(p.Method),
			"Recorded At": p.RecordedAt.Format(time.RFC3339),
		})
	}
	return data
}

func (s *ReportService) ceremonyDataset(opts models.CeremonyAttendanceOptions) export.Dataset {
	data := export.Dataset{Headers: []string{"Student ID", "Name", "Program", "Confirmed", "Seat", "Gown Collected"}}
	attendees := s.attendees.Filter(func(a models.CeremonyAttendee) bool {
		return !opts.ConfirmedOnly || a.Confirmed
	})
	for _, a := range attendees {
		data.Rows = append(data.Rows, map[string]string{
			"Student ID":     a.StudentID,
			"Name":           a.Name,
			"Program":        a.Program,
			"Confirmed":      fmt.Sprintf("%t", a.Confirmed),
			"Seat":           a.Seat,
			"Gown Collected": fmt.Sprintf("%t", a.GownCollected),
		})
	}
	return data
}
