package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gradpoint/gms-api/internal/models"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
	"github.com/gradpoint/gms-api/pkg/export"
)

type documentStore interface {
	Add(r models.DocumentRequest)
	Get(id string) (models.DocumentRequest, bool)
	Update(id string, mutate func(*models.DocumentRequest)) (models.DocumentRequest, bool)
	Filter(pred func(models.DocumentRequest) bool) []models.DocumentRequest
	CountByStatus(status models.DocumentRequestStatus) int
}

// RequestDocumentRequest opens a document request for a student.
type RequestDocumentRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Kind      string `json:"kind" validate:"required"`
}

// DocumentService handles the documents screen: request intake and PDF
// generation through the task queue.
type DocumentService struct {
	requests   documentStore
	students   studentStore
	tasks      *TaskService
	renderer   *export.DocumentRenderer
	storageDir string
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewDocumentService constructs the document service.
func NewDocumentService(requests documentStore, students studentStore, tasks *TaskService, renderer *export.DocumentRenderer, storageDir string, validate *validator.Validate, logger *zap.Logger) *DocumentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if storageDir == "" {
		storageDir = "./documents"
	}
	return &DocumentService{
		requests:   requests,
		students:   students,
		tasks:      tasks,
		renderer:   renderer,
		storageDir: storageDir,
		validator:  validate,
		logger:     logger,
	}
}

// List returns document requests matching the filter. Search covers the
// student's registration code.
func (s *DocumentService) List(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentRequest, *models.Pagination, error) {
	matched := s.requests.Filter(func(r models.DocumentRequest) bool {
		if !matchesSearch(filter.Search, r.StudentID) {
			return false
		}
		if filter.Kind != "" && r.Kind != filter.Kind {
			return false
		}
		if filter.Status != "" && r.Status != filter.Status {
			return false
		}
		return true
	})
	page, pagination := paginate(matched, filter.Page, filter.PageSize)
	return page, pagination, nil
}

// Request opens a new document request.
func (s *DocumentService) Request(ctx context.Context, req RequestDocumentRequest) (*models.DocumentRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid document request")
	}
	kind := models.DocumentKind(req.Kind)
	if !models.KnownDocumentKind(kind) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown document kind: "+req.Kind)
	}
	student, ok := s.students.Get(req.StudentID)
	if !ok {
		return nil, appErrors.ErrUnknownStudent
	}

	request := models.DocumentRequest{
		ID:          uuid.NewString(),
		StudentID:   student.ID,
		Kind:        kind,
		Status:      models.DocRequested,
		RequestedAt: time.Now().UTC(),
	}
	s.requests.Add(request)
	return &request, nil
}

// Generate renders the requested document to PDF through the task queue
// and marks the request ready when done.
func (s *DocumentService) Generate(ctx context.Context, requestID string) (*models.Task, error) {
	request, ok := s.requests.Get(requestID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "document request not found")
	}
	student, ok := s.students.Get(request.StudentID)
	if !ok {
		return nil, appErrors.ErrUnknownStudent
	}

	targetKey := "documents:generate:" + requestID
	return s.tasks.Submit(ctx, "generate_document", targetKey, func(taskCtx context.Context) interface{} {
		payload, err := s.render(request.Kind, student)
		if err != nil {
			// Generation never fails the action; the request simply stays
			// in the requested state for another attempt.
			s.logger.Warn("document render failed", zap.String("request_id", requestID), zap.Error(err))
			return request
		}

		path := filepath.Join(s.storageDir, fmt.Sprintf("%s-%s.pdf", request.Kind, request.ID))
		if err := os.MkdirAll(s.storageDir, 0o755); err == nil {
			if err := os.WriteFile(path, payload, 0o644); err != nil {
				s.logger.Warn("document write failed", zap.String("path", path), zap.Error(err))
				path = ""
			}
		} else {
			path = ""
		}

		updated, _ := s.requests.Update(requestID, func(r *models.DocumentRequest) {
			now := time.Now().UTC()
			r.Status = models.DocReady
			r.ReadyAt = &now
			r.FilePath = path
		})

		// Mirror the submission flags the original kept on the student.
		s.students.Update(student.ID, func(st *models.Student) {
			switch request.Kind {
			case models.DocTranscript:
				st.Documents.Transcript = true
			case models.DocClearanceForm:
				st.Documents.ClearanceForm = true
			}
		})
		return updated
	})
}

// Open returns the rendered file for a ready request.
func (s *DocumentService) Open(ctx context.Context, requestID string) (*os.File, models.DocumentRequest, error) {
	request, ok := s.requests.Get(requestID)
	if !ok {
		return nil, models.DocumentRequest{}, appErrors.Clone(appErrors.ErrNotFound, "document request not found")
	}
	if request.Status == models.DocRequested || request.FilePath == "" {
		return nil, models.DocumentRequest{}, appErrors.Clone(appErrors.ErrValidation, "document not generated yet")
	}
	f, err := os.Open(request.FilePath)
	if err != nil {
		return nil, models.DocumentRequest{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open document")
	}
	return f, request, nil
}

func (s *DocumentService) render(kind models.DocumentKind, student models.Student) ([]byte, error) {
	doc := export.StudentDocument{
		StudentName: student.Name,
		StudentCode: student.StudentID,
		Program:     student.Program,
		Department:  student.Department,
		Faculty:     student.Faculty,
		IssuedAt:    time.Now().UTC(),
	}

	switch kind {
	case models.DocTranscript:
		doc.Title = "Academic Transcript"
		doc.Lines = []export.DocumentLine{
			{Label: "Graduation Year", Value: fmt.Sprintf("%d", student.GraduationYear)},
			{Label: "Status", Value: string(student.ClearanceStatus())},
		}
	case models.DocClearanceForm:
		doc.Title = "Graduation Clearance Form"
		doc.Lines = make([]export.DocumentLine, 0, len(models.Departments))
		for _, dept := range models.Departments {
			doc.Lines = append(doc.Lines, export.DocumentLine{
				Label: string(dept),
				Value: string(student.Clearance.Get(dept)),
			})
		}
	case models.DocCompletion:
		doc.Title = "Letter of Completion"
		doc.Lines = []export.DocumentLine{
			{Label: "Graduation Year", Value: fmt.Sprintf("%d", student.GraduationYear)},
		}
	}
	return s.renderer.Render(doc)
}
