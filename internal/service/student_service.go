package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gradpoint/gms-api/internal/models"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
)

type studentStore interface {
	All() []models.Student
	Get(id string) (models.Student, bool)
	Update(id string, mutate func(*models.Student)) (models.Student, bool)
	Filter(pred func(models.Student) bool) []models.Student
}

// UpdateStudentRequest holds the administratively editable contact fields.
// Classification fields and the registration code are immutable here.
type UpdateStudentRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// StudentRow augments a student with the derived fields list views show.
type StudentRow struct {
	models.Student
	ClearanceStatus models.ClearanceStatus `json:"clearance_status"`
	Progress        int                    `json:"progress"`
	Eligible        bool                   `json:"eligible"`
}

// StudentService handles the students screen use-cases.
type StudentService struct {
	store     studentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(store studentStore, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: store, validator: validate, logger: logger}
}

// List returns students matching the filter with pagination metadata.
// Search covers name, registration code and email.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]StudentRow, *models.Pagination, error) {
	matched := s.store.Filter(func(st models.Student) bool {
		if !matchesSearch(filter.Search, st.Name, st.StudentID, st.Email) {
			return false
		}
		if filter.Faculty != "" && st.Faculty != filter.Faculty {
			return false
		}
		if filter.Program != "" && st.Program != filter.Program {
			return false
		}
		if filter.GraduationYear != 0 && st.GraduationYear != filter.GraduationYear {
			return false
		}
		if filter.Clearance != "" && st.ClearanceStatus() != filter.Clearance {
			return false
		}
		if filter.Payment != "" && st.PaymentStatus != filter.Payment {
			return false
		}
		return true
	})

	page, pagination := paginate(matched, filter.Page, filter.PageSize)
	rows := make([]StudentRow, 0, len(page))
	for _, st := range page {
		rows = append(rows, toRow(st))
	}
	return rows, pagination, nil
}

// Get returns one student with derived fields.
func (s *StudentService) Get(ctx context.Context, id string) (*StudentRow, error) {
	st, ok := s.store.Get(id)
	if !ok {
		return nil, appErrors.ErrUnknownStudent
	}
	row := toRow(st)
	return &row, nil
}

// Update edits the mutable contact attributes of a student.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (*StudentRow, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	updated, ok := s.store.Update(id, func(st *models.Student) {
		st.Name = req.Name
		st.Email = req.Email
		st.Phone = req.Phone
	})
	if !ok {
		return nil, appErrors.ErrUnknownStudent
	}
	row := toRow(updated)
	return &row, nil
}

// Delete is the unwired hook the dashboard exposes: students are never
// removed in any observed flow, so this validates the ID and does nothing.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if _, ok := s.store.Get(id); !ok {
		return appErrors.ErrUnknownStudent
	}
	s.logger.Info("student delete requested, no-op", zap.String("student_id", id))
	return nil
}

func toRow(st models.Student) StudentRow {
	return StudentRow{
		Student:         st,
		ClearanceStatus: st.ClearanceStatus(),
		Progress:        st.Clearance.Progress(),
		Eligible:        st.Eligible(),
	}
}
