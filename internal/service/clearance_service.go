package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gradpoint/gms-api/internal/models"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
)

type clearanceStudentStore interface {
	Get(id string) (models.Student, bool)
	Update(id string, mutate func(*models.Student)) (models.Student, bool)
	Filter(pred func(models.Student) bool) []models.Student
}

// ClearanceRow is one student's clearance state for the clearance screen.
type ClearanceRow struct {
	Student  models.Student         `json:"student"`
	Status   models.ClearanceStatus `json:"status"`
	Progress int                    `json:"progress"`
}

// BulkApproveResult reports the outcome of a bulk approval.
type BulkApproveResult struct {
	Approved int      `json:"approved"`
	Skipped  []string `json:"skipped,omitempty"`
}

// ClearanceService owns the departmental sign-off state machine. The
// aggregate status is always derived from the five flags; nothing ever
// writes it directly.
type ClearanceService struct {
	students clearanceStudentStore
	logger   *zap.Logger
}

// NewClearanceService constructs the clearance service.
func NewClearanceService(students clearanceStudentStore, logger *zap.Logger) *ClearanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClearanceService{students: students, logger: logger}
}

// Approve marks one department as signed off for the student. Approving an
// already-approved department is a no-op in effect.
func (s *ClearanceService) Approve(ctx context.Context, studentID string, dept models.Department) (models.Student, error) {
	return s.setFlag(ctx, studentID, dept, models.DeptApproved)
}

// Reject marks one department as explicitly rejected. Rejection is sticky:
// the aggregate status reads Rejected until the department approves again,
// regardless of how the other offices stand.
func (s *ClearanceService) Reject(ctx context.Context, studentID string, dept models.Department) (models.Student, error) {
	return s.setFlag(ctx, studentID, dept, models.DeptRejected)
}

func (s *ClearanceService) setFlag(ctx context.Context, studentID string, dept models.Department, status models.DepartmentStatus) (models.Student, error) {
	if !models.KnownDepartment(dept) {
		return models.Student{}, appErrors.Clone(appErrors.ErrUnknownDepartment, "unknown department: "+string(dept))
	}
	updated, ok := s.students.Update(studentID, func(st *models.Student) {
		st.Clearance.Set(dept, status)
	})
	if !ok {
		return models.Student{}, appErrors.ErrUnknownStudent
	}
	s.logger.Info("clearance flag set",
		zap.String("student_id", studentID),
		zap.String("department", string(dept)),
		zap.String("status", string(status)),
		zap.String("aggregate", string(updated.ClearanceStatus())),
	)
	return updated, nil
}

// Progress returns the rounded percentage of approved departments.
func (s *ClearanceService) Progress(ctx context.Context, studentID string) (int, error) {
	st, ok := s.students.Get(studentID)
	if !ok {
		return 0, appErrors.ErrUnknownStudent
	}
	return st.Clearance.Progress(), nil
}

// Overview lists clearance rows for the screen, honoring the search term
// (name, registration code, email) and status filter.
func (s *ClearanceService) Overview(ctx context.Context, filter models.StudentFilter) ([]ClearanceRow, *models.Pagination, error) {
	matched := s.students.Filter(func(st models.Student) bool {
		if !matchesSearch(filter.Search, st.Name, st.StudentID, st.Email) {
			return false
		}
		if filter.Clearance != "" && st.ClearanceStatus() != filter.Clearance {
			return false
		}
		if filter.Faculty != "" && st.Faculty != filter.Faculty {
			return false
		}
		return true
	})

	page, pagination := paginate(matched, filter.Page, filter.PageSize)
	rows := make([]ClearanceRow, 0, len(page))
	for _, st := range page {
		rows = append(rows, ClearanceRow{Student: st, Status: st.ClearanceStatus(), Progress: st.Clearance.Progress()})
	}
	return rows, pagination, nil
}

// BulkApprove signs off one department for every selected student still in
// the visible (filtered) set. Unknown or filtered-out ids are skipped, not
// fatal; records outside the selection are untouched.
func (s *ClearanceService) BulkApprove(ctx context.Context, ids []string, dept models.Department, filter models.StudentFilter) (BulkApproveResult, error) {
	if !models.KnownDepartment(dept) {
		return BulkApproveResult{}, appErrors.Clone(appErrors.ErrUnknownDepartment, "unknown department: "+string(dept))
	}

	visible := make(map[string]struct{})
	for _, st := range s.students.Filter(func(st models.Student) bool {
		if !matchesSearch(filter.Search, st.Name, st.StudentID, st.Email) {
			return false
		}
		if filter.Clearance != "" && st.ClearanceStatus() != filter.Clearance {
			return false
		}
		return true
	}) {
		visible[st.ID] = struct{}{}
	}

	result := BulkApproveResult{}
	for _, id := range ids {
		if _, ok := visible[id]; !ok {
			result.Skipped = append(result.Skipped, id)
			continue
		}
		if _, err := s.Approve(ctx, id, dept); err != nil {
			result.Skipped = append(result.Skipped, id)
			continue
		}
		result.Approved++
	}
	return result, nil
}
