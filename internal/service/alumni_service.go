package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gradpoint/gms-api/internal/models"
)

type alumniStore interface {
	Add(r models.AlumniRecord) bool
	HasStudent(studentID string) bool
	Filter(pred func(models.AlumniRecord) bool) []models.AlumniRecord
}

// RolloverResult reports how the rollover went.
type RolloverResult struct {
	Rolled  int `json:"rolled"`
	Skipped int `json:"skipped"`
}

// AlumniService handles the alumni screen: register listing and the
// end-of-cycle rollover of eligible students.
type AlumniService struct {
	alumni     alumniStore
	graduation *GraduationService
	tasks      *TaskService
	logger     *zap.Logger
}

// NewAlumniService constructs the alumni service.
func NewAlumniService(alumni alumniStore, graduation *GraduationService, tasks *TaskService, logger *zap.Logger) *AlumniService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlumniService{alumni: alumni, graduation: graduation, tasks: tasks, logger: logger}
}

// List returns alumni matching the filter. Search covers name,
// registration code and email.
func (s *AlumniService) List(ctx context.Context, filter models.AlumniFilter) ([]models.AlumniRecord, *models.Pagination, error) {
	matched := s.alumni.Filter(func(r models.AlumniRecord) bool {
		if !matchesSearch(filter.Search, r.Name, r.StudentID, r.Email) {
			return false
		}
		if filter.GraduationYear != 0 && r.GraduationYear != filter.GraduationYear {
			return false
		}
		return true
	})
	page, pagination := paginate(matched, filter.Page, filter.PageSize)
	return page, pagination, nil
}

// Rollover copies every currently eligible student onto the alumni
// register through the task queue. The eligible set is snapshotted when
// the task runs; students already registered are skipped, so repeating the
// rollover is harmless.
func (s *AlumniService) Rollover(ctx context.Context) (*models.Task, error) {
	return s.tasks.Submit(ctx, "alumni_rollover", "alumni:rollover", func(taskCtx context.Context) interface{} {
		eligible, _ := s.graduation.Snapshot(taskCtx)
		result := RolloverResult{}
		now := time.Now().UTC()
		for _, st := range eligible {
			record := models.AlumniRecord{
				ID:             uuid.NewString(),
				StudentID:      st.ID,
				Name:           st.Name,
				Email:          st.Email,
				Program:        st.Program,
				Faculty:        st.Faculty,
				GraduationYear: st.GraduationYear,
				RolledAt:       now,
			}
			if s.alumni.Add(record) {
				result.Rolled++
			} else {
				result.Skipped++
			}
		}
		s.logger.Info("alumni rollover finished", zap.Int("rolled", result.Rolled), zap.Int("skipped", result.Skipped))
		return result
	})
}
