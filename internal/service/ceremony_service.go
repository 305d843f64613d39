package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gradpoint/gms-api/internal/models"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
)

type ceremonyStore interface {
	All() []models.CeremonyAttendee
	Get(studentID string) (models.CeremonyAttendee, bool)
	Upsert(a models.CeremonyAttendee)
	Update(studentID string, mutate func(*models.CeremonyAttendee)) (models.CeremonyAttendee, bool)
	Filter(pred func(models.CeremonyAttendee) bool) []models.CeremonyAttendee
}

// CeremonyService handles graduation ceremony logistics: attendance
// confirmation, gown collection and seat assignment.
type CeremonyService struct {
	attendees  ceremonyStore
	graduation *GraduationService
	logger     *zap.Logger
}

// NewCeremonyService constructs the ceremony service.
func NewCeremonyService(attendees ceremonyStore, graduation *GraduationService, logger *zap.Logger) *CeremonyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CeremonyService{attendees: attendees, graduation: graduation, logger: logger}
}

// List returns attendees matching the filter. Search covers name and
// student ID.
func (s *CeremonyService) List(ctx context.Context, filter models.CeremonyFilter) ([]models.CeremonyAttendee, *models.Pagination, error) {
	matched := s.attendees.Filter(func(a models.CeremonyAttendee) bool {
		if !matchesSearch(filter.Search, a.Name, a.StudentID) {
			return false
		}
		if filter.Confirmed != nil && a.Confirmed != *filter.Confirmed {
			return false
		}
		return true
	})
	page, pagination := paginate(matched, filter.Page, filter.PageSize)
	return page, pagination, nil
}

// SyncEligible adds any newly eligible student to the attendee list. Runs
// off a snapshot so the list matches one consistent view of eligibility.
func (s *CeremonyService) SyncEligible(ctx context.Context) int {
	eligible, _ := s.graduation.Snapshot(ctx)
	added := 0
	for _, st := range eligible {
		if _, exists := s.attendees.Get(st.ID); exists {
			continue
		}
		s.attendees.Upsert(models.CeremonyAttendee{
			StudentID: st.ID,
			Name:      st.Name,
			Program:   st.Program,
		})
		added++
	}
	if added > 0 {
		s.logger.Info("ceremony roster synced", zap.Int("added", added))
	}
	return added
}

// Confirm marks an attendee as confirmed and assigns the next seat.
func (s *CeremonyService) Confirm(ctx context.Context, studentID string) (models.CeremonyAttendee, error) {
	seat := s.nextSeat()
	updated, ok := s.attendees.Update(studentID, func(a *models.CeremonyAttendee) {
		if a.Confirmed {
			return
		}
		now := time.Now().UTC()
		a.Confirmed = true
		a.ConfirmedAt = &now
		a.Seat = seat
	})
	if !ok {
		return models.CeremonyAttendee{}, appErrors.Clone(appErrors.ErrNotFound, "attendee not found")
	}
	return updated, nil
}

// CollectGown records gown collection for a confirmed attendee.
func (s *CeremonyService) CollectGown(ctx context.Context, studentID string) (models.CeremonyAttendee, error) {
	a, ok := s.attendees.Get(studentID)
	if !ok {
		return models.CeremonyAttendee{}, appErrors.Clone(appErrors.ErrNotFound, "attendee not found")
	}
	if !a.Confirmed {
		return models.CeremonyAttendee{}, appErrors.Clone(appErrors.ErrValidation, "attendance must be confirmed before gown collection")
	}
	updated, _ := s.attendees.Update(studentID, func(a *models.CeremonyAttendee) {
		a.GownCollected = true
	})
	return updated, nil
}

// Summary aggregates logistics counters. The gown collection rate divides
// collected gowns by confirmed attendees; zero confirmed reads as 0%.
func (s *CeremonyService) Summary(ctx context.Context) models.CeremonySummary {
	all := s.attendees.All()
	summary := models.CeremonySummary{TotalAttendees: len(all)}
	for _, a := range all {
		if a.Confirmed {
			summary.ConfirmedCount++
		}
		if a.GownCollected {
			summary.GownCollectedCount++
		}
	}
	summary.GownCollectionRate = models.PercentDisplay(summary.GownCollectedCount, summary.ConfirmedCount)
	return summary
}

func (s *CeremonyService) nextSeat() string {
	confirmed := 0
	for _, a := range s.attendees.All() {
		if a.Confirmed {
			confirmed++
		}
	}
	row := confirmed/20 + 1
	position := confirmed%20 + 1
	return fmt.Sprintf("R%d-S%02d", row, position)
}
