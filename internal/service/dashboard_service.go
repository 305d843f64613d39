package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/gradpoint/gms-api/internal/models"
)

const dashboardSummaryKey = "dashboard:summary"

// DashboardService assembles the landing screen aggregates. Figures are
// always recomputed from the live stores; the cache only shortcuts the
// aggregation itself and is invalidated whenever a mutation goes through.
type DashboardService struct {
	students  studentStore
	documents documentStore
	cache     *CacheService
	metrics   *MetricsService
	ttl       time.Duration
	logger    *zap.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(students studentStore, documents documentStore, cache *CacheService, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &DashboardService{
		students:  students,
		documents: documents,
		cache:     cache,
		metrics:   metrics,
		ttl:       ttl,
		logger:    logger,
	}
}

// Summary returns the dashboard aggregates, served from cache when fresh.
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	var cached models.DashboardSummary
	if hit, err := s.cache.Get(ctx, dashboardSummaryKey, &cached); err == nil && hit {
		return &cached, nil
	}

	summary := s.compute()
	if err := s.cache.Set(ctx, dashboardSummaryKey, summary, s.ttl); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
	return summary, nil
}

// Invalidate drops the cached summary after a mutation.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, dashboardSummaryKey); err != nil {
		s.logger.Warn("dashboard cache invalidate failed", zap.Error(err))
	}
}

func (s *DashboardService) compute() *models.DashboardSummary {
	students := s.students.All()

	clearanceCounts := map[string]int{
		string(models.ClearanceInProgress): 0,
		string(models.ClearanceCleared):    0,
		string(models.ClearanceRejected):   0,
	}
	paymentCounts := map[string]int{
		string(models.PaymentPending): 0,
		string(models.PaymentPaid):    0,
		string(models.PaymentWaived):  0,
	}
	byFaculty := map[string]*models.FacultyCount{}
	eligible := 0

	for _, st := range students {
		clearanceCounts[string(st.ClearanceStatus())]++
		paymentCounts[string(st.PaymentStatus)]++

		fc, ok := byFaculty[st.Faculty]
		if !ok {
			fc = &models.FacultyCount{Faculty: st.Faculty}
			byFaculty[st.Faculty] = fc
		}
		fc.Total++
		if st.Eligible() {
			fc.Eligible++
			eligible++
		}
	}

	faculties := make([]models.FacultyCount, 0, len(byFaculty))
	for _, fc := range byFaculty {
		faculties = append(faculties, *fc)
	}
	sort.Slice(faculties, func(i, j int) bool { return faculties[i].Faculty < faculties[j].Faculty })

	for status, count := range clearanceCounts {
		s.metrics.SetClearanceGauge(status, count)
	}
	s.metrics.SetEligibleGauge(eligible)

	pendingDocs := 0
	if s.documents != nil {
		pendingDocs = s.documents.CountByStatus(models.DocRequested)
	}

	return &models.DashboardSummary{
		TotalStudents:    len(students),
		ClearanceCounts:  clearanceCounts,
		PaymentCounts:    paymentCounts,
		EligibleCount:    eligible,
		EligibleRate:     models.PercentDisplay(eligible, len(students)),
		ByFaculty:        faculties,
		PendingDocuments: pendingDocs,
		GeneratedAt:      time.Now().UTC(),
	}
}
