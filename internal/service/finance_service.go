package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gradpoint/gms-api/internal/models"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
)

type paymentLedger interface {
	Append(p models.Payment)
	Filter(pred func(models.Payment) bool) []models.Payment
	TotalAmount() float64
}

// RecordPaymentRequest is the finance dialog payload.
type RecordPaymentRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,oneof=CASH BANK_TRANSFER MOBILE_MONEY CARD"`
	Reference string  `json:"reference" validate:"required"`
}

// BulkRemindRequest names the selected students and the filter that was
// active when the selection was made.
type BulkRemindRequest struct {
	IDs    []string `json:"ids" validate:"required,min=1"`
	Search string   `json:"search"`
}

// RemindResult reports how many reminders went out.
type RemindResult struct {
	Reminded int      `json:"reminded"`
	Skipped  []string `json:"skipped,omitempty"`
}

// FinanceService handles the finance screen: payment recording, fee
// waivers, reminders and the collection summary.
type FinanceService struct {
	students  studentStore
	ledger    paymentLedger
	tasks     *TaskService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFinanceService constructs the finance service.
func NewFinanceService(students studentStore, ledger paymentLedger, tasks *TaskService, validate *validator.Validate, logger *zap.Logger) *FinanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceService{students: students, ledger: ledger, tasks: tasks, validator: validate, logger: logger}
}

// RecordPayment validates the payload and submits the recording task. The
// student's payment status flips to Paid and the transaction lands on the
// ledger when the task completes.
func (s *FinanceService) RecordPayment(ctx context.Context, req RecordPaymentRequest, actorID string) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment payload")
	}
	if _, ok := s.students.Get(req.StudentID); !ok {
		return nil, appErrors.ErrUnknownStudent
	}

	targetKey := "finance:record:" + req.StudentID
	return s.tasks.Submit(ctx, "record_payment", targetKey, func(taskCtx context.Context) interface{} {
		updated, ok := s.students.Update(req.StudentID, func(st *models.Student) {
			st.PaymentStatus = models.PaymentPaid
			st.Documents.FeeReceipt = true
		})
		if !ok {
			// Student vanished between submit and execution; skip, don't crash.
			return RemindResult{Skipped: []string{req.StudentID}}
		}
		payment := models.Payment{
			ID:         uuid.NewString(),
			StudentID:  req.StudentID,
			Amount:     req.Amount,
			Method:     models.PaymentMethod(req.Method),
			Reference:  req.Reference,
			RecordedBy: actorID,
			RecordedAt: time.Now().UTC(),
		}
		s.ledger.Append(payment)
		s.logger.Info("payment recorded",
			zap.String("student_id", req.StudentID),
			zap.Float64("amount", req.Amount),
			zap.String("aggregate_payment", string(updated.PaymentStatus)),
		)
		return payment
	})
}

// Waive marks the student's fees as waived without a ledger entry.
func (s *FinanceService) Waive(ctx context.Context, studentID string) (models.Student, error) {
	updated, ok := s.students.Update(studentID, func(st *models.Student) {
		st.PaymentStatus = models.PaymentWaived
	})
	if !ok {
		return models.Student{}, appErrors.ErrUnknownStudent
	}
	return updated, nil
}

// ListPayments returns ledger entries matching the filter. Search covers
// student ID and reference.
func (s *FinanceService) ListPayments(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, *models.Pagination, error) {
	matched := s.ledger.Filter(func(p models.Payment) bool {
		if !matchesSearch(filter.Search, p.StudentID, p.Reference) {
			return false
		}
		if filter.Method != "" && p.Method != filter.Method {
			return false
		}
		return true
	})
	page, pagination := paginate(matched, filter.Page, filter.PageSize)
	return page, pagination, nil
}

// BulkRemind simulates payment reminders to the selected students that are
// both still visible under the active filter and still unpaid.
func (s *FinanceService) BulkRemind(ctx context.Context, req BulkRemindRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "no students selected")
	}

	visible := make(map[string]struct{})
	for _, st := range s.students.Filter(func(st models.Student) bool {
		return st.PaymentStatus == models.PaymentPending &&
			matchesSearch(req.Search, st.Name, st.StudentID, st.Email)
	}) {
		visible[st.ID] = struct{}{}
	}
	targets := intersectVisible(req.IDs, visible)

	return s.tasks.Submit(ctx, "send_reminders", "finance:remind", func(taskCtx context.Context) interface{} {
		result := RemindResult{Reminded: len(targets)}
		for _, id := range req.IDs {
			if _, ok := visible[id]; !ok {
				result.Skipped = append(result.Skipped, id)
			}
		}
		s.logger.Info("payment reminders sent", zap.Int("count", result.Reminded))
		return result
	})
}

// Summary aggregates fee collection for the screen header. The collection
// rate divides paid students by billable (non-waived) students; zero
// billable students reads as 0%.
func (s *FinanceService) Summary(ctx context.Context) models.FinanceSummary {
	all := s.students.All()
	summary := models.FinanceSummary{TotalStudents: len(all)}
	for _, st := range all {
		switch st.PaymentStatus {
		case models.PaymentPaid:
			summary.PaidCount++
		case models.PaymentPending:
			summary.PendingCount++
		case models.PaymentWaived:
			summary.WaivedCount++
		}
	}
	billable := summary.PaidCount + summary.PendingCount
	summary.CollectionRate = models.PercentDisplay(summary.PaidCount, billable)
	summary.TotalCollected = s.ledger.TotalAmount()
	return summary
}
