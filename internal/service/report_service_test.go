package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradpoint/gms-api/internal/dto"
	"github.com/gradpoint/gms-api/internal/models"
	"github.com/gradpoint/gms-api/internal/store"
	appErrors "github.com/gradpoint/gms-api/pkg/errors"
	"github.com/gradpoint/gms-api/pkg/export"
)

func newReportFixture(t *testing.T, students ...models.Student) *ReportService {
	t.Helper()
	studentStore := seededStudents(students...)
	graduation := NewGraduationService(studentStore, testClassification(), nil)
	return NewReportService(
		studentStore,
		graduation,
		store.NewPaymentLedger(),
		store.NewCeremonyStore(),
		newInlineTasks(),
		export.NewCSVExporter(),
		export.NewPDFExporter(),
		nil,
		ReportServiceConfig{StorageDir: t.TempDir()},
	)
}

func TestGenerateRequiresReportType(t *testing.T) {
	svc := newReportFixture(t)
	ctx := context.Background()

	_, err := svc.Generate(ctx, dto.ReportRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "report type not selected", appErr.Message)

	_, err = svc.Generate(ctx, dto.ReportRequest{Kind: "PAYROLL"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Generate(ctx, dto.ReportRequest{Kind: models.ReportClearanceSummary, Format: "xlsx"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGenerateClearanceSummaryCSV(t *testing.T) {
	svc := newReportFixture(t,
		clearedStudent(1),
		testStudent(2, func(st *models.Student) { st.Faculty = "Faculty of Business" }),
	)

	task, err := svc.Generate(context.Background(), dto.ReportRequest{
		Kind:      models.ReportClearanceSummary,
		Clearance: models.ClearanceSummaryOptions{Faculty: "Faculty of Computing"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, task.Status)

	result, ok := task.Result.(models.ReportResult)
	require.True(t, ok)
	assert.Equal(t, models.FormatCSV, result.Format)

	download, err := svc.ResolveDownload(context.Background(), result.ID)
	require.NoError(t, err)
	defer download.File.Close()

	content, err := io.ReadAll(download.File)
	require.NoError(t, err)
	body := string(content)
	assert.Contains(t, body, "GRD2026001")
	assert.Contains(t, body, string(models.ClearanceCleared))
	// The business student is filtered out.
	assert.NotContains(t, body, "GRD2026002")
}

func TestGenerateGraduationListGroupsBySchool(t *testing.T) {
	other := clearedStudent(2)
	other.Program = "BCom Accounting"
	svc := newReportFixture(t, clearedStudent(1), other)

	task, err := svc.Generate(context.Background(), dto.ReportRequest{
		Kind: models.ReportGraduationList,
		List: models.GraduationListOptions{School: "School of Business"},
	})
	require.NoError(t, err)

	result, ok := task.Result.(models.ReportResult)
	require.True(t, ok)

	download, err := svc.ResolveDownload(context.Background(), result.ID)
	require.NoError(t, err)
	defer download.File.Close()

	content, err := io.ReadAll(download.File)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	// Header plus exactly the one business student.
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "School of Business")
	assert.Contains(t, lines[1], "GRD2026002")
}

func TestResolveDownloadUnknownReport(t *testing.T) {
	svc := newReportFixture(t)
	_, err := svc.ResolveDownload(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
