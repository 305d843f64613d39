package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gradpoint/gms-api/internal/models"
)

// SystemInfo is the settings screen's system panel.
type SystemInfo struct {
	Version       string               `json:"version"`
	Environment   string               `json:"environment"`
	UptimeSeconds float64              `json:"uptime_seconds"`
	StartedAt     time.Time            `json:"started_at"`
	StudentCount  int                  `json:"student_count"`
	CacheEnabled  bool                 `json:"cache_enabled"`
	Metrics       models.SystemMetrics `json:"metrics"`
}

// BackupResult is the simulated backup outcome.
type BackupResult struct {
	Filename    string    `json:"filename"`
	SizeBytes   int64     `json:"size_bytes"`
	CompletedAt time.Time `json:"completed_at"`
}

// SettingsService backs the settings screen: system information and the
// simulated backup action. The backup renders no real archive; it runs
// through the task queue like every other long action and always reports
// success.
type SettingsService struct {
	students  studentStore
	tasks     *TaskService
	metrics   *MetricsService
	cache     *CacheService
	version   string
	env       string
	startedAt time.Time
	logger    *zap.Logger
}

// NewSettingsService constructs the settings service.
func NewSettingsService(students studentStore, tasks *TaskService, metrics *MetricsService, cache *CacheService, version, env string, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if version == "" {
		version = "dev"
	}
	return &SettingsService{
		students:  students,
		tasks:     tasks,
		metrics:   metrics,
		cache:     cache,
		version:   version,
		env:       env,
		startedAt: time.Now().UTC(),
		logger:    logger,
	}
}

// Info returns the system panel payload.
func (s *SettingsService) Info(ctx context.Context) SystemInfo {
	return SystemInfo{
		Version:       s.version,
		Environment:   s.env,
		UptimeSeconds: time.Since(s.startedAt).Seconds(),
		StartedAt:     s.startedAt,
		StudentCount:  len(s.students.All()),
		CacheEnabled:  s.cache.Enabled(),
		Metrics:       s.metrics.Snapshot(),
	}
}

// Backup submits the simulated backup task.
func (s *SettingsService) Backup(ctx context.Context) (*models.Task, error) {
	return s.tasks.Submit(ctx, "system_backup", "settings:backup", func(taskCtx context.Context) interface{} {
		now := time.Now().UTC()
		count := len(s.students.All())
		result := BackupResult{
			Filename:    fmt.Sprintf("gms-backup-%s.json", now.Format("20060102-150405")),
			SizeBytes:   int64(count) * 512,
			CompletedAt: now,
		}
		s.logger.Info("backup completed", zap.String("filename", result.Filename), zap.Int("students", count))
		return result
	})
}
