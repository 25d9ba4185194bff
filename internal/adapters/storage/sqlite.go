package storage

import (
	"context"
	"time"

	"github.com/vulnscale/vulnscale/internal/core/cvss"
	"github.com/vulnscale/vulnscale/internal/core/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// SQLiteAdapter implements ports.AssessmentRepository using GORM and SQLite.
type SQLiteAdapter struct {
	db *gorm.DB
}

// AssessmentModel is the GORM model for assessments.
type AssessmentModel struct {
	ID        string `gorm:"primaryKey"`
	Vector    string
	Canonical string
	Group     string `gorm:"index"`

	BaseScore          float64
	TemporalScore      *float64
	EnvironmentalScore *float64

	Severity  string    `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
}

// NewSQLiteAdapter initializes the database and migrates the schema.
func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Query spans end up in the same trace as the HTTP handler spans.
	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&AssessmentModel{}); err != nil {
		return nil, err
	}

	return &SQLiteAdapter{db: db}, nil
}

// SaveAssessment inserts or replaces an assessment by ID.
func (a *SQLiteAdapter) SaveAssessment(ctx context.Context, assessment domain.Assessment) error {
	model := toModel(assessment)
	return a.db.WithContext(ctx).Save(&model).Error
}

// GetAssessment returns the assessment with the given ID, or
// gorm.ErrRecordNotFound.
func (a *SQLiteAdapter) GetAssessment(ctx context.Context, id string) (*domain.Assessment, error) {
	var model AssessmentModel
	if err := a.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return toDomain(model), nil
}

// ListAssessments returns up to limit assessments, newest first.
func (a *SQLiteAdapter) ListAssessments(ctx context.Context, limit int) ([]domain.Assessment, error) {
	var models []AssessmentModel
	q := a.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	assessments := make([]domain.Assessment, 0, len(models))
	for _, m := range models {
		assessments = append(assessments, *toDomain(m))
	}
	return assessments, nil
}

// GetAssessmentStats aggregates severity and group counts over the
// whole table.
func (a *SQLiteAdapter) GetAssessmentStats(ctx context.Context) (domain.AssessmentStats, error) {
	stats := domain.AssessmentStats{
		SeverityBreakdown: make(map[domain.SeverityLevel]int),
		GroupBreakdown:    make(map[cvss.Group]int),
	}

	var total int64
	if err := a.db.WithContext(ctx).Model(&AssessmentModel{}).Count(&total).Error; err != nil {
		return stats, err
	}
	stats.Total = int(total)

	type bucket struct {
		Key   string
		Count int
	}

	var bySeverity []bucket
	err := a.db.WithContext(ctx).Model(&AssessmentModel{}).
		Select("severity AS key, COUNT(*) AS count").
		Group("severity").
		Scan(&bySeverity).Error
	if err != nil {
		return stats, err
	}
	for _, b := range bySeverity {
		stats.SeverityBreakdown[domain.SeverityLevel(b.Key)] = b.Count
	}

	var byGroup []bucket
	err = a.db.WithContext(ctx).Model(&AssessmentModel{}).
		Select("`group` AS key, COUNT(*) AS count").
		Group("`group`").
		Scan(&byGroup).Error
	if err != nil {
		return stats, err
	}
	for _, b := range byGroup {
		stats.GroupBreakdown[cvss.Group(b.Key)] = b.Count
	}

	return stats, nil
}

// Close closes the underlying database connection.
func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
