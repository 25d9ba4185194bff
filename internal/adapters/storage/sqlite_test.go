package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vulnscale/vulnscale/internal/core/cvss"
	"github.com/vulnscale/vulnscale/internal/core/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupInMemoryDB creates a new SQLiteAdapter used for testing
func setupInMemoryDB(t *testing.T) *SQLiteAdapter {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&AssessmentModel{})
	require.NoError(t, err)

	return &SQLiteAdapter{db: db}
}

func scorePtr(v float64) *float64 { return &v }

func TestSaveAndGetAssessment(t *testing.T) {
	adapter := setupInMemoryDB(t)
	ctx := context.Background()

	a := domain.Assessment{
		ID:        "b9f1c55e-0000-4000-8000-000000000001",
		Vector:    "A:C/AV:N/AC:L/Au:N/C:N/I:N",
		Canonical: "AV:N/AC:L/Au:N/C:N/I:N/A:C",
		Group:     cvss.GroupBase,
		BaseScore: 7.8,
		Severity:  domain.SeverityHigh,
		CreatedAt: time.Now().UTC(),
	}

	err := adapter.SaveAssessment(ctx, a)
	assert.NoError(t, err)

	stored, err := adapter.GetAssessment(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, a.Vector, stored.Vector)
	assert.Equal(t, a.Canonical, stored.Canonical)
	assert.Equal(t, cvss.GroupBase, stored.Group)
	assert.Equal(t, 7.8, stored.BaseScore)
	assert.Nil(t, stored.TemporalScore)
	assert.Nil(t, stored.EnvironmentalScore)
	assert.Equal(t, domain.SeverityHigh, stored.Severity)
}

func TestGetAssessment_NotFound(t *testing.T) {
	adapter := setupInMemoryDB(t)

	stored, err := adapter.GetAssessment(context.Background(), "missing")
	assert.Nil(t, stored)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSaveAssessment_PreservesOptionalScores(t *testing.T) {
	adapter := setupInMemoryDB(t)
	ctx := context.Background()

	a := domain.Assessment{
		ID:                 "env-1",
		Canonical:          "AV:N/AC:L/Au:N/C:N/I:N/A:C/E:F/RL:OF/RC:C/CDP:H/TD:H/CR:M/IR:M/AR:H",
		Group:              cvss.GroupEnvironmental,
		BaseScore:          7.8,
		TemporalScore:      scorePtr(6.4),
		EnvironmentalScore: scorePtr(9.2),
		Severity:           domain.SeverityHigh,
		CreatedAt:          time.Now().UTC(),
	}
	require.NoError(t, adapter.SaveAssessment(ctx, a))

	stored, err := adapter.GetAssessment(ctx, "env-1")
	require.NoError(t, err)
	require.NotNil(t, stored.TemporalScore)
	assert.Equal(t, 6.4, *stored.TemporalScore)
	require.NotNil(t, stored.EnvironmentalScore)
	assert.Equal(t, 9.2, *stored.EnvironmentalScore)
	assert.Equal(t, 9.2, stored.EffectiveScore())
}

func TestListAssessments_NewestFirstAndLimit(t *testing.T) {
	adapter := setupInMemoryDB(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		a := domain.Assessment{
			ID:        string(rune('a' + i)),
			Group:     cvss.GroupBase,
			BaseScore: float64(i),
			Severity:  domain.SeverityLow,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, adapter.SaveAssessment(ctx, a))
	}

	list, err := adapter.ListAssessments(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "e", list[0].ID)
	assert.Equal(t, "d", list[1].ID)
	assert.Equal(t, "c", list[2].ID)

	all, err := adapter.ListAssessments(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestGetAssessmentStats(t *testing.T) {
	adapter := setupInMemoryDB(t)
	ctx := context.Background()

	seed := []domain.Assessment{
		{ID: "1", Group: cvss.GroupBase, BaseScore: 2.0, Severity: domain.SeverityLow},
		{ID: "2", Group: cvss.GroupBase, BaseScore: 7.8, Severity: domain.SeverityHigh},
		{ID: "3", Group: cvss.GroupTemporal, BaseScore: 7.8, TemporalScore: scorePtr(6.4), Severity: domain.SeverityMedium},
	}
	for _, a := range seed {
		a.CreatedAt = time.Now().UTC()
		require.NoError(t, adapter.SaveAssessment(ctx, a))
	}

	stats, err := adapter.GetAssessmentStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.SeverityBreakdown[domain.SeverityLow])
	assert.Equal(t, 1, stats.SeverityBreakdown[domain.SeverityMedium])
	assert.Equal(t, 1, stats.SeverityBreakdown[domain.SeverityHigh])
	assert.Equal(t, 2, stats.GroupBreakdown[cvss.GroupBase])
	assert.Equal(t, 1, stats.GroupBreakdown[cvss.GroupTemporal])
}

func TestSaveAssessment_Update(t *testing.T) {
	adapter := setupInMemoryDB(t)
	ctx := context.Background()

	a := domain.Assessment{
		ID:        "same-id",
		Group:     cvss.GroupBase,
		BaseScore: 2.0,
		Severity:  domain.SeverityLow,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, adapter.SaveAssessment(ctx, a))

	a.BaseScore = 9.0
	a.Severity = domain.SeverityHigh
	require.NoError(t, adapter.SaveAssessment(ctx, a))

	stored, err := adapter.GetAssessment(ctx, "same-id")
	require.NoError(t, err)
	assert.Equal(t, 9.0, stored.BaseScore)
	assert.Equal(t, domain.SeverityHigh, stored.Severity)

	stats, err := adapter.GetAssessmentStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}
