package cvedb

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vulnscale/vulnscale/internal/core/domain"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	repo, err := NewSQLiteRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func apacheRecord() domain.CVERecord {
	return domain.CVERecord{
		ID:             "CVE-2002-0392",
		Description:    "Apache chunked-encoding memory corruption",
		Vector:         "AV:N/AC:L/Au:N/C:N/I:N/A:C",
		PublishedScore: 7.8,
		PublishedDate:  time.Date(2002, 6, 20, 0, 0, 0, 0, time.UTC),
		LastModified:   time.Date(2009, 3, 4, 0, 0, 0, 0, time.UTC),
		References:     []string{"http://www.iss.net/security_center/alerts/advise118.php"},
	}
}

func TestUpsertAndGetByID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertCVE(ctx, apacheRecord()))

	cve, err := repo.GetByID(ctx, "CVE-2002-0392")
	require.NoError(t, err)
	require.NotNil(t, cve)
	assert.Equal(t, "AV:N/AC:L/Au:N/C:N/I:N/A:C", cve.Vector)
	assert.Equal(t, 7.8, cve.PublishedScore)
	assert.Nil(t, cve.ComputedScore)
	assert.Equal(t, 2002, cve.PublishedDate.Year())
	assert.Equal(t, []string{"http://www.iss.net/security_center/alerts/advise118.php"}, cve.References)
}

func TestGetByID_Missing(t *testing.T) {
	repo := setupRepo(t)

	cve, err := repo.GetByID(context.Background(), "CVE-1999-0001")
	assert.NoError(t, err)
	assert.Nil(t, cve)
}

func TestUpsertCVE_Overwrites(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	rec := apacheRecord()
	require.NoError(t, repo.UpsertCVE(ctx, rec))

	rec.Description = "updated description"
	rec.PublishedScore = 8.0
	require.NoError(t, repo.UpsertCVE(ctx, rec))

	cve, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated description", cve.Description)
	assert.Equal(t, 8.0, cve.PublishedScore)

	count, err := repo.GetTotalCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpdateComputedScore(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertCVE(ctx, apacheRecord()))
	require.NoError(t, repo.UpdateComputedScore(ctx, "CVE-2002-0392", 7.8, domain.SeverityHigh))

	cve, err := repo.GetByID(ctx, "CVE-2002-0392")
	require.NoError(t, err)
	require.NotNil(t, cve.ComputedScore)
	assert.Equal(t, 7.8, *cve.ComputedScore)
	assert.Equal(t, domain.SeverityHigh, cve.Severity)

	err = repo.UpdateComputedScore(ctx, "CVE-0000-0000", 1.0, domain.SeverityLow)
	assert.Error(t, err)
}

func TestList_OrderAndLimit(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for i, id := range []string{"CVE-2001-0001", "CVE-2002-0002", "CVE-2003-0003"} {
		rec := domain.CVERecord{
			ID:            id,
			Vector:        "AV:N/AC:L/Au:N/C:C/I:C/A:C",
			PublishedDate: time.Date(2001+i, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, repo.UpsertCVE(ctx, rec))
	}

	list, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "CVE-2003-0003", list[0].ID)
	assert.Equal(t, "CVE-2002-0002", list[1].ID)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDatasetStatus(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	status, err := repo.GetDatasetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.LastLoadTime.IsZero())
	assert.Equal(t, 0, status.RecordCount)

	loadTime := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateDatasetStatus(ctx, domain.DatasetStatus{
		LastLoadTime: loadTime,
		RecordCount:  42,
		ErrorMessage: "3 records skipped",
	}))

	status, err = repo.GetDatasetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.LastLoadTime.Equal(loadTime))
	assert.Equal(t, 42, status.RecordCount)
	assert.Equal(t, "3 records skipped", status.ErrorMessage)
}

func TestSeedLoader_LoadFromFile(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	seed := []domain.CVERecord{
		apacheRecord(),
		{
			ID:             "CVE-2003-0818",
			Description:    "Microsoft ASN.1 library integer overflow",
			Vector:         "AV:N/AC:L/Au:N/C:C/I:C/A:C",
			PublishedScore: 10.0,
			PublishedDate:  time.Date(2004, 2, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:     "not-a-cve-id",
			Vector: "AV:N/AC:L/Au:N/C:C/I:C/A:C",
		},
	}
	data, err := json.Marshal(seed)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loader := NewSeedLoader(repo)
	require.NoError(t, loader.LoadFromFile(ctx, path))

	count, err := repo.GetTotalCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	status, err := repo.GetDatasetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, status.RecordCount)
	assert.Equal(t, "1 records skipped", status.ErrorMessage)
	assert.False(t, status.LastLoadTime.IsZero())
}

func TestSeedLoader_LoadFromFile_MissingFile(t *testing.T) {
	loader := NewSeedLoader(setupRepo(t))
	err := loader.LoadFromFile(context.Background(), "/nonexistent/seed.json")
	assert.ErrorContains(t, err, "failed to read seed file")
}

func TestSeedLoader_RescoreAll(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertCVE(ctx, apacheRecord()))
	require.NoError(t, repo.UpsertCVE(ctx, domain.CVERecord{
		ID:            "CVE-2003-0062",
		Vector:        "AV:L/AC:H/Au:N/C:C/I:C/A:C",
		PublishedDate: time.Date(2003, 3, 3, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, repo.UpsertCVE(ctx, domain.CVERecord{
		ID:            "CVE-2004-9999",
		Vector:        "AV:N/AC:L", // incomplete, must be skipped
		PublishedDate: time.Date(2004, 4, 4, 0, 0, 0, 0, time.UTC),
	}))

	loader := NewSeedLoader(repo)
	scored, skipped, err := loader.RescoreAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, scored)
	assert.Equal(t, 1, skipped)

	apache, err := repo.GetByID(ctx, "CVE-2002-0392")
	require.NoError(t, err)
	require.NotNil(t, apache.ComputedScore)
	assert.Equal(t, 7.8, *apache.ComputedScore)
	assert.Equal(t, domain.SeverityHigh, apache.Severity)

	sendmail, err := repo.GetByID(ctx, "CVE-2003-0062")
	require.NoError(t, err)
	require.NotNil(t, sendmail.ComputedScore)
	assert.Equal(t, 6.2, *sendmail.ComputedScore)
	assert.Equal(t, domain.SeverityMedium, sendmail.Severity)

	unscored, err := repo.GetByID(ctx, "CVE-2004-9999")
	require.NoError(t, err)
	assert.Nil(t, unscored.ComputedScore)
}
