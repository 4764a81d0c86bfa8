package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aphrc/internship-tracker/internal/models"
	"github.com/aphrc/internship-tracker/internal/repository"
	appErrors "github.com/aphrc/internship-tracker/pkg/errors"
)

func TestGroupDocumentsOrderAndUsage(t *testing.T) {
	docs := []models.Document{
		{ID: "a", Name: "report-2.pdf", Size: 512, Category: models.CategoryReports},
		{ID: "b", Name: "agreement.pdf", Size: 1024, Category: models.CategoryAgreements},
		{ID: "c", Name: "report-1.pdf", Size: 512, Category: models.CategoryReports},
	}
	library := GroupDocuments(docs, 0)

	require.Len(t, library.Groups, 4)
	assert.Equal(t, models.CategoryAgreements, library.Groups[0].Category)
	assert.Equal(t, models.CategoryContracts, library.Groups[1].Category)
	assert.Equal(t, 0, library.Groups[1].Count)
	assert.NotNil(t, library.Groups[1].Documents)
	assert.Equal(t, "Reports & Summaries", library.Groups[2].Label)
	require.Equal(t, 2, library.Groups[2].Count)
	assert.Equal(t, "a", library.Groups[2].Documents[0].ID)
	assert.Equal(t, "c", library.Groups[2].Documents[1].ID)
	assert.Equal(t, "512 Bytes", library.Groups[2].Documents[0].FormattedSize)

	assert.Equal(t, int64(2048), library.TotalBytes)
	assert.InDelta(t, 2048.0/float64(DefaultStorageCapacity), library.StorageUsed, 1e-12)
	assert.Equal(t, "2 KB of 1 GB used", library.StorageLabel)
}

func TestGroupDocumentsClampsUsage(t *testing.T) {
	library := GroupDocuments([]models.Document{{ID: "big", Size: 3000, Category: models.CategoryCertificates}}, 1000)
	assert.Equal(t, 1.0, library.StorageUsed)
	assert.Equal(t, 100.0, library.StoragePercent)

	empty := GroupDocuments(nil, 0)
	assert.Equal(t, 0.0, empty.StorageUsed)
	assert.Equal(t, "0 Bytes of 1 GB used", empty.StorageLabel)
}

func TestGroupDocumentsSeedLibrary(t *testing.T) {
	library := GroupDocuments(repository.DefaultSeed().Documents, 0)
	for _, group := range library.Groups {
		assert.Equal(t, 1, group.Count, "category %s", group.Category)
	}
	assert.Equal(t, int64(690176), library.TotalBytes)
	assert.Equal(t, "674 KB of 1 GB used", library.StorageLabel)
	assert.Equal(t, 0.06, library.StoragePercent)
}

func TestDocumentServiceLifecycle(t *testing.T) {
	feed := NewNotificationService(0, nil, nil)
	svc := NewDocumentService(repository.NewDocumentRepository(repository.DefaultSeed().Documents), 0, nil, feed, nil)
	svc.now = func() time.Time { return time.Date(2024, time.February, 2, 10, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "1", UploadInput{Name: " Week2.pdf ", Size: 2048, Category: models.CategoryReports})
	require.NoError(t, err)
	assert.Equal(t, "Week2.pdf", doc.Name)
	assert.Equal(t, "application/octet-stream", doc.Type)
	assert.Equal(t, "2024-02-02", doc.UploadedAt.String())

	library, err := svc.Library(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, library.Groups[2].Count)
	assert.Equal(t, doc.ID, library.Groups[2].Documents[1].ID)

	descriptor, err := svc.Download(ctx, "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "Internship_Agreement_JohnDoe.pdf", descriptor.Filename)
	assert.Equal(t, "application/pdf", descriptor.ContentType)

	require.NoError(t, svc.Delete(ctx, "1", "2"))
	assert.ErrorIs(t, svc.Delete(ctx, "1", "2"), appErrors.ErrNotFound)

	_, err = svc.Upload(ctx, "1", UploadInput{Name: "x.pdf", Category: "misc"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	_, err = svc.Upload(ctx, "1", UploadInput{Name: "x.pdf", Size: -1, Category: models.CategoryReports})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	feedItems := feed.List("1", time.Time{})
	require.Len(t, feedItems, 5)
	assert.Equal(t, models.OutcomeValidationError, feedItems[0].Outcome)
	assert.Equal(t, models.OutcomeValidationError, feedItems[1].Outcome)
	assert.Equal(t, models.OutcomeDeleted, feedItems[2].Outcome)
	assert.Equal(t, "Contract_Signed.pdf has been removed.", feedItems[2].Message)
	assert.True(t, feedItems[2].Destructive)
	assert.Equal(t, models.OutcomeDownloadStarted, feedItems[3].Outcome)
	assert.Equal(t, "Downloading Internship_Agreement_JohnDoe.pdf...", feedItems[3].Message)
	assert.Equal(t, models.OutcomeUploaded, feedItems[4].Outcome)
	assert.Equal(t, "File upload for reports category initiated.", feedItems[4].Message)
}

func TestNotificationServiceBoundsEachIntern(t *testing.T) {
	feed := NewNotificationService(3, nil, nil)
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	feed.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	feed.Emit("2", models.OutcomeSaved, "b", "")
	feed.Emit("1", models.OutcomeSubmitted, "a", "")
	feed.Emit("1", models.OutcomeUploaded, "c", "")
	feed.Emit("1", models.OutcomeDeleted, "d", "")
	feed.Emit("1", models.OutcomeUploaded, "e", "")

	mine := feed.List("1", time.Time{})
	require.Len(t, mine, 3)
	assert.Equal(t, "e", mine[0].Title)
	assert.Equal(t, "c", mine[2].Title)

	theirs := feed.List("2", time.Time{})
	require.Len(t, theirs, 1)
	assert.Equal(t, "b", theirs[0].Title)

	all := feed.List("", time.Time{})
	require.Len(t, all, 4)
	assert.Equal(t, "e", all[0].Title)
	assert.Equal(t, "b", all[3].Title)

	recent := feed.List("", base.Add(4*time.Second))
	require.Len(t, recent, 1)
	assert.Equal(t, "e", recent[0].Title)
}
