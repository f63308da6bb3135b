package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

func newService(serviceID, title string) *models.Service {
	return &models.Service{
		ServiceID:   serviceID,
		Title:       title,
		Overview:    "overview",
		KeyBenefits: []string{"fast", "reliable"},
		Approach:    "approach",
		ImageURL:    "/img/svc.png",
	}
}

func TestServiceRepo_SequentialIDs(t *testing.T) {
	openTestDB(t)
	repo := NewServiceRepo()

	id, err := repo.NextServiceID()
	require.NoError(t, err)
	assert.Equal(t, "SRV-001", id)
	require.NoError(t, repo.Create(newService(id, "Cloud Migration")))

	id, err = repo.NextServiceID()
	require.NoError(t, err)
	assert.Equal(t, "SRV-002", id)
	require.NoError(t, repo.Create(newService(id, "DevOps Consulting")))

	id, err = repo.NextServiceID()
	require.NoError(t, err)
	assert.Equal(t, "SRV-003", id)
}

func TestServiceRepo_DuplicateTitleIsConflict(t *testing.T) {
	openTestDB(t)
	repo := NewServiceRepo()

	require.NoError(t, repo.Create(newService("SRV-001", "Cloud Migration")))

	err := repo.Create(newService("SRV-002", "Cloud Migration"))
	require.ErrorIs(t, err, ErrServiceAlreadyExists)

	// Titles are unique case-insensitively
	err = repo.Create(newService("SRV-003", "cloud migration"))
	require.ErrorIs(t, err, ErrServiceAlreadyExists)

	// The first service is unaffected
	got, err := repo.GetByServiceID("SRV-001")
	require.NoError(t, err)
	assert.Equal(t, "Cloud Migration", got.Title)
	assert.Equal(t, []string{"fast", "reliable"}, got.KeyBenefits)
}

func TestCourseRepo_SequentialIDsAndRoundTrip(t *testing.T) {
	openTestDB(t)
	repo := NewCourseRepo()

	id, err := repo.NextCourseID()
	require.NoError(t, err)
	assert.Equal(t, "TRC-001", id)

	require.NoError(t, repo.Create(&models.TrainingCourse{
		CourseID:    id,
		Title:       "Kubernetes Fundamentals",
		Description: "intro course",
		Duration:    "3 days",
		Level:       "beginner",
	}))

	got, err := repo.GetByCourseID("TRC-001")
	require.NoError(t, err)
	assert.Equal(t, "Kubernetes Fundamentals", got.Title)
	assert.Equal(t, "3 days", got.Duration)
}

func TestPostingRepo_DistinctTypesSkipsEmpty(t *testing.T) {
	openTestDB(t)
	repo := NewPostingRepo()

	postings := []*models.CareerPosting{
		{PostingID: "JOB-001", Title: "Backend Engineer", Type: "full-time"},
		{PostingID: "JOB-002", Title: "Trainer", Type: "contract"},
		{PostingID: "JOB-003", Title: "Another Engineer", Type: "full-time"},
		{PostingID: "JOB-004", Title: "Untyped Role", Type: ""},
	}
	for _, p := range postings {
		require.NoError(t, repo.Create(p))
	}

	types, err := repo.DistinctTypes()
	require.NoError(t, err)
	assert.Equal(t, []string{"contract", "full-time"}, types)
}

func TestAdminRepo_EmailLookupIsCaseInsensitive(t *testing.T) {
	openTestDB(t)
	repo := NewAdminRepo()

	require.NoError(t, repo.Create(&models.Admin{
		Email:        "Admin@Bytewave.com",
		Name:         "Administrator",
		PasswordHash: "x",
		IsAdmin:      true,
	}))

	got, err := repo.GetByEmail("admin@bytewave.com")
	require.NoError(t, err)
	assert.Equal(t, "Administrator", got.Name)

	_, err = repo.GetByEmail("nobody@bytewave.com")
	assert.ErrorIs(t, err, ErrAdminNotFound)

	err = repo.Create(&models.Admin{
		Email:        "ADMIN@bytewave.com",
		Name:         "Clone",
		PasswordHash: "y",
		IsAdmin:      true,
	})
	assert.ErrorIs(t, err, ErrAdminAlreadyExists)
}
