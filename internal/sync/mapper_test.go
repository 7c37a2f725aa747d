package sync

import (
	"testing"
	"time"

	"github.com/Grihladin/42Connect/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(i int64) *int64 { return &i }

func TestMapProfile(t *testing.T) {
	profile := models.RemoteProfile{
		ID:          int64Ptr(42),
		Login:       "jdoe",
		DisplayName: "John Doe",
		Email:       strPtr("jdoe@student.42.fr"),
		Image:       models.RemoteImage{Link: strPtr("https://cdn.intra.42.fr/users/jdoe.jpg")},
		Campus:      []models.RemoteCampus{{Name: "Paris"}, {Name: "Lyon"}},
	}

	student := MapProfile(profile)

	assert.Equal(t, int64(42), student.RemoteID)
	assert.Equal(t, "jdoe", student.Login)
	require.NotNil(t, student.DisplayName)
	assert.Equal(t, "John Doe", *student.DisplayName)
	require.NotNil(t, student.Campus)
	assert.Equal(t, "Paris", *student.Campus)
}

func TestMapProfile_DisplayNameFallsBackToLogin(t *testing.T) {
	student := MapProfile(models.RemoteProfile{ID: int64Ptr(1), Login: "jdoe"})

	require.NotNil(t, student.DisplayName)
	assert.Equal(t, "jdoe", *student.DisplayName)
	assert.Nil(t, student.Campus)
	assert.Nil(t, student.Email)
}

func TestMapProjectUser_SplitsProgressSuffix(t *testing.T) {
	now := time.Now().UTC()
	record := models.RemoteProjectUser{
		ID:     int64Ptr(1001),
		Status: strPtr("in_progress"),
		Project: models.RemoteProjectRef{
			ID:   int64Ptr(55),
			Slug: strPtr("rush-01"),
			Name: strPtr("Rush 01 42"),
		},
	}

	project := MapProjectUser(record, 7, now)

	assert.Equal(t, int64(1001), project.RemoteProjectUserID)
	assert.Equal(t, int64(7), project.StudentID)
	require.NotNil(t, project.Name)
	assert.Equal(t, "Rush 01", *project.Name)
	require.NotNil(t, project.ProgressPercent)
	assert.Equal(t, 42, *project.ProgressPercent)
	assert.Equal(t, now, project.SyncedAt)
}

func TestMapProjectUser_NameWithoutSuffix(t *testing.T) {
	record := models.RemoteProjectUser{
		ID:      int64Ptr(1002),
		Project: models.RemoteProjectRef{Name: strPtr("Libft")},
	}

	project := MapProjectUser(record, 7, time.Now())

	require.NotNil(t, project.Name)
	assert.Equal(t, "Libft", *project.Name)
	assert.Nil(t, project.ProgressPercent)
}

func TestMapProjectUser_NumericOnlyName(t *testing.T) {
	record := models.RemoteProjectUser{
		ID:      int64Ptr(1003),
		Project: models.RemoteProjectRef{Name: strPtr("42")},
	}

	project := MapProjectUser(record, 7, time.Now())

	require.NotNil(t, project.Name)
	assert.Equal(t, "no name", *project.Name)
	require.NotNil(t, project.ProgressPercent)
	assert.Equal(t, 42, *project.ProgressPercent)
}

func TestMapCursusUser(t *testing.T) {
	now := time.Now().UTC()
	began := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	record := models.RemoteCursusUser{
		CursusID: int64Ptr(21),
		Grade:    strPtr("Cadet"),
		BeginAt:  models.RemoteTime{Time: began},
		Cursus:   models.RemoteCursusRef{ID: int64Ptr(21), Name: strPtr("42cursus")},
	}

	enrollment := MapCursusUser(record, 7, 21, now)

	assert.Equal(t, int64(7), enrollment.StudentID)
	assert.Equal(t, int64(21), enrollment.RemoteCursusID)
	require.NotNil(t, enrollment.Name)
	assert.Equal(t, "42cursus", *enrollment.Name)
	require.NotNil(t, enrollment.BeganAt)
	assert.Equal(t, began, *enrollment.BeganAt)
	assert.Nil(t, enrollment.EndedAt)
}
