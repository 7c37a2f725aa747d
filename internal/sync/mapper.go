package sync

import (
	"time"

	"github.com/Grihladin/42Connect/models"
)

// fallbackProjectName replaces names that strip down to nothing once the
// progress suffix is removed.
const fallbackProjectName = "no name"

// MapProfile shapes the remote profile into the mirrored student row.
// The caller has already verified the profile carries an id.
func MapProfile(profile models.RemoteProfile) models.Student {
	student := models.Student{
		Login:    profile.Login,
		Email:    profile.Email,
		ImageURL: profile.Image.Link,
		Campus:   profile.PrimaryCampus(),
	}
	if profile.ID != nil {
		student.RemoteID = *profile.ID
	}
	if name := profile.BestDisplayName(); name != "" {
		student.DisplayName = &name
	}
	return student
}

// MapProjectUser shapes one projects_users record into the mirrored
// project row for studentID. The name's trailing progress percent, when
// present, is split into ProgressPercent and stripped from Name.
func MapProjectUser(record models.RemoteProjectUser, studentID int64, syncedAt time.Time) models.Project {
	project := models.Project{
		StudentID:       studentID,
		RemoteProjectID: record.Project.ID,
		Slug:            record.Project.Slug,
		Name:            record.Project.Name,
		Status:          record.Status,
		Validated:       record.Validated,
		FinalMark:       record.FinalMark,
		MarkedAt:        record.MarkedAt.Ptr(),
		SyncedAt:        syncedAt,
	}
	if record.ID != nil {
		project.RemoteProjectUserID = *record.ID
	}

	if record.Project.Name != nil {
		if cleaned, percent, ok := ParseProgressPercent(*record.Project.Name); ok {
			if cleaned == "" {
				cleaned = fallbackProjectName
			}
			project.Name = &cleaned
			project.ProgressPercent = &percent
		}
	}

	return project
}

// MapCursusUser shapes one cursus_users record into the mirrored
// enrollment row for studentID. The caller resolves the remote cursus id
// beforehand via [models.RemoteCursusUser.RemoteCursusID].
func MapCursusUser(record models.RemoteCursusUser, studentID, remoteCursusID int64, syncedAt time.Time) models.CursusEnrollment {
	return models.CursusEnrollment{
		StudentID:      studentID,
		RemoteCursusID: remoteCursusID,
		Name:           record.Cursus.Name,
		Grade:          record.Grade,
		BeganAt:        record.BeginAt.Ptr(),
		EndedAt:        record.EndAt.Ptr(),
		SyncedAt:       syncedAt,
	}
}
