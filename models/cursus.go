package models

import "time"

// CursusEnrollment mirrors one intra cursus_users record for a student.
//
// RemoteCursusID is scoped to the owning student: two different students
// may share the same remote cursus id, so the diffing identity is the
// (student, cursus id) pair rather than the cursus id alone.
type CursusEnrollment struct {
	// ID is the internal surrogate key assigned by the database.
	ID int64 `json:"-"`

	// StudentID references the owning student's internal id.
	StudentID int64 `json:"-"`

	// RemoteCursusID is the forty_two_cursus_id column.
	RemoteCursusID int64 `json:"cursusId"`

	// Name is the cursus display name (e.g. "42cursus").
	Name *string `json:"name,omitempty"`

	// Grade is the free-text grade within the cursus (e.g. "Member").
	Grade *string `json:"grade,omitempty"`

	// BeganAt and EndedAt bound the enrollment period.
	BeganAt *time.Time `json:"beganAt,omitempty"`
	EndedAt *time.Time `json:"endedAt,omitempty"`

	// SyncedAt is stamped on every reconciliation cycle that saw this record.
	SyncedAt time.Time `json:"syncedAt"`
}
