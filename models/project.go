package models

import "time"

// Project mirrors one intra projects_users record for a student.
//
// RemoteProjectUserID is the stable upstream identity used for diffing:
// a Project row exists only while a projects_users item with that id is
// present in the upstream collection, and is deleted the sync cycle it
// disappears.
type Project struct {
	// ID is the internal surrogate key assigned by the database.
	ID int64 `json:"-"`

	// StudentID references the owning student's internal id.
	StudentID int64 `json:"-"`

	// RemoteProjectUserID is the forty_two_project_user_id column:
	// the upstream projects_users id, unique across the whole store.
	RemoteProjectUserID int64 `json:"projectUserId"`

	// RemoteProjectID is the id of the underlying project definition.
	RemoteProjectID *int64 `json:"projectId,omitempty"`

	// Slug is the project slug (e.g. "ft_printf").
	Slug *string `json:"slug,omitempty"`

	// Name is the display name with any trailing progress-percent
	// suffix already stripped.
	Name *string `json:"name,omitempty"`

	// Status is the free-text lifecycle status reported upstream
	// (e.g. "in_progress", "finished").
	Status *string `json:"status,omitempty"`

	// Validated reports whether the project passed evaluation.
	Validated *bool `json:"validated,omitempty"`

	// FinalMark is the final grade, present only once marked.
	FinalMark *int `json:"finalMark,omitempty"`

	// ProgressPercent is derived from a trailing numeric suffix in the
	// upstream project name, clamped to [0, 100].
	ProgressPercent *int `json:"progressPercent,omitempty"`

	// MarkedAt is when the final mark was given.
	MarkedAt *time.Time `json:"markedAt,omitempty"`

	// SyncedAt is stamped on every reconciliation cycle that saw this record.
	SyncedAt time.Time `json:"syncedAt"`
}

// ProjectView is a mirrored project decorated with its advisory
// classification flags for the read API. The flags are not mutually
// exclusive and a project can carry neither.
type ProjectView struct {
	Project

	Finished   bool `json:"finished"`
	InProgress bool `json:"inProgress"`
}
