package models

import "time"

// Student is the local mirror of one authenticated 42 intra account.
// It owns the Projects and CursusEnrollments collections; deleting a
// student removes both (ON DELETE CASCADE at the schema level).
//
// A student row is created on the first successful profile sync for a
// given RemoteID and never anywhere else. All profile fields are fully
// overwritten on every sync cycle.
type Student struct {
	// ID is the internal surrogate key assigned by the database.
	// It is not exposed via JSON.
	ID int64 `json:"-"`

	// RemoteID is the stable 42 intra user id (forty_two_id column).
	// Unique across the whole store.
	RemoteID int64 `json:"id"`

	// Login is the intra login handle.
	Login string `json:"login"`

	// DisplayName is the human-readable name reported by intra
	// (displayname, falling back to usual_full_name, then login).
	DisplayName *string `json:"displayName,omitempty"`

	// Email is the account email as reported upstream.
	Email *string `json:"email,omitempty"`

	// ImageURL is the avatar link from the intra profile.
	ImageURL *string `json:"imageUrl,omitempty"`

	// Campus is the name of the student's primary campus.
	Campus *string `json:"campus,omitempty"`

	// CreatedAt and UpdatedAt are maintained by the database.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
