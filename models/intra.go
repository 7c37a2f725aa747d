package models

import (
	"encoding/json"
	"time"
)

// RemoteTime wraps time.Time with tolerant JSON decoding for upstream
// timestamps. Null, absent, or unparseable values decode to the zero
// time instead of failing the whole payload.
type RemoteTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *RemoteTime) UnmarshalJSON(b []byte) error {
	t.Time = time.Time{}

	var s *string
	if err := json.Unmarshal(b, &s); err != nil || s == nil {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}

	t.Time = parsed
	return nil
}

// Ptr returns the wrapped time as *time.Time, nil for the zero value.
func (t RemoteTime) Ptr() *time.Time {
	if t.IsZero() {
		return nil
	}
	tt := t.Time
	return &tt
}

// RemoteCampus is the campus fragment embedded in an intra profile.
type RemoteCampus struct {
	Name string `json:"name"`
}

// RemoteImage is the avatar fragment embedded in an intra profile.
type RemoteImage struct {
	Link *string `json:"link"`
}

// RemoteProfile is the narrow slice of the intra /v2/me payload this
// service consumes. ID is a pointer so a missing identity is detectable
// rather than silently zero.
type RemoteProfile struct {
	ID            *int64         `json:"id"`
	Login         string         `json:"login"`
	DisplayName   string         `json:"displayname"`
	UsualFullName string         `json:"usual_full_name"`
	Email         *string        `json:"email"`
	Image         RemoteImage    `json:"image"`
	Campus        []RemoteCampus `json:"campus"`
}

// BestDisplayName resolves the display name the same way intra's own UI
// does: displayname, then usual_full_name, then the login handle.
func (p RemoteProfile) BestDisplayName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.UsualFullName != "" {
		return p.UsualFullName
	}
	return p.Login
}

// PrimaryCampus returns the name of the first listed campus, nil when
// the profile carries none.
func (p RemoteProfile) PrimaryCampus() *string {
	if len(p.Campus) == 0 || p.Campus[0].Name == "" {
		return nil
	}
	name := p.Campus[0].Name
	return &name
}

// RemoteProjectRef is the project fragment embedded in a projects_users
// record.
type RemoteProjectRef struct {
	ID   *int64  `json:"id"`
	Slug *string `json:"slug"`
	Name *string `json:"name"`
}

// RemoteProjectUser is one item of the /v2/projects_users collection.
type RemoteProjectUser struct {
	ID        *int64           `json:"id"`
	Status    *string          `json:"status"`
	Validated *bool            `json:"validated?"`
	FinalMark *int             `json:"final_mark"`
	MarkedAt  RemoteTime       `json:"marked_at"`
	Project   RemoteProjectRef `json:"project"`
}

// RemoteCursusRef is the cursus fragment embedded in a cursus_users record.
type RemoteCursusRef struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

// RemoteCursusUser is one item of the /v2/cursus_users collection.
type RemoteCursusUser struct {
	CursusID *int64          `json:"cursus_id"`
	Grade    *string         `json:"grade"`
	BeginAt  RemoteTime      `json:"begin_at"`
	EndAt    RemoteTime      `json:"end_at"`
	Cursus   RemoteCursusRef `json:"cursus"`
}

// RemoteCursusID resolves the enrollment's cursus identity, preferring
// the top-level cursus_id over the embedded cursus object. Returns
// (0, false) when neither is present.
func (c RemoteCursusUser) RemoteCursusID() (int64, bool) {
	if c.CursusID != nil {
		return *c.CursusID, true
	}
	if c.Cursus.ID != nil {
		return *c.Cursus.ID, true
	}
	return 0, false
}
