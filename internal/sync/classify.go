package sync

import (
	"strings"

	"github.com/Grihladin/42Connect/models"
)

// piscineKeyword marks placeholder projects that never enter the mirror.
const piscineKeyword = "piscine"

// finishedStatuses are the statuses that mark a project finished on
// their own, regardless of validation or marks.
var finishedStatuses = map[string]struct{}{
	"finished":  {},
	"passed":    {},
	"validated": {},
	"done":      {},
	"completed": {},
}

// inProgressStatuses are the statuses of a project still being worked
// on or awaiting evaluation.
var inProgressStatuses = map[string]struct{}{
	"in_progress":            {},
	"waiting_for_correction": {},
	"searching_a_group":      {},
	"creating_group":         {},
	"parent":                 {},
}

// IsPlaceholderProject reports whether the record is a piscine
// placeholder. Placeholders are never inserted into the mirror; rows
// stored by an earlier, non-filtering version fall out through normal
// absence-deletion because placeholders never enter the seen set.
func IsPlaceholderProject(name, slug *string) bool {
	identity := ""
	if name != nil && *name != "" {
		identity = *name
	} else if slug != nil {
		identity = *slug
	}
	return strings.Contains(strings.ToLower(identity), piscineKeyword)
}

// IsFinishedProject reports whether the project counts as finished:
// explicitly validated, carrying a finished status, or carrying a final
// mark without an in-progress status.
func IsFinishedProject(p models.Project) bool {
	if p.Validated != nil && *p.Validated {
		return true
	}

	status := normalizedStatus(p.Status)
	if _, ok := finishedStatuses[status]; ok {
		return true
	}

	if p.FinalMark != nil {
		_, inProgress := inProgressStatuses[status]
		return !inProgress
	}

	return false
}

// IsInProgressProject reports whether the project is still being worked
// on. Finished and in-progress are advisory labels, not a partition: a
// project can be neither.
func IsInProgressProject(p models.Project) bool {
	status := normalizedStatus(p.Status)
	if _, ok := inProgressStatuses[status]; ok {
		return true
	}

	return !IsFinishedProject(p) && p.FinalMark == nil
}

func normalizedStatus(status *string) string {
	if status == nil {
		return ""
	}
	return strings.ToLower(*status)
}
