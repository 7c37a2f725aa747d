// Package sync reconciles a student's local mirror with the live state
// of the intra API: the profile row, the projects_users collection, and
// the cursus_users collection.
package sync

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// progressSuffix matches a 1-3 digit number at the very end of a project
// name, with optional whitespace before the end. Intra appends the
// completion percent to in-progress project names ("Rush 01 42").
var progressSuffix = regexp.MustCompile(`(\d{1,3})\s*$`)

// ParseProgressPercent splits a trailing completion percent off a
// project name. Returns the cleaned name, the percent clamped to 100,
// and whether a suffix was found at all.
//
// A name consisting only of the number ("42") cleans to an empty string;
// callers decide what to display in that case.
func ParseProgressPercent(name string) (cleaned string, percent int, ok bool) {
	if name == "" {
		return "", 0, false
	}

	match := progressSuffix.FindStringSubmatchIndex(name)
	if match == nil {
		return name, 0, false
	}

	percent, err := strconv.Atoi(name[match[2]:match[3]])
	if err != nil {
		return name, 0, false
	}
	if percent > 100 {
		percent = 100
	}

	cleaned = strings.TrimRightFunc(name[:match[2]], unicode.IsSpace)
	return cleaned, percent, true
}
