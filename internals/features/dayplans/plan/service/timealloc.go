// file: internals/features/dayplans/plan/service/timealloc.go
package service

import (
	"regexp"
	"strings"
)

// Format alokasi waktu: "9:05am-12:20pm". Menit wajib dua digit,
// case-insensitive, hyphen ataupun en-dash diterima.
var timeAllocationRe = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}(am|pm)[-–]\d{1,2}:\d{2}(am|pm)$`)

func ValidTimeAllocation(s string) bool {
	return timeAllocationRe.MatchString(strings.TrimSpace(s))
}
