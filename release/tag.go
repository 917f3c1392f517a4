package release

import (
	"regexp"
	"time"
)

const tagTimestampLayout = "20060102150405"

// Release tags are fixed-width UTC timestamps, so their lexicographic
// order is their chronological order.
var tagPattern = regexp.MustCompile(`^\d{14}$`)

func NewTimestampTag(now func() time.Time) string {
	return now().UTC().Format(tagTimestampLayout)
}

func IsReleaseTag(tag string) bool {
	return tagPattern.MatchString(tag)
}
