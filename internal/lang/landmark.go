package lang

import (
	"regexp"

	"github.com/vovakirdan/leaky-buckets/internal/core"
)

// LandmarkKind names one of the three fixed landmarks bound at bootstrap.
type LandmarkKind string

const (
	LandmarkDepot LandmarkKind = "bucket depot"
	LandmarkTap   LandmarkKind = "tap"
	LandmarkPond  LandmarkKind = "pond"
)

var landmarkRe = regexp.MustCompile(`^the (bucket depot|tap|pond) is ` + relFacing + `$`)

// ParseLandmark matches a bootstrap declaration line for the expected
// landmark. Bootstrap consumes declarations in the fixed order
// depot, tap, pond; a mismatch is a fatal assertion error.
func ParseLandmark(text string, want LandmarkKind, lineNum int) (core.Dir, error) {
	m := landmarkRe.FindStringSubmatch(text)
	if m == nil || LandmarkKind(m[1]) != want {
		return core.North, core.Assertionf(lineNum, "expected %s position initialisation", want)
	}
	return relDir(m[2]), nil
}
