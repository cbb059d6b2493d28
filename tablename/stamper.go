package tablename

import (
	"strings"
	"time"
)

// utcStampLayout renders a 14-digit UTC timestamp with second
// resolution. The stamp is purely numeric so the unstamp scan can
// recognize it without ambiguity against letters in the name.
const utcStampLayout = "20060102150405"

// Stamper applies and removes a reversible suffix transformation on a
// name. Unstamp returns ok=false when the name does not carry a
// removable stamp; it never guesses.
type Stamper interface {
	Stamp(name string) string
	Unstamp(name string) (string, bool)
}

// UTCStamper appends "_<14-digit UTC timestamp>" to the last
// dot-separated segment of a possibly qualified name.
type UTCStamper struct {
	// Now supplies the clock; nil means time.Now. Tests inject a
	// fixed clock here.
	Now func() time.Time
}

// Stamp appends the timestamp suffix. The suffix lands on the last
// dot-separated segment, which for a trailing suffix is the same as
// appending to the whole qualified name.
func (s UTCStamper) Stamp(name string) string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return name + "_" + now().UTC().Format(utcStampLayout)
}

// Unstamp strips the trailing stamp by scanning from the end of the
// string. The scan walks back over digits and underscores and splits
// at the leftmost underscore of that run, so any trailing run of
// digits preceded by an underscore is treated as part of the stamp.
// A raw name that itself ends in "_<digits>" therefore unstamps to
// something shorter than itself, which the round-trip check at
// construction turns into an error instead of a silently mangled name.
//
// Returns ok=false when the trailing run contains no underscore with
// digits after it, i.e. the name carries no recognizable stamp.
func (s UTCStamper) Unstamp(name string) (string, bool) {
	split := -1
	digitsSinceUnderscore := false

	for i := len(name) - 1; i >= 0; i-- {
		c := name[i]
		switch {
		case c >= '0' && c <= '9':
			digitsSinceUnderscore = true
		case c == '_':
			if digitsSinceUnderscore {
				split = i
			}
			digitsSinceUnderscore = false
		default:
			if split < 0 {
				return "", false
			}
			return name[:split], true
		}
	}

	if split < 0 {
		return "", false
	}
	return name[:split], true
}

// DefaultStagingSuffix is the literal suffix StagingStamper applies
// when none is configured.
const DefaultStagingSuffix = "staging"

// StagingStamper appends and removes a fixed literal "_<suffix>".
type StagingStamper struct {
	// Suffix overrides DefaultStagingSuffix when non-empty.
	Suffix string
}

func (s StagingStamper) suffix() string {
	if s.Suffix != "" {
		return "_" + s.Suffix
	}
	return "_" + DefaultStagingSuffix
}

// Stamp appends the literal suffix.
func (s StagingStamper) Stamp(name string) string {
	return name + s.suffix()
}

// Unstamp removes the literal suffix. ok=false when the name does not
// end with it.
func (s StagingStamper) Unstamp(name string) (string, bool) {
	trimmed := strings.TrimSuffix(name, s.suffix())
	return trimmed, trimmed != name
}
