package discover

import (
	"strings"

	"github.com/danieljhkim/projswitch/internal/catalog"
)

// Dedupe drops discovered entries whose entire subtitle is already listed
// as a path by some existing entry.
//
// The comparison is exact string membership over the paths split out of
// existing subtitles (on ", "). It is deliberately not path-normalization
// aware: symlinks, trailing slashes, and case differences are not
// reconciled. Known limitation.
func Dedupe(discovered, existing []catalog.Entry) []catalog.Entry {
	known := make(map[string]struct{})
	for _, e := range existing {
		if e.Subtitle == "" {
			continue
		}
		for _, p := range strings.Split(e.Subtitle, ", ") {
			known[p] = struct{}{}
		}
	}

	var kept []catalog.Entry
	for _, d := range discovered {
		if _, ok := known[d.Subtitle]; ok {
			continue
		}
		kept = append(kept, d)
	}
	return kept
}
