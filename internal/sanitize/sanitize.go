// Package sanitize post-processes grading engine output.
//
// The engine occasionally emits self-contradictory advice of the form
// "don't use hotmail, use gmail" and then, in a separate flag, penalizes
// gmail too. The guide states gmail is acceptable, so any flag that
// mentions gmail without also mentioning hotmail is dropped. This is a
// single targeted rule, not a general contradiction detector.
package sanitize

import (
	"regexp"

	"github.com/silver-dev/resume-checker/internal/domain"
)

var (
	gmailRe   = regexp.MustCompile(`(?i)gmail`)
	hotmailRe = regexp.MustCompile(`(?i)hotmail`)
)

func contradictory(flag string) bool {
	return gmailRe.MatchString(flag) && !hotmailRe.MatchString(flag)
}

func filterFlags(flags []string) []string {
	if flags == nil {
		return nil
	}
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		if contradictory(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Result removes every contradictory flag from both arrays, preserving the
// order of the remainder. Sanitizing an already-sanitized result is a no-op.
func Result(r domain.GradeResult) domain.GradeResult {
	out := r.Clone()
	out.RedFlags = filterFlags(out.RedFlags)
	out.YellowFlags = filterFlags(out.YellowFlags)
	return out
}
