// Package match scores release titles against the shows a user tracks.
package match

import (
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// MatchThreshold is the minimum score for a release title to be considered
// the same show as a tracked search title.
const MatchThreshold = 90

// Candidate pairs a show identifier with its search title.
type Candidate struct {
	ID    int64
	Title string
}

// Result is the winning candidate and its score.
type Result struct {
	Candidate Candidate
	Score     int
}

// normalize lowercases a title and strips punctuation so that release-group
// styling ("Show.Name", "show_name") does not dominate the comparison.
func normalize(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastSpace := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}

	return strings.TrimSpace(b.String())
}

// Score rates the similarity of two titles on a 0-100 scale.
func Score(a, b string) int {
	na, nb := normalize(a), normalize(b)
	if na == "" || nb == "" {
		return 0
	}

	jw := metrics.NewJaroWinkler()
	return int(strutil.Similarity(na, nb, jw) * 100)
}

// Resolve finds the candidate whose title best matches the release title.
// It returns false when no candidate scores at or above MatchThreshold, or
// when there is nothing to match against. Ties keep the earlier candidate.
func Resolve(title string, candidates []Candidate) (Result, bool) {
	var best Result
	found := false

	for _, c := range candidates {
		score := Score(title, c.Title)
		if score < MatchThreshold {
			continue
		}
		if !found || score > best.Score {
			best = Result{Candidate: c, Score: score}
			found = true
		}
	}

	return best, found
}
