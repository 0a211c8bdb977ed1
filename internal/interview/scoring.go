package interview

import (
	"math"
	"strings"
	"unicode/utf16"
)

const (
	basicBaseline = 50
	minBasicScore = 20
	maxScore      = 100
)

func Analyze(answer string) Analysis {
	return Analysis{
		Length:    textLength(answer),
		WordCount: len(strings.Fields(answer)),
	}
}

func lengthPoints(answer string) int {
	n := textLength(answer)
	pts := 0
	if n > 50 {
		pts += 5
	}
	if n > 100 {
		pts += 5
	}
	return pts
}

// textLength counts UTF-16 code units, so characters outside the BMP such
// as emoji count twice, the way browser clients measure text.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// countKeywords counts distinct keywords present in text, case-insensitively.
func countKeywords(text string, keywords []string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			n++
		}
	}
	return n
}

// ScoreBasic scores a basic-flow session's answers for a track.
func ScoreBasic(track string, answers []string) int {
	t := LookupTrack(track)
	score := basicBaseline
	for _, a := range answers {
		score += lengthPoints(a)
		score += 3 * countKeywords(a, t.Keywords)
		score += 2 * countKeywords(a, enthusiasmWords)
	}
	return clamp(score, minBasicScore, maxScore)
}

// ScoreRound scores the answers of one advanced-flow round. Only the upper
// bound is clamped.
func ScoreRound(round int, answers []string) int {
	score := roundBaselines[round]
	for _, a := range answers {
		score += lengthPoints(a)
		score += 3 * countKeywords(a, roundKeywords[round])
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

// OverallScore is the rounded mean of the round scores.
func OverallScore(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type Tier int

const (
	TierDeveloping Tier = iota
	TierGood
	TierStrong
)

func TierFor(score int) Tier {
	switch {
	case score >= 80:
		return TierStrong
	case score >= 60:
		return TierGood
	default:
		return TierDeveloping
	}
}
