package service

import (
	"regexp"
	"strconv"
	"strings"
)

// The upstream model promises no schema, so normalization is pattern
// matching with graceful degradation: callers get either a structured
// result or the raw text, never an error.

// NormalizedResult is the tagged outcome of normalizing analysis text.
// It is either a StructuredResult or a RawTextResult; callers must
// handle both variants.
type NormalizedResult interface {
	isNormalized()
}

// StructuredResult carries whatever the normalizer managed to extract.
// Score is nil when no score pattern was recognized.
type StructuredResult struct {
	Score       *int
	Narrative   string
	Suggestions []string
}

// RawTextResult means nothing recognizable was found; the full model
// reply is presented as-is.
type RawTextResult struct {
	Text string
}

func (StructuredResult) isNormalized() {}
func (RawTextResult) isNormalized()    {}

const maxSuggestions = 5

var (
	// "Score: 72", "health score of 72", "score is 72"
	scoreLabelRe = regexp.MustCompile(`(?i)\bscore\b[^0-9]{0,20}?(\d{1,3})`)
	// "72/100", "72 out of 100"
	scoreOutOfRe = regexp.MustCompile(`\b(\d{1,3})\s*(?:/|out of)\s*100\b`)

	bulletRe   = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*•])\s+`)
	sentenceRe = regexp.MustCompile(`[.!?]\s+|\n`)
)

// NormalizeAnalysis shapes free model text into the analysis fields:
// a best-effort 0-100 health score, a narrative with the score sentence
// removed, and bullet-style suggestions. When neither a score nor any
// bullets are recognized it degrades to RawTextResult.
func NormalizeAnalysis(raw string) NormalizedResult {
	text := strings.TrimSpace(stripMarkdown(raw))
	if text == "" {
		return RawTextResult{Text: raw}
	}

	score, loc, found := extractScore(text)
	suggestions := extractBullets(text)

	if !found && len(suggestions) == 0 {
		return RawTextResult{Text: text}
	}

	narrative := text
	if found {
		narrative = strings.TrimSpace(removeSentenceAt(text, loc))
		if narrative == "" {
			narrative = text
		}
	}

	if len(suggestions) == 0 {
		suggestions = sentenceSuggestions(narrative)
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	result := StructuredResult{Narrative: narrative, Suggestions: suggestions}
	if found {
		result.Score = &score
	}
	return result
}

// NormalizeChat cleans a chat reply for display: markdown markers are
// stripped, whitespace trimmed, nothing else.
func NormalizeChat(raw string) string {
	return strings.TrimSpace(stripMarkdown(raw))
}

// extractScore finds the first plausible 0-100 score and the span of
// the match inside text.
func extractScore(text string) (int, []int, bool) {
	for _, re := range []*regexp.Regexp{scoreLabelRe, scoreOutOfRe} {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			n, err := strconv.Atoi(text[loc[2]:loc[3]])
			if err != nil || n < 0 || n > 100 {
				continue
			}
			return n, loc[0:2], true
		}
	}
	return 0, nil, false
}

// removeSentenceAt drops the sentence containing the [start,end) span.
func removeSentenceAt(text string, loc []int) string {
	start := loc[0]
	for start > 0 {
		c := text[start-1]
		if c == '.' || c == '!' || c == '?' || c == '\n' {
			break
		}
		start--
	}
	end := loc[1]
	for end < len(text) {
		c := text[end]
		end++
		if c == '.' || c == '!' || c == '?' || c == '\n' {
			break
		}
	}
	return text[:start] + text[end:]
}

func extractBullets(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if !bulletRe.MatchString(line) {
			continue
		}
		item := strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
		item = strings.TrimRight(item, ".")
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// sentenceSuggestions falls back to treating narrative sentences as
// suggestions when the model skipped bullet formatting.
func sentenceSuggestions(narrative string) []string {
	var out []string
	for _, s := range sentenceRe.Split(narrative, -1) {
		s = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), ".!?"))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

var (
	codeFenceRe = regexp.MustCompile("(?m)^```[a-zA-Z]*\\s*$")
	headingRe   = regexp.MustCompile(`(?m)^#{1,6}\s+`)
)

func stripMarkdown(s string) string {
	s = codeFenceRe.ReplaceAllString(s, "")
	s = headingRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	return s
}
