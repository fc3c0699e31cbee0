package usecase

import (
	"regexp"
	"strings"
)

var (
	thinkTagRe    = regexp.MustCompile(`(?is)<think>.*?</think>\s*`)
	cypherFenceRe = regexp.MustCompile("(?s)```\\s*[Cc]ypher\\s+(.*?)```")
	anyFenceRe    = regexp.MustCompile("(?s)```\\s*(.*?)```")
	headingRe     = regexp.MustCompile(`(?i)^\s*cypher\s+query\s*:\s*`)
	keywordRe     = regexp.MustCompile(`(?i)^(MATCH|CALL|WITH|UNWIND|RETURN|CREATE|MERGE|OPTIONAL|USE)\b`)
	edgeTicksRe   = regexp.MustCompile("^`+|`+$")
	edgeQuotesRe  = regexp.MustCompile(`^["']+|["']+$`)
)

// extractCypher pulls a Cypher statement out of raw model output. Models
// wrap queries in reasoning tags, markdown fences, or headings; preference
// order is an explicit cypher fence, any fence, then a heuristic scan for
// the first line starting with a Cypher keyword.
func extractCypher(text string) string {
	if text == "" {
		return ""
	}

	cleaned := thinkTagRe.ReplaceAllString(text, "")

	var candidate string
	if m := cypherFenceRe.FindStringSubmatch(cleaned); m != nil {
		candidate = strings.TrimSpace(m[1])
	} else if m := anyFenceRe.FindStringSubmatch(cleaned); m != nil {
		candidate = strings.TrimSpace(m[1])
	} else {
		reduced := strings.ReplaceAll(cleaned, "**", "")
		reduced = headingRe.ReplaceAllString(reduced, "")

		lines := strings.Split(reduced, "\n")
		for i := range lines {
			lines[i] = strings.TrimSpace(lines[i])
		}

		start := -1
		for i, ln := range lines {
			if keywordRe.MatchString(ln) {
				start = i
				break
			}
		}
		if start >= 0 {
			var collected []string
			for _, ln := range lines[start:] {
				if ln == "" {
					break
				}
				collected = append(collected, ln)
			}
			candidate = strings.TrimSpace(strings.Join(collected, "\n"))
		} else {
			candidate = strings.TrimSpace(reduced)
		}
	}

	candidate = strings.TrimSpace(strings.Trim(strings.TrimSpace(candidate), "`"))
	candidate = edgeTicksRe.ReplaceAllString(candidate, "")
	candidate = edgeQuotesRe.ReplaceAllString(candidate, "")
	return candidate
}

// stripThinkTags removes reasoning blocks some models prepend to answers.
func stripThinkTags(text string) string {
	return strings.TrimSpace(thinkTagRe.ReplaceAllString(text, ""))
}
