package domain

import (
	"regexp"
	"strings"
)

// FinalAnswerMarker precedes the final answer in verbose math output.
const FinalAnswerMarker = "FINAL_ANSWER:"

var (
	numericToken = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	finalMarker  = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(FinalAnswerMarker))
)

func trimmed(text string) string {
	return strings.TrimSpace(text)
}

// ExtractLastNumber reduces a math answer to its last numeric token.
// Text without a numeric token, or already equal to it, is returned trimmed and otherwise unchanged.
func ExtractLastNumber(text string) string {
	text = strings.TrimSpace(text)

	matches := numericToken.FindAllString(text, -1)
	if len(matches) == 0 {
		return text
	}

	last := matches[len(matches)-1]
	if text != last {
		return last
	}
	return text
}

// ExtractFinalAnswer pulls the draft out of verbose math output: the text after the
// last FINAL_ANSWER: marker (any case), else the last non-empty line, else the whole text.
func ExtractFinalAnswer(text string) string {
	text = strings.TrimSpace(text)

	if locs := finalMarker.FindAllStringIndex(text, -1); len(locs) > 0 {
		candidate := strings.TrimSpace(text[locs[len(locs)-1][1]:])
		if candidate != "" {
			return candidate
		}
	}

	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return text
}
