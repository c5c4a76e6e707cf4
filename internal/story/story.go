// Package story extracts structured fields out of the semi-structured
// markdown text that the refiner and the assessment model write into
// JIRA issues.
package story

import (
	"regexp"
	"strings"

	"github.com/danielolaszy/bva/pkg/models"
)

var (
	refinedStoryRe  = regexp.MustCompile(`\*\*Refined User Story:\*\*\s*(.+)`)
	asASentenceRe   = regexp.MustCompile(`(?i)(As a .+? so that .+?)(?:\n|$)`)
	businessValueRe = regexp.MustCompile(`(?i)\*\*Business Value Score:\*\*\s*(High|Medium|Low)`)
)

// ExtractRefinedStory recovers the user story from a description blob
// produced by the refiner. It tries the bolded "Refined User Story:"
// marker first, then an "As a ... so that ..." sentence, and finally
// falls back to the whole description. It never fails; empty input
// yields an empty string.
func ExtractRefinedStory(text string) string {
	if text == "" {
		return ""
	}

	if matches := refinedStoryRe.FindStringSubmatch(text); len(matches) > 1 {
		// The story may spill onto the next line; keep only the first.
		line := strings.TrimSpace(matches[1])
		line = strings.TrimSpace(strings.SplitN(line, "\n", 2)[0])
		return line
	}

	if matches := asASentenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	return strings.TrimSpace(text)
}

// ExtractBusinessValueLabel parses the business-value label out of a
// previously stored assessment. The label word is matched
// case-insensitively and normalized; anything unparseable is
// LabelUnknown.
func ExtractBusinessValueLabel(text string) models.Label {
	if text == "" {
		return models.LabelUnknown
	}

	matches := businessValueRe.FindStringSubmatch(text)
	if len(matches) < 2 {
		return models.LabelUnknown
	}

	switch strings.ToLower(matches[1]) {
	case "high":
		return models.LabelHigh
	case "medium":
		return models.LabelMedium
	case "low":
		return models.LabelLow
	default:
		return models.LabelUnknown
	}
}
