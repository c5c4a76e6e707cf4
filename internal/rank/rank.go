// Package rank orders issues by their derived business-value label.
package rank

import (
	"sort"

	"github.com/danielolaszy/bva/pkg/models"
)

// RankedIssue pairs an issue with the label resolved for it, so
// callers can render the label without re-parsing the stored text.
type RankedIssue struct {
	Issue models.Issue
	Label models.Label
}

// Issues resolves a label for every issue via labelOf and returns a
// new slice sorted by descending label ordinal, ties broken by
// ascending issue key. With unassessedOnly set, only issues whose
// label resolves to LabelUnknown are kept. The result is fully
// deterministic for a fixed input set regardless of input order.
func Issues(issues []models.Issue, labelOf func(models.Issue) models.Label, unassessedOnly bool) []RankedIssue {
	ranked := make([]RankedIssue, 0, len(issues))
	for _, issue := range issues {
		label := labelOf(issue)
		if unassessedOnly && label != models.LabelUnknown {
			continue
		}
		ranked = append(ranked, RankedIssue{Issue: issue, Label: label})
	}

	sort.Slice(ranked, func(i, j int) bool {
		oi, oj := ranked[i].Label.Ordinal(), ranked[j].Label.Ordinal()
		if oi != oj {
			return oi > oj
		}
		return ranked[i].Issue.Key < ranked[j].Issue.Key
	})

	return ranked
}
