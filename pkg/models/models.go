// Package models defines data structures shared across the application.
package models

// Label is the coarse business-value ranking signal derived from the
// assessment text stored on an issue.
type Label string

const (
	// LabelHigh indicates high business value.
	LabelHigh Label = "High"
	// LabelMedium indicates medium business value.
	LabelMedium Label = "Medium"
	// LabelLow indicates low business value.
	LabelLow Label = "Low"
	// LabelUnknown indicates the issue has no parseable assessment yet.
	LabelUnknown Label = "Unknown"
)

// Ordinal maps a label to its sort weight. Unrecognized values,
// including LabelUnknown, map to zero.
func (l Label) Ordinal() int {
	switch l {
	case LabelHigh:
		return 3
	case LabelMedium:
		return 2
	case LabelLow:
		return 1
	default:
		return 0
	}
}

// Issue represents a JIRA issue with the fields this tool reads.
type Issue struct {
	// Key is the full JIRA issue identifier (e.g., "ABC-123")
	Key string

	// Summary is the issue's summary field
	Summary string

	// Description is the full body text of the issue
	Description string

	// BusinessValue is the raw text stored in the "Business Value"
	// custom field, empty if the issue has never been assessed
	BusinessValue string
}

// Assessment holds the result of one business-value assessment run,
// kept in memory until the user confirms the write-back.
type Assessment struct {
	// IssueKey is the issue the assessment was produced for
	IssueKey string

	// Text is the raw assessment produced by the model
	Text string
}
