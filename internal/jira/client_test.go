package jira

import (
	"testing"

	jira "github.com/andygrunwald/go-jira"
	"github.com/stretchr/testify/assert"
)

func TestCustomFieldString(t *testing.T) {
	tests := []struct {
		name     string
		unknowns map[string]interface{}
		fieldID  string
		expected string
	}{
		{
			name:     "Nil map",
			unknowns: nil,
			fieldID:  "customfield_10011",
			expected: "",
		},
		{
			name:     "Missing field",
			unknowns: map[string]interface{}{"customfield_10012": "other"},
			fieldID:  "customfield_10011",
			expected: "",
		},
		{
			name:     "Null field value",
			unknowns: map[string]interface{}{"customfield_10011": nil},
			fieldID:  "customfield_10011",
			expected: "",
		},
		{
			name:     "Non-string field value",
			unknowns: map[string]interface{}{"customfield_10011": 42.0},
			fieldID:  "customfield_10011",
			expected: "",
		},
		{
			name:     "String value is trimmed",
			unknowns: map[string]interface{}{"customfield_10011": "  **Business Value Score:** High  \n"},
			fieldID:  "customfield_10011",
			expected: "**Business Value Score:** High",
		},
		{
			name:     "Empty field ID",
			unknowns: map[string]interface{}{"": "value"},
			fieldID:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, customFieldString(tt.unknowns, tt.fieldID))
		})
	}
}

func TestToModel(t *testing.T) {
	issue := &jira.Issue{
		Key: "PROJ-7",
		Fields: &jira.IssueFields{
			Summary:     "Export audit logs",
			Description: "**Refined User Story:** As an admin, I want exports so that I can audit.",
			Unknowns: map[string]interface{}{
				"customfield_10011": "**Business Value Score:** Medium",
			},
		},
	}

	m := toModel(issue, "customfield_10011")

	assert.Equal(t, "PROJ-7", m.Key)
	assert.Equal(t, "Export audit logs", m.Summary)
	assert.Equal(t, "**Refined User Story:** As an admin, I want exports so that I can audit.", m.Description)
	assert.Equal(t, "**Business Value Score:** Medium", m.BusinessValue)
}

func TestToModelWithoutFields(t *testing.T) {
	m := toModel(&jira.Issue{Key: "PROJ-8"}, "customfield_10011")

	assert.Equal(t, "PROJ-8", m.Key)
	assert.Empty(t, m.Summary)
	assert.Empty(t, m.BusinessValue)
}
