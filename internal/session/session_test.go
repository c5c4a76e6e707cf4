package session

import (
	"testing"

	"github.com/danielolaszy/bva/pkg/models"
)

func TestStoryFor(t *testing.T) {
	testCases := []struct {
		name     string
		issue    models.Issue
		expected string
	}{
		{
			name: "Refined story from description",
			issue: models.Issue{
				Key:         "PROJ-1",
				Summary:     "Password reset",
				Description: "**Refined User Story:** As a customer, I want to reset my password so that I can log back in.",
			},
			expected: "As a customer, I want to reset my password so that I can log back in.",
		},
		{
			name: "Whole description fallback",
			issue: models.Issue{
				Key:         "PROJ-2",
				Summary:     "Billing upgrade",
				Description: "Upgrade the billing system.",
			},
			expected: "Upgrade the billing system.",
		},
		{
			name: "Empty description falls back to summary",
			issue: models.Issue{
				Key:     "PROJ-3",
				Summary: "Nightly backups",
			},
			expected: "Nightly backups",
		},
		{
			name: "Whitespace-only description falls back to summary",
			issue: models.Issue{
				Key:         "PROJ-4",
				Summary:     "Access logs",
				Description: "   \n  ",
			},
			expected: "Access logs",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StoryFor(tc.issue); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}
