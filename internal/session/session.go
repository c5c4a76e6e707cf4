// Package session holds the state of one interactive assessment
// session: the connected clients, the provisioned custom field, and the
// last assessment pending write-back. All state lives on the Session
// struct with explicit construction and teardown, never in globals.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielolaszy/bva/internal/config"
	"github.com/danielolaszy/bva/internal/jira"
	"github.com/danielolaszy/bva/internal/llm"
	"github.com/danielolaszy/bva/internal/logging"
	"github.com/danielolaszy/bva/internal/rank"
	"github.com/danielolaszy/bva/internal/story"
	"github.com/danielolaszy/bva/internal/transcript"
	"github.com/danielolaszy/bva/pkg/models"
)

// DefaultMaxResults bounds how many issues one listing fetches.
const DefaultMaxResults = 30

// ErrNotGranular is returned when the gate rejects a story as too broad
// to assess.
var ErrNotGranular = errors.New("user story is not granular; refine it before assessing business value")

// ErrNoAssessment is returned when Save is called with nothing to write.
var ErrNoAssessment = errors.New("no assessment to save; run assess first")

// Session is the per-run context for the assessment workflow.
type Session struct {
	jira       *jira.Client
	llm        *llm.Client
	recorder   *transcript.Recorder
	project    string
	fieldID    string
	maxResults int
	last       *models.Assessment
}

// New connects to JIRA and Anthropic, provisions the business-value
// custom field, and returns a ready session. Any failure here means the
// workflow cannot start.
func New(maxResults int) (*Session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.ValidateJiraConfig(cfg); err != nil {
		return nil, err
	}

	jiraClient, err := jira.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize jira client: %v", err)
	}

	llmClient, err := llm.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize anthropic client: %v", err)
	}

	fieldID, err := jiraClient.EnsureBusinessValueField()
	if err != nil {
		return nil, err
	}

	recorder, err := transcript.NewRecorder()
	if err != nil {
		logging.Warn("transcript recording disabled", "error", err)
		recorder = nil
	}

	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	return &Session{
		jira:       jiraClient,
		llm:        llmClient,
		recorder:   recorder,
		project:    cfg.Jira.Project,
		fieldID:    fieldID,
		maxResults: maxResults,
	}, nil
}

// Close tears the session down. The API clients hold no connections
// that outlive their requests, so only the transcript needs closing.
func (s *Session) Close() error {
	if s.recorder != nil {
		return s.recorder.Close()
	}
	return nil
}

// Project returns the configured JIRA project key.
func (s *Session) Project() string {
	return s.project
}

// FieldID returns the ID of the provisioned business-value field.
func (s *Session) FieldID() string {
	return s.fieldID
}

// List fetches the project backlog and ranks it by business value.
// With unassessedOnly set, only issues without a parseable assessment
// are returned.
func (s *Session) List(unassessedOnly bool) ([]rank.RankedIssue, error) {
	issues, err := s.jira.SearchIssues(s.project, s.fieldID, s.maxResults)
	if err != nil {
		return nil, err
	}

	labelOf := func(issue models.Issue) models.Label {
		return story.ExtractBusinessValueLabel(issue.BusinessValue)
	}

	return rank.Issues(issues, labelOf, unassessedOnly), nil
}

// Issue fetches a single issue by key.
func (s *Session) Issue(key string) (models.Issue, error) {
	return s.jira.GetIssue(key, s.fieldID)
}

// StoryFor extracts the text sent to the model for an issue: the
// refined story from the description, or the summary when the
// description yields nothing.
func StoryFor(issue models.Issue) string {
	if refined := story.ExtractRefinedStory(issue.Description); refined != "" {
		return refined
	}
	return issue.Summary
}

// Assess runs the full workflow for one issue: extract the story, gate
// on granularity, then request the business-value assessment. The
// result is held on the session until Save writes it back. A gate
// collaborator failure is logged and treated as not granular.
func (s *Session) Assess(ctx context.Context, key string, extraContext string) (*models.Assessment, error) {
	issue, err := s.Issue(key)
	if err != nil {
		return nil, err
	}

	candidate := StoryFor(issue)
	logging.Debug("granularity check input", "issue", key, "story", candidate)

	granular, err := s.llm.CheckGranularity(ctx, candidate)
	if err != nil {
		logging.Warn("granularity check failed", "issue", key, "error", err)
	}
	if !granular {
		return nil, ErrNotGranular
	}

	input := fmt.Sprintf("%s\n\n%s", issue.Summary, issue.Description)
	text, err := s.llm.AssessBusinessValue(ctx, input, extraContext)
	if err != nil {
		return nil, fmt.Errorf("assessment failed: %v", err)
	}

	s.last = &models.Assessment{IssueKey: issue.Key, Text: text}

	if s.recorder != nil {
		if err := s.recorder.Record(issue.Key, text); err != nil {
			logging.Warn("failed to record transcript entry", "issue", issue.Key, "error", err)
		}
	}

	return s.last, nil
}

// Last returns the assessment pending write-back, if any.
func (s *Session) Last() *models.Assessment {
	return s.last
}

// Save writes the pending assessment back into the issue's
// business-value field. The pending assessment is cleared only on
// success, so a failed write can be retried.
func (s *Session) Save() error {
	if s.last == nil {
		return ErrNoAssessment
	}

	if err := s.jira.UpdateBusinessValue(s.last.IssueKey, s.fieldID, s.last.Text); err != nil {
		return err
	}

	logging.Info("business value saved", "issue", s.last.IssueKey)
	s.last = nil
	return nil
}
