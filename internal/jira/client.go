// Package jira provides functionality for interacting with the JIRA API.
package jira

import (
	"fmt"
	"strings"

	jira "github.com/andygrunwald/go-jira"

	"github.com/danielolaszy/bva/internal/config"
	"github.com/danielolaszy/bva/internal/logging"
	"github.com/danielolaszy/bva/pkg/models"
)

// FieldName is the display name of the custom field holding assessments.
const FieldName = "Business Value"

// fieldDescription describes the custom field when we provision it.
const fieldDescription = "Business Value assessment generated by AI."

// textareaFieldType is the JIRA custom field type used for the field.
const textareaFieldType = "com.atlassian.jira.plugin.system.customfieldtypes:textarea"

// Client handles interactions with the JIRA API.
type Client struct {
	client *jira.Client
}

// NewClient creates a new JIRA client using configuration from environment
// variables. It authenticates with basic auth and verifies the connection
// by fetching the current user, so a bad URL or token fails here rather
// than on the first search.
func NewClient() (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.ValidateJiraConfig(cfg); err != nil {
		return nil, err
	}

	logging.Debug("jira configuration",
		"url", cfg.Jira.URL,
		"username", cfg.Jira.Username,
		"token", logging.MaskSensitive(cfg.Jira.Token))

	tp := jira.BasicAuthTransport{
		Username: cfg.Jira.Username,
		Password: cfg.Jira.Token,
	}

	client, err := jira.NewClient(tp.Client(), cfg.Jira.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %v", err)
	}

	user, _, err := client.User.GetSelf()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to jira: %v", err)
	}

	logging.Info("connected to jira",
		"url", cfg.Jira.URL,
		"account", user.EmailAddress)

	return &Client{client: client}, nil
}

// SearchIssues fetches issues for a project ordered by creation date,
// including the business-value custom field identified by fieldID.
func (c *Client) SearchIssues(project string, fieldID string, max int) ([]models.Issue, error) {
	if c.client == nil {
		return nil, fmt.Errorf("jira client not initialized")
	}

	jql := fmt.Sprintf("project = '%s' ORDER BY created ASC", project)
	options := &jira.SearchOptions{
		MaxResults: max,
		Fields:     []string{"summary", "description", fieldID},
	}

	found, resp, err := c.client.Issue.Search(jql, options)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return nil, fmt.Errorf("failed to search jira issues: %v (status: %d)", err, status)
	}

	issues := make([]models.Issue, 0, len(found))
	for i := range found {
		issues = append(issues, toModel(&found[i], fieldID))
	}

	logging.Debug("fetched issues", "project", project, "count", len(issues))
	return issues, nil
}

// GetIssue fetches a single issue by key, including the business-value
// custom field identified by fieldID.
func (c *Client) GetIssue(key string, fieldID string) (models.Issue, error) {
	if c.client == nil {
		return models.Issue{}, fmt.Errorf("jira client not initialized")
	}

	options := &jira.GetQueryOptions{
		Fields: "summary,description," + fieldID,
	}

	issue, resp, err := c.client.Issue.Get(key, options)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return models.Issue{}, fmt.Errorf("failed to get issue %s: %v (status: %d)", key, err, status)
	}

	return toModel(issue, fieldID), nil
}

// UpdateBusinessValue replaces the business-value custom field of one
// issue with the given assessment text. Full replace, no retry.
func (c *Client) UpdateBusinessValue(key string, fieldID string, text string) error {
	if c.client == nil {
		return fmt.Errorf("jira client not initialized")
	}

	data := map[string]interface{}{
		"fields": map[string]interface{}{
			fieldID: text,
		},
	}

	resp, err := c.client.Issue.UpdateIssue(key, data)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return fmt.Errorf("failed to update issue %s: %v (status: %d)", key, err, status)
	}

	logging.Info("updated business value field", "issue", key, "field_id", fieldID)
	return nil
}

// FindBusinessValueField looks up the custom field by display name and
// returns its field ID, or an empty string if it does not exist.
func (c *Client) FindBusinessValueField() (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("jira client not initialized")
	}

	fields, resp, err := c.client.Field.GetList()
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return "", fmt.Errorf("failed to list jira fields: %v (status: %d)", err, status)
	}

	for _, field := range fields {
		if field.Name == FieldName {
			return field.ID, nil
		}
	}

	return "", nil
}

// CreateBusinessValueField provisions the custom field as a searchable
// textarea. Returns the new field ID.
func (c *Client) CreateBusinessValueField() (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("jira client not initialized")
	}

	payload := map[string]interface{}{
		"name":        FieldName,
		"description": fieldDescription,
		"type":        textareaFieldType,
		"searcherKey": "textsearcher",
	}

	req, err := c.client.NewRequest("POST", "rest/api/2/field", payload)
	if err != nil {
		return "", fmt.Errorf("failed to build field creation request: %v", err)
	}

	created := struct {
		ID string `json:"id"`
	}{}

	resp, err := c.client.Do(req, &created)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return "", fmt.Errorf("failed to create custom field: %v (status: %d)", err, status)
	}

	return created.ID, nil
}

// EnsureBusinessValueField finds the custom field or creates it if
// missing. A creation race with another session resolves by re-fetching
// the field list.
func (c *Client) EnsureBusinessValueField() (string, error) {
	fieldID, err := c.FindBusinessValueField()
	if err != nil {
		return "", err
	}
	if fieldID != "" {
		logging.Debug("custom field found", "field", FieldName, "field_id", fieldID)
		return fieldID, nil
	}

	fieldID, err = c.CreateBusinessValueField()
	if err == nil && fieldID != "" {
		logging.Info("custom field created", "field", FieldName, "field_id", fieldID)
		return fieldID, nil
	}

	// Creation can fail if the field appeared since our lookup.
	fieldID, findErr := c.FindBusinessValueField()
	if findErr == nil && fieldID != "" {
		logging.Debug("custom field already exists", "field", FieldName, "field_id", fieldID)
		return fieldID, nil
	}

	if err != nil {
		return "", fmt.Errorf("could not create or find custom field %q: %v", FieldName, err)
	}
	return "", fmt.Errorf("could not create or find custom field %q", FieldName)
}

// toModel converts a go-jira issue to our model, pulling the
// business-value text out of the unknown fields map.
func toModel(issue *jira.Issue, fieldID string) models.Issue {
	m := models.Issue{Key: issue.Key}

	if issue.Fields != nil {
		m.Summary = issue.Fields.Summary
		m.Description = issue.Fields.Description
		m.BusinessValue = customFieldString(issue.Fields.Unknowns, fieldID)
	}

	return m
}

// customFieldString extracts a string value for a custom field from the
// unknown-fields map. Unset or non-string values yield an empty string.
func customFieldString(unknowns map[string]interface{}, fieldID string) string {
	if unknowns == nil || fieldID == "" {
		return ""
	}

	raw, ok := unknowns[fieldID]
	if !ok || raw == nil {
		return ""
	}

	value, ok := raw.(string)
	if !ok {
		return ""
	}

	return strings.TrimSpace(value)
}
