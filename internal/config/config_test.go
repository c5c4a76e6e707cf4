package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setEnv sets environment variables for a test and restores the
// previous values on cleanup.
func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for key, value := range vars {
		orig, had := os.LookupEnv(key)
		require.NoError(t, os.Setenv(key, value))
		t.Cleanup(func() {
			if had {
				os.Setenv(key, orig)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	setEnv(t, map[string]string{
		"JIRA_URL":          "https://example.atlassian.net",
		"JIRA_USERNAME":     "user@example.com",
		"JIRA_TOKEN":        "test-token",
		"JIRA_PROJECT":      "PROJ",
		"ANTHROPIC_API_KEY": "test-key",
		"BVA_MODEL":         "",
	})

	config, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, "https://example.atlassian.net", config.Jira.URL)
	assert.Equal(t, "user@example.com", config.Jira.Username)
	assert.Equal(t, "test-token", config.Jira.Token)
	assert.Equal(t, "PROJ", config.Jira.Project)
	assert.Equal(t, "test-key", config.Anthropic.APIKey)
	assert.Equal(t, DefaultModel, config.Anthropic.Model)
}

func TestLoadConfigModelOverride(t *testing.T) {
	setEnv(t, map[string]string{
		"BVA_MODEL": "claude-3-5-haiku-20241022",
	})

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-haiku-20241022", config.Anthropic.Model)
}

func TestValidateJiraConfig(t *testing.T) {
	tests := []struct {
		name    string
		jira    JiraConfig
		wantErr bool
	}{
		{
			name: "Complete configuration",
			jira: JiraConfig{
				URL:      "https://example.atlassian.net",
				Username: "user@example.com",
				Token:    "token",
				Project:  "PROJ",
			},
			wantErr: false,
		},
		{
			name: "Missing URL",
			jira: JiraConfig{
				Username: "user@example.com",
				Token:    "token",
				Project:  "PROJ",
			},
			wantErr: true,
		},
		{
			name: "Missing token",
			jira: JiraConfig{
				URL:      "https://example.atlassian.net",
				Username: "user@example.com",
				Project:  "PROJ",
			},
			wantErr: true,
		},
		{
			name: "Missing project",
			jira: JiraConfig{
				URL:      "https://example.atlassian.net",
				Username: "user@example.com",
				Token:    "token",
			},
			wantErr: true,
		},
		{
			name:    "Everything missing",
			jira:    JiraConfig{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJiraConfig(&Config{Jira: tt.jira})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "missing required environment variables")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAnthropicConfig(t *testing.T) {
	err := ValidateAnthropicConfig(&Config{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")

	err = ValidateAnthropicConfig(&Config{Anthropic: AnthropicConfig{APIKey: "key"}})
	assert.NoError(t, err)
}
