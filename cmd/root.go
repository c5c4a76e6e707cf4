// Package cmd provides the command-line interface for the bva tool.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bva",
	Short: "bva assesses the business value of JIRA backlog items with an LLM",
	Long: `bva connects to a JIRA project, ranks backlog issues by a previously
stored "Business Value" assessment, and runs an LLM-backed assessment
workflow for a selected issue.

An assessment is gated: the story is first checked for granularity, and
stories too broad for a single sprint are rejected before any business
value is assessed. Confirmed assessments are written back into a
"Business Value" custom field on the issue.

Configuration comes from environment variables: JIRA_URL, JIRA_USERNAME,
JIRA_TOKEN, JIRA_PROJECT, and ANTHROPIC_API_KEY. BVA_MODEL optionally
overrides the model.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntP("max", "m", 0, "Maximum number of issues to fetch per listing")
}
