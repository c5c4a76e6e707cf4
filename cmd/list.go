package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/bva/internal/logging"
	"github.com/danielolaszy/bva/internal/session"
)

// listCmd lists the project backlog ranked by business value.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List backlog issues ranked by business value",
	Long: `Fetch the configured project's backlog and print it sorted by the
business-value label parsed from each issue's stored assessment:
High first, then Medium, Low, and unassessed issues last. Ties are
ordered by issue key.

Example:
  bva list --unassessed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		unassessedOnly, err := cmd.Flags().GetBool("unassessed")
		if err != nil {
			return err
		}

		max, err := cmd.Flags().GetInt("max")
		if err != nil {
			return err
		}

		s, err := session.New(max)
		if err != nil {
			return err
		}
		defer s.Close()

		ranked, err := s.List(unassessedOnly)
		if err != nil {
			return fmt.Errorf("failed to list issues: %v", err)
		}

		logging.Debug("ranked issues",
			"project", s.Project(),
			"count", len(ranked),
			"unassessed_only", unassessedOnly)

		if len(ranked) == 0 {
			fmt.Println("No matching issues found.")
			return nil
		}

		session.PrintRanked(ranked)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("unassessed", false, "Show only issues without a business value assessment")
}
