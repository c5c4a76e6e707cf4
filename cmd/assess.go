package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/bva/internal/session"
)

// assessCmd runs the gated assessment workflow for one issue.
var assessCmd = &cobra.Command{
	Use:   "assess KEY",
	Short: "Assess the business value of one issue",
	Long: `Run the assessment workflow for a single issue:

1. Extract the refined user story from the issue description (falling
   back to the summary when the description yields nothing).
2. Ask the model whether the story is granular; stories too broad for a
   single sprint are rejected.
3. Ask the model for a structured business-value assessment, optionally
   enriched with --context.
4. With --update, write the assessment into the issue's Business Value
   field; without it, the assessment is only printed.

Example:
  bva assess PROJ-42 --context "Regulatory deadline end of Q3" --update`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		extraContext, err := cmd.Flags().GetString("context")
		if err != nil {
			return err
		}

		update, err := cmd.Flags().GetBool("update")
		if err != nil {
			return err
		}

		s, err := session.New(0)
		if err != nil {
			return err
		}
		defer s.Close()

		assessment, err := s.Assess(cmd.Context(), key, extraContext)
		if errors.Is(err, session.ErrNotGranular) {
			return fmt.Errorf("%s: %w", key, err)
		}
		if err != nil {
			return err
		}

		fmt.Println(assessment.Text)

		if !update {
			fmt.Printf("\nRe-run with --update to write this assessment to %s.\n", assessment.IssueKey)
			return nil
		}

		if err := s.Save(); err != nil {
			return err
		}

		fmt.Printf("\nBusiness value updated for %s.\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(assessCmd)
	assessCmd.Flags().String("context", "", "Additional context passed to the assessment")
	assessCmd.Flags().Bool("update", false, "Write the assessment back to the issue")
}
