package cmd

import (
	"github.com/spf13/cobra"

	"github.com/danielolaszy/bva/internal/session"
)

// sessionCmd starts the interactive assessment shell.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive assessment session",
	Long: `Connect once and work through the backlog interactively. The shell
supports listing and showing issues, running gated assessments, and
writing confirmed assessments back to JIRA. A failed command leaves
the session usable for the next one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		max, err := cmd.Flags().GetInt("max")
		if err != nil {
			return err
		}

		s, err := session.New(max)
		if err != nil {
			return err
		}
		defer s.Close()

		repl, err := session.NewREPL(s)
		if err != nil {
			return err
		}

		return repl.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
