package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/bva/internal/logging"
	"github.com/danielolaszy/bva/internal/session"
)

// connectCmd verifies the configured credentials and provisions the
// business-value custom field.
var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Verify JIRA credentials and provision the Business Value field",
	Long: `Connect to JIRA with the configured credentials, verify the Anthropic
API key is set, and find or create the "Business Value" custom field
used to store assessments. Useful as a one-off setup check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := session.New(0)
		if err != nil {
			return err
		}
		defer s.Close()

		logging.Info("connection verified",
			"project", s.Project(),
			"field_id", s.FieldID())

		fmt.Printf("Connected to project %s. Business Value field: %s\n", s.Project(), s.FieldID())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(connectCmd)
}
