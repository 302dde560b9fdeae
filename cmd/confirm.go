package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func addYesFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// confirm asks before a destructive action unless --yes was given.
func confirm(cmd *cobra.Command, message string) bool {
	if lo.Must(cmd.Flags().GetBool("yes")) {
		return true
	}

	var response bool
	handleErr(survey.AskOne(&survey.Confirm{
		Message: message,
		Default: false,
	}, &response))

	return response
}
