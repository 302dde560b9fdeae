package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/ava-cli/ava/color"
	"github.com/ava-cli/ava/constant"
	"github.com/ava-cli/ava/icon"
	"github.com/ava-cli/ava/key"
	"github.com/ava-cli/ava/style"
	"github.com/ava-cli/ava/version"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that mpv is installed and supports JSON-IPC",
	Run: func(cmd *cobra.Command, args []string) {
		info := CheckDependencies()

		cmd.Printf(
			"%s %s %s at %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			info.Binary,
			style.Fg(color.Yellow)(info.Version),
			style.Faint(info.Path),
		)
	},
}

// CheckDependencies exits with an explanation unless a usable mpv is installed.
func CheckDependencies() version.EngineInfo {
	binary := viper.GetString(key.MPVBinary)

	info, err := version.Engine(binary)
	switch {
	case errors.Is(err, version.ErrEngineNotFound):
		printDependencyError(
			"Missing Dependency",
			fmt.Sprintf("The required dependency '%s' was not found in your PATH.", binary),
		)
		os.Exit(1)
	case err != nil:
		handleErr(err)
	case !version.Supported(info.Version):
		printDependencyError(
			"Unsupported Version",
			fmt.Sprintf("%s %s is installed, but at least %s is required for JSON-IPC.", binary, info.Version, constant.MinMPVVersion),
		)
		os.Exit(1)
	}

	return info
}

func printDependencyError(title, body string) {
	installCmd := constant.MPVInstallCommands[runtime.GOOS]

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorColor).
		Padding(1, 2).
		Margin(1, 0)

	titleView := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Error: %s", icon.Get(icon.Fail), title))
	bodyView := style.New().Foreground(style.Text).Render(body)

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.Accent).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleView,
			"\n",
			bodyView,
			suggestion,
		),
	))
}
