package cmd

import (
	"github.com/ava-cli/ava/tui"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)

	addMediaFlags(playCmd)
	playCmd.Flags().Bool("headless", false, "Do not draw the interface; read intents from stdin, one per line")
}

var playCmd = &cobra.Command{
	Use:   "play [src]",
	Short: "Play a media file or URL",
	Long: `Play a media file or URL with mpv, controlled from the terminal.

Keys: space or k toggles playback, m toggles mute, f toggles fullscreen, q quits.

In headless mode the interface is not drawn. Each line read from stdin is an
intent: play-pause, volume-toggle or fullscreen-toggle. Engine notifications are
printed to stdout.`,
	Example: "  ava play movie.mkv --muted\n  echo play-pause | ava play https://example.com/clip.mp4 --headless",
	Args:    cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		bindMediaFlags(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		source, configuration, err := resolveMedia(cmd, args[0])
		handleErr(err)

		options := tui.Options{
			Source:        source,
			Configuration: configuration,
			Headless:      lo.Must(cmd.Flags().GetBool("headless")),
			Input:         cmd.InOrStdin(),
			Output:        cmd.OutOrStdout(),
		}
		handleErr(tui.Run(&options))
	},
}
