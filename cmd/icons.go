package cmd

import (
	"fmt"
	"os"

	"github.com/ava-cli/ava/color"
	"github.com/ava-cli/ava/icon"
	"github.com/ava-cli/ava/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(iconsCmd)
	iconsCmd.SetOut(os.Stdout)
}

var iconsCmd = &cobra.Command{
	Use:   "icons [id...]",
	Short: "Show how icons render in the current variant",
	Long: `Show the glyph of every control and status icon, or of the given sprite ids.
Aliases such as volume-high or fullscreen-close are accepted.
Combine with --icons to preview another variant.`,
	Example: "  ava icons --icons nerd\n  ava icons play volume-muted",
	ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(icon.IDs(), func(i icon.Icon, _ int) string {
			return string(i)
		}), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := args
		if len(ids) == 0 {
			ids = lo.Map(icon.IDs(), func(i icon.Icon, _ int) string {
				return string(i)
			})
		}

		width := lo.Max(lo.Map(ids, func(id string, _ int) int { return len(id) }))

		for _, id := range ids {
			glyph, ok := icon.Resolve(id)
			if !ok {
				return fmt.Errorf("unknown icon %q", id)
			}
			cmd.Printf("%s %s\n", style.Fg(color.Yellow)(fmt.Sprintf("%-*s", width, id)), glyph)
		}
		return nil
	},
}
