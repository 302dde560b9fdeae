package cmd

import (
	"fmt"
	"strings"

	"github.com/ava-cli/ava/filesystem"
	"github.com/ava-cli/ava/icon"
	"github.com/ava-cli/ava/util"
	"github.com/ava-cli/ava/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is a directory ava may wipe on request.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"logs directory", "logs", mo.Some("l"), where.Logs},
	{"stale sockets", "sockets", mo.Some("s"), where.Sockets},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	addYesFlag(clearCmd)
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached data, logs and sockets left by crashed sessions",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(t.argLong))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		names := lo.Map(selected, func(t clearTarget, _ int) string { return t.name })
		if !confirm(cmd, fmt.Sprintf("Clear the %s?", strings.Join(names, " and "))) {
			return
		}

		for _, target := range selected {
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := filesystem.API().RemoveAll(target.location())
			e()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}
	},
}
