package cmd

import (
	"github.com/ava-cli/ava/key"
	"github.com/ava-cli/ava/media"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// mediaFlag maps a command line flag onto its configuration key.
type mediaFlag struct {
	name  string
	key   string
	usage string
	isStr bool
}

var mediaFlags = []mediaFlag{
	{"width", key.PlayerWidth, "Window width, in pixels or percent of the screen", true},
	{"height", key.PlayerHeight, "Window height, in pixels, percent of the screen or auto", true},
	{"autoplay", key.PlayerAutoplay, "Start playing as soon as the media is loaded", false},
	{"loop", key.PlayerLoop, "Restart from the beginning when the media ends", false},
	{"muted", key.PlayerMuted, "Start muted", false},
	{"controls", key.PlayerControls, "Show the engine's own on-screen controller", false},
	{"plays-inline", key.PlayerPlaysInline, "Recorded for compatibility; mpv ignores it", false},
	{"preload", key.PlayerPreload, "Buffering hint: none, metadata or auto", true},
	{"crossorigin", key.PlayerCrossOrigin, "Credential mode: anonymous or use-credentials", true},
}

// addMediaFlags registers the source and configuration flags on cmd.
func addMediaFlags(cmd *cobra.Command) {
	cmd.Flags().String("poster", "", "Image shown before playback starts")
	cmd.Flags().String("alt", "", "Title shown instead of the source")

	for _, f := range mediaFlags {
		if f.isStr {
			cmd.Flags().String(f.name, "", f.usage)
		} else {
			cmd.Flags().Bool(f.name, false, f.usage)
		}
	}

	lo.Must0(cmd.RegisterFlagCompletionFunc("preload", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(media.PreloadNone), string(media.PreloadMetadata), string(media.PreloadAuto)}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(cmd.RegisterFlagCompletionFunc("crossorigin", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(media.CrossOriginAnonymous), string(media.CrossOriginUseCredentials)}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// bindMediaFlags binds the flags of the running command to their keys, so an
// explicit flag wins over the config file. Several commands share the flags,
// so binding happens per invocation.
func bindMediaFlags(cmd *cobra.Command) {
	for _, f := range mediaFlags {
		lo.Must0(viper.BindPFlag(f.key, cmd.Flags().Lookup(f.name)))
	}
}

// resolveMedia builds the source and configuration for src from flags and config.
func resolveMedia(cmd *cobra.Command, src string) (media.Source, media.Configuration, error) {
	source := media.DefaultSource(src)
	source.Poster = lo.Must(cmd.Flags().GetString("poster"))
	source.Alt = lo.Must(cmd.Flags().GetString("alt"))

	if w := viper.GetString(key.PlayerWidth); w != "" {
		source.Width = w
	}
	if h := viper.GetString(key.PlayerHeight); h != "" {
		source.Height = h
	}

	configuration, err := media.DefaultConfiguration()
	if err != nil {
		return media.Source{}, media.Configuration{}, err
	}

	if err := source.Validate(); err != nil {
		return media.Source{}, media.Configuration{}, err
	}

	return source, configuration, configuration.Validate()
}
