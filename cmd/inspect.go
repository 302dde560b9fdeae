package cmd

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/ava-cli/ava/color"
	"github.com/ava-cli/ava/media"
	"github.com/ava-cli/ava/style"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// inspectConfiguration is media.Configuration with its optional fields flattened.
type inspectConfiguration struct {
	Autoplay    bool   `json:"autoplay"`
	Loop        bool   `json:"loop"`
	Muted       bool   `json:"muted"`
	Controls    bool   `json:"controls"`
	PlaysInline bool   `json:"playsInline"`
	Preload     string `json:"preload,omitempty" jsonschema:"enum=none,enum=metadata,enum=auto,description=Unset leaves buffering to the engine"`
	CrossOrigin string `json:"crossorigin,omitempty" jsonschema:"enum=anonymous,enum=use-credentials,description=Unset sends no credentials"`
}

// inspectOutput is what ava inspect prints.
type inspectOutput struct {
	Source        media.Source         `json:"source"`
	Configuration inspectConfiguration `json:"configuration"`
	Args          []string             `json:"args" jsonschema:"description=Options passed to mpv before the source"`
}

func newInspectOutput(source media.Source, configuration media.Configuration) inspectOutput {
	return inspectOutput{
		Source: source,
		Configuration: inspectConfiguration{
			Autoplay:    configuration.Autoplay,
			Loop:        configuration.Loop,
			Muted:       configuration.Muted,
			Controls:    configuration.Controls,
			PlaysInline: configuration.PlaysInline,
			Preload:     string(configuration.Preload.OrEmpty()),
			CrossOrigin: string(configuration.CrossOrigin.OrEmpty()),
		},
		Args: media.MPVArgs(source, configuration),
	}
}

func inspectSchema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return strings.TrimPrefix(t.Name(), "inspect")
	}

	return reflector.Reflect(&inspectOutput{})
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	addMediaFlags(inspectCmd)
	inspectCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	inspectCmd.Flags().Bool("schema", false, "Print the JSON schema of the output and exit")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [src]",
	Short: "Show how a source would be played without starting the engine",
	Args: func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	PreRun: func(cmd *cobra.Command, args []string) {
		bindMediaFlags(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		if lo.Must(cmd.Flags().GetBool("schema")) {
			handleErr(json.NewEncoder(out).Encode(inspectSchema()))
			return
		}

		source, configuration, err := resolveMedia(cmd, args[0])
		handleErr(err)

		output := newInspectOutput(source, configuration)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(output))
			return
		}

		var (
			header = style.New().Bold(true).Foreground(color.HiPurple).Render
			name   = style.Faint
			value  = style.Fg(color.Yellow)
		)

		row := func(k string, v any) {
			fmt.Fprintf(out, "  %s %s\n", name(fmt.Sprintf("%-13s", k)), value(fmt.Sprint(v)))
		}

		optional := func(s string) string {
			if s == "" {
				return "unset"
			}
			return s
		}

		fmt.Fprintln(out, header("Source"))
		row("src", source.Src)
		row("title", source.Title())
		row("poster", optional(source.Poster))
		row("width", source.Width)
		row("height", source.Height)
		fmt.Fprintln(out)

		c := output.Configuration
		fmt.Fprintln(out, header("Configuration"))
		row("autoplay", c.Autoplay)
		row("loop", c.Loop)
		row("muted", c.Muted)
		row("controls", c.Controls)
		row("playsInline", c.PlaysInline)
		row("preload", optional(c.Preload))
		row("crossorigin", optional(c.CrossOrigin))
		fmt.Fprintln(out)

		fmt.Fprintln(out, header("mpv arguments"))
		for _, arg := range output.Args {
			fmt.Fprintln(out, "  "+arg)
		}
	},
}
