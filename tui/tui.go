// Package tui hosts the playback surface in a terminal program.
package tui

import (
	"context"
	"io"
	"os"

	"github.com/ava-cli/ava/log"
	"github.com/ava-cli/ava/media"
	"github.com/ava-cli/ava/player"
	"github.com/ava-cli/ava/surface"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a playback session.
type Options struct {
	Source        media.Source
	Configuration media.Configuration

	// Headless skips rendering and reads intent tags from Input, one per line.
	Headless bool
	Input    io.Reader
	Output   io.Writer
}

// Run plays the source with mpv until the user quits or the engine exits.
func Run(options *Options) error {
	return run(context.Background(), options, newEngine)
}

// newEngine starts every attachment on its own mpv process.
func newEngine() (player.Primitive, player.Fullscreen) {
	engine := player.NewMPV()
	return engine, engine
}

func run(ctx context.Context, options *Options, engine surface.Engine) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if options.Output == nil {
		options.Output = os.Stdout
	}

	bubble := newBubble(ctx, options, engine)
	defer bubble.surface.Detach()

	var programOptions []tea.ProgramOption
	if options.Headless {
		programOptions = append(programOptions, tea.WithInput(nil), tea.WithoutRenderer())
	} else {
		programOptions = append(programOptions, tea.WithAltScreen(), tea.WithMouseCellMotion())
	}

	program := tea.NewProgram(bubble, programOptions...)

	if options.Headless {
		input := options.Input
		if input == nil {
			input = os.Stdin
		}

		go func() {
			if err := readIntents(ctx, input, program.Send); err != nil {
				log.Warnf("reading intents: %v", err)
			}
		}()
	}

	_, err := program.Run()
	if err != nil {
		return err
	}

	return bubble.err()
}
