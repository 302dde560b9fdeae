package tui

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/ava-cli/ava/intent"
	tea "github.com/charmbracelet/bubbletea"
)

// InputSource identifies intents read from the headless input.
const InputSource = "stdin"

// readIntents sends one intent per non-empty line of r until r is exhausted or
// ctx is done. Unknown tags are sent too; the surface ignores them.
func readIntents(ctx context.Context, r io.Reader, send func(tea.Msg)) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		tag := strings.TrimSpace(scanner.Text())
		if tag == "" || strings.HasPrefix(tag, "#") {
			continue
		}

		send(intent.EmitTag(InputSource, tag)())
	}

	return scanner.Err()
}
