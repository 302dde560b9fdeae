package controlbar

import (
	"github.com/ava-cli/ava/intent"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap holds the bindings of the bar's buttons.
type KeyMap struct {
	PlayPause, VolumeToggle, FullscreenToggle key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PlayPause: key.NewBinding(
			key.WithKeys(" ", "space", "k"),
			key.WithHelp("space", "play/pause"),
		),
		VolumeToggle: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		FullscreenToggle: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.VolumeToggle, k.FullscreenToggle}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is the bubbletea component of the bar. Its fields mirror a Snapshot and
// may be updated directly; View always equals Render of the current Snapshot.
type Model struct {
	KeyMap KeyMap

	snapshot Snapshot
	originX  int
	originY  int
}

// New returns a bar showing the zero snapshot.
func New() Model {
	return Model{KeyMap: DefaultKeyMap()}
}

// Snapshot returns what the bar currently shows.
func (m Model) Snapshot() Snapshot {
	return m.snapshot
}

// SetSnapshot replaces every field at once.
func (m *Model) SetSnapshot(s Snapshot) {
	m.snapshot = s
}

func (m *Model) SetPlaying(playing bool) {
	m.snapshot.IsPlaying = playing
}

func (m *Model) SetMuted(muted bool) {
	m.snapshot.IsMuted = muted
}

func (m *Model) SetFullscreen(fullscreen bool) {
	m.snapshot.IsFullscreen = fullscreen
}

// SetOrigin tells the bar where its top-left corner is on screen, for mouse hit-testing.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Height is the number of rows the bar occupies.
func (m Model) Height() int {
	return lipgloss.Height(m.View())
}

// Update turns key presses and clicks into intents. It never changes the snapshot.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.PlayPause):
			return m, intent.Emit(Source, intent.PlayPause)
		case key.Matches(msg, m.KeyMap.VolumeToggle):
			return m, intent.Emit(Source, intent.VolumeToggle)
		case key.Matches(msg, m.KeyMap.FullscreenToggle):
			return m, intent.Emit(Source, intent.FullscreenToggle)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Y < m.originY || msg.Y >= m.originY+m.Height() {
			return m, nil
		}
		if i, ok := hitTest(m.snapshot, msg.X-m.originX); ok {
			return m, intent.Emit(Source, i)
		}
	}

	return m, nil
}

// View renders the current snapshot.
func (m Model) View() string {
	return Render(m.snapshot)
}
