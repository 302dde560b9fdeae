// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Playback Defaults - these keys seed the playback configuration handed verbatim to the engine.
const (
	PlayerAutoplay    = "player.autoplay"
	PlayerLoop        = "player.loop"
	PlayerMuted       = "player.muted"
	PlayerControls    = "player.controls"
	PlayerPlaysInline = "player.plays_inline"
	PlayerPreload     = "player.preload"
	PlayerCrossOrigin = "player.crossorigin"
	PlayerWidth       = "player.width"
	PlayerHeight      = "player.height"
)

// Engine Process - these keys control how the mpv process is located and reached.
const (
	MPVBinary     = "mpv.binary"
	MPVIPCTimeout = "mpv.ipc_timeout"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive environment.
const (
	TUIShowHelp = "tui.show_help"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
