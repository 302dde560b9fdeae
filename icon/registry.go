package icon

// Icon is a stable symbolic identifier of a UI symbol.
type Icon string

// Player controls.
const (
	Play           Icon = "play"
	Pause          Icon = "pause"
	VolumeOn       Icon = "volume-on"
	VolumeMute     Icon = "volume-mute"
	Fullscreen     Icon = "fullscreen"
	FullscreenExit Icon = "fullscreen-exit"

	// Reserved for controls that are not implemented yet.
	Captions   Icon = "captions"
	MiniPlayer Icon = "mini-player"
)

// Feedback indicators.
const (
	Success  Icon = "success"
	Fail     Icon = "fail"
	Progress Icon = "progress"
)

// aliases maps alternative sprite names onto their canonical Icon.
var aliases = map[string]Icon{
	"volume-high":      VolumeOn,
	"volume-muted":     VolumeMute,
	"fullscreen-open":  Fullscreen,
	"fullscreen-close": FullscreenExit,
}

var icons = map[Icon]glyphs{
	Play: {
		emoji:   "▶️",
		nerd:    "\uf04b",
		plain:   ">",
		kaomoji: "(▷)",
		squares: "▶",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "\uf04c",
		plain:   "||",
		kaomoji: "(‖)",
		squares: "⏸",
	},
	VolumeOn: {
		emoji:   "🔊",
		nerd:    "\uf028",
		plain:   "vol",
		kaomoji: "(♪)",
		squares: "◧",
	},
	VolumeMute: {
		emoji:   "🔇",
		nerd:    "\uf026",
		plain:   "mute",
		kaomoji: "(×)",
		squares: "□",
	},
	Fullscreen: {
		emoji:   "⛶",
		nerd:    "\uf065",
		plain:   "[ ]",
		kaomoji: "(⌐■)",
		squares: "▣",
	},
	FullscreenExit: {
		emoji:   "🗗",
		nerd:    "\uf066",
		plain:   "]-[",
		kaomoji: "(■¬)",
		squares: "▢",
	},
	Captions: {
		emoji:   "💬",
		nerd:    "\U000f0a6e",
		plain:   "cc",
		kaomoji: "(cc)",
		squares: "▤",
	},
	MiniPlayer: {
		emoji:   "🪟",
		nerd:    "\uf2d2",
		plain:   "pip",
		kaomoji: "(▫)",
		squares: "▪",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "\uf00c",
		plain:   "+",
		kaomoji: "(ᵔᴥᵔ)",
		squares: "▣",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "\uf00d",
		plain:   "x",
		kaomoji: "(╯°□°)╯",
		squares: "▨",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "\uf251",
		plain:   "~",
		kaomoji: "(・_・)",
		squares: "▦",
	},
}

// Lookup resolves a sprite id, including its known aliases, to an Icon.
func Lookup(id string) (Icon, bool) {
	if alias, ok := aliases[id]; ok {
		return alias, true
	}
	if _, ok := icons[Icon(id)]; ok {
		return Icon(id), true
	}
	return "", false
}
