package constant

// Platform identifiers for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)

// MPVInstallCommands suggests how to install mpv on each platform.
var MPVInstallCommands = map[string]string{
	Darwin:  "brew install mpv",
	Linux:   "sudo apt install mpv",
	Windows: "scoop install mpv",
	Android: "pkg install mpv",
}
