package constant

const (
	// MPV is the default playback engine binary.
	MPV = "mpv"

	// MinMPVVersion is the oldest mpv release with a usable JSON-IPC server.
	MinMPVVersion = "0.17.0"
)
