// Package filesystem is the single backend for every file ava touches: the
// config file, logs, the engine version cache and the engine sockets directory.
// Tests swap it for memory so they never write to the user's directories.
package filesystem

import "github.com/spf13/afero"

var (
	backend = afero.Afero{Fs: afero.NewOsFs()}
	virtual bool
)

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// Virtual reports whether the backend lives in memory. Files there are not
// visible to other processes, so an engine can never be listening on a socket
// path created in it.
func Virtual() bool {
	return virtual
}

// SetOsFs switches to the operating system's filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
	virtual = false
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
	virtual = true
}
