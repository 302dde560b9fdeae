// Package version provides unified mechanisms for version tracking and playback engine compatibility validation.
package version

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"time"

	"github.com/ava-cli/ava/constant"
	"github.com/ava-cli/ava/filesystem"
	"github.com/ava-cli/ava/where"
	"github.com/metafates/gache"
)

// EngineInfo records which engine binary was checked and the version it reported.
type EngineInfo struct {
	Binary  string `json:"binary"`
	Path    string `json:"path"`
	Version string `json:"version"`
}

var engineCacher = gache.New[EngineInfo](&gache.Options{
	Path:       where.EngineCache(),
	Lifetime:   time.Hour * 24,
	FileSystem: &filesystem.GacheFs{},
})

var engineVersionPattern = regexp.MustCompile(`mpv v?(\d+\.\d+\.\d+)`)

// ErrEngineNotFound is returned when the engine binary is not on PATH.
var ErrEngineNotFound = errors.New("engine binary not found")

// Engine locates the given engine binary and returns its reported version.
// The result is cached so repeated checks do not spawn a process each time.
func Engine(binary string) (EngineInfo, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return EngineInfo{}, fmt.Errorf("%w: %s", ErrEngineNotFound, binary)
	}

	cached, expired, err := engineCacher.Get()
	if err == nil && !expired && cached.Path == path && cached.Version != "" {
		return cached, nil
	}

	out, err := exec.Command(path, "--version").Output()
	if err != nil {
		return EngineInfo{}, fmt.Errorf("run %s --version: %w", binary, err)
	}

	v, err := ParseEngineVersion(string(out))
	if err != nil {
		return EngineInfo{}, err
	}

	info := EngineInfo{Binary: binary, Path: path, Version: v}
	_ = engineCacher.Set(info)
	return info, nil
}

// ParseEngineVersion extracts the semantic version from `mpv --version` output.
func ParseEngineVersion(output string) (string, error) {
	m := engineVersionPattern.FindStringSubmatch(output)
	if m == nil {
		return "", fmt.Errorf("unrecognized engine version output")
	}
	return m[1], nil
}

// Supported reports whether the engine version is recent enough to expose JSON-IPC.
func Supported(engineVersion string) bool {
	c, err := Compare(engineVersion, constant.MinMPVVersion)
	return err == nil && c >= 0
}
