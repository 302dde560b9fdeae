// Package cache removes files left behind by earlier sessions.
package cache

import (
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/ava-cli/ava/filesystem"
	"github.com/ava-cli/ava/log"
	"github.com/ava-cli/ava/where"
)

// TTL is how long a cache entry is kept.
const TTL = 7 * 24 * time.Hour

const dialTimeout = 200 * time.Millisecond

// CollectGarbage prunes expired cache entries and the sockets of engines that
// are no longer running.
func CollectGarbage() {
	pruned := prune(where.Cache(), expired(time.Now())) + prune(where.Sockets(), abandoned)
	if pruned > 0 {
		log.Infof("removed %d stale files", pruned)
	}
}

// prune removes the regular files under dir for which stale holds and returns how many were removed.
func prune(dir string, stale func(path string, info os.FileInfo) bool) int {
	var removed int

	_ = filesystem.API().Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if stale(path, info) {
			if err := filesystem.API().Remove(path); err != nil {
				log.Warnf("removing %s: %v", path, err)
				return nil
			}
			removed++
		}
		return nil
	})

	return removed
}

func expired(now time.Time) func(string, os.FileInfo) bool {
	return func(_ string, info os.FileInfo) bool {
		return now.Sub(info.ModTime()) > TTL
	}
}

// abandoned reports whether no engine listens on the socket at path. Sockets
// on a virtual backend never have a listener.
func abandoned(path string, _ os.FileInfo) bool {
	if filepath.Ext(path) != ".sock" {
		return false
	}

	if filesystem.Virtual() {
		return true
	}

	conn, err := net.DialTimeout("unix", path, dialTimeout)
	if err != nil {
		return true
	}
	_ = conn.Close()
	return false
}
