package filesystem

import (
	"io"
	"os"

	"github.com/metafates/gache"
)

// GacheFs stores gache entries, such as the detected engine version, on the active backend.
type GacheFs struct{}

var _ gache.FileSystem = GacheFs{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
