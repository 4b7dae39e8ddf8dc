package platform

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ytget/qr-gallery/internal/model"
)

// probeFilePattern names the temporary file used to test write access
const probeFilePattern = ".qr-gallery-probe-*"

// StoragePermission answers media permission requests by probing write access
// to the gallery directory.
type StoragePermission struct {
	dir string
}

// NewStoragePermission creates a permission authority for dir
func NewStoragePermission(dir string) *StoragePermission {
	return &StoragePermission{dir: dir}
}

// Request reports PermissionGranted when a file can be created in the
// directory and PermissionDenied when the OS refuses access. Other failures
// are returned as errors.
func (p *StoragePermission) Request(ctx context.Context) (model.PermissionStatus, error) {
	if err := ctx.Err(); err != nil {
		return model.PermissionUndetermined, err
	}

	if err := CreateDirectoryIfNotExists(p.dir); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return model.PermissionDenied, nil
		}
		return model.PermissionUndetermined, fmt.Errorf("failed to prepare %s: %w", p.dir, err)
	}

	probe, err := os.CreateTemp(p.dir, probeFilePattern)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return model.PermissionDenied, nil
		}
		return model.PermissionUndetermined, fmt.Errorf("failed to probe %s: %w", p.dir, err)
	}

	name := probe.Name()
	probe.Close()
	os.Remove(name)

	return model.PermissionGranted, nil
}
