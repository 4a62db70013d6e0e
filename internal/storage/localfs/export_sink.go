package localfs

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"eanlabel/internal/config"
	"eanlabel/internal/port"
)

type exportSink struct {
	fs  afero.Fs
	dir string
}

// NewExportSink creates an ExportSink writing into cfg.Dir on the OS filesystem.
func NewExportSink(cfg *config.ExportConfig) port.ExportSink {
	return NewExportSinkFs(afero.NewOsFs(), cfg.Dir)
}

// NewExportSinkFs creates an ExportSink on an arbitrary afero filesystem.
func NewExportSinkFs(fsys afero.Fs, dir string) port.ExportSink {
	return &exportSink{fs: fsys, dir: dir}
}

// Save writes to a temp file in the target directory and renames it into
// place, so a failed write never leaves a partial document.
func (s *exportSink) Save(_ context.Context, name string, data []byte) (string, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir %s: %w", s.dir, err)
	}

	tmp, err := afero.TempFile(s.fs, s.dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return "", fmt.Errorf("closing %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	if err := s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return "", fmt.Errorf("renaming %s: %w", name, err)
	}
	return path, nil
}
