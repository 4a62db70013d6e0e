package localfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"eanlabel/internal/config"
	"eanlabel/internal/domain"
	"eanlabel/internal/port"
)

const artifactExt = ".png"

type artifactStore struct {
	fs  afero.Fs
	dir string
}

// NewArtifactStore creates a filesystem-backed ArtifactStore rooted at
// cfg.Dir on the OS filesystem.
func NewArtifactStore(cfg *config.ArtifactsConfig) port.ArtifactStore {
	return NewArtifactStoreFs(afero.NewOsFs(), cfg.Dir)
}

// NewArtifactStoreFs creates an ArtifactStore on an arbitrary afero filesystem.
func NewArtifactStoreFs(fsys afero.Fs, dir string) port.ArtifactStore {
	return &artifactStore{fs: fsys, dir: dir}
}

func (s *artifactStore) Ensure(_ context.Context) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating artifact dir %s: %w", s.dir, err)
	}
	return nil
}

func (s *artifactStore) Path(code domain.Code) string {
	return filepath.Join(s.dir, code.String()+artifactExt)
}

func (s *artifactStore) Write(_ context.Context, code domain.Code, data []byte) (string, error) {
	path := s.Path(code)
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing artifact %s: %w", path, err)
	}
	return path, nil
}

func (s *artifactStore) Read(_ context.Context, code domain.Code) ([]byte, error) {
	path := s.Path(code)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrArtifactNotFound)
		}
		return nil, fmt.Errorf("reading artifact %s: %w", path, err)
	}
	return data, nil
}

func (s *artifactStore) RemoveAll(_ context.Context) error {
	err := s.fs.RemoveAll(s.dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing artifact dir %s: %w", s.dir, err)
	}
	return nil
}
