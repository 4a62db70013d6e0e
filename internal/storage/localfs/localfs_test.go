package localfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eanlabel/internal/config"
	"eanlabel/internal/domain"
)

const testCode = domain.Code("4006381333931")

func TestArtifactStore_PathIsDeterministic(t *testing.T) {
	store := NewArtifactStoreFs(afero.NewMemMapFs(), "barcode")
	assert.Equal(t, filepath.Join("barcode", "4006381333931.png"), store.Path(testCode))
}

func TestArtifactStore_EnsureIsIdempotent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := NewArtifactStoreFs(fsys, "barcode")
	ctx := context.Background()

	require.NoError(t, store.Ensure(ctx))
	require.NoError(t, store.Ensure(ctx))

	ok, err := afero.DirExists(fsys, "barcode")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArtifactStore_WriteOverwrites(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := NewArtifactStoreFs(fsys, "barcode")
	ctx := context.Background()
	require.NoError(t, store.Ensure(ctx))

	_, err := store.Write(ctx, testCode, []byte("first"))
	require.NoError(t, err)
	path, err := store.Write(ctx, testCode, []byte("second"))
	require.NoError(t, err)

	entries, err := afero.ReadDir(fsys, "barcode")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestArtifactStore_ReadMissing(t *testing.T) {
	store := NewArtifactStoreFs(afero.NewMemMapFs(), "barcode")

	_, err := store.Read(context.Background(), testCode)
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestArtifactStore_RemoveAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "barcode")
	store := NewArtifactStore(&config.ArtifactsConfig{Dir: dir})
	ctx := context.Background()

	require.NoError(t, store.Ensure(ctx))
	_, err := store.Write(ctx, testCode, []byte("png"))
	require.NoError(t, err)

	require.NoError(t, store.RemoveAll(ctx))
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestArtifactStore_RemoveAllNeverCreated(t *testing.T) {
	store := NewArtifactStore(&config.ArtifactsConfig{Dir: filepath.Join(t.TempDir(), "never")})

	assert.NoError(t, store.RemoveAll(context.Background()))
	assert.NoError(t, store.RemoveAll(context.Background()))
}

func TestExportSink_Save(t *testing.T) {
	dir := t.TempDir()
	sink := NewExportSink(&config.ExportConfig{Dir: dir})

	path, err := sink.Save(context.Background(), "4006381333931_barcode.pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "4006381333931_barcode.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestExportSink_SaveFailsOnReadOnlyFs(t *testing.T) {
	sink := NewExportSinkFs(afero.NewReadOnlyFs(afero.NewMemMapFs()), "out")

	_, err := sink.Save(context.Background(), "x_barcode.pdf", []byte("data"))
	assert.Error(t, err)
}
