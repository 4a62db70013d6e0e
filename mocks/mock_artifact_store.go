package mocks

import (
	"context"
	"path/filepath"

	"github.com/stretchr/testify/mock"

	"eanlabel/internal/domain"
)

// MockArtifactStore is a mock implementation of port.ArtifactStore.
// Path is not mocked; it joins Dir and the code.
type MockArtifactStore struct {
	mock.Mock
	Dir string
}

func (m *MockArtifactStore) Ensure(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockArtifactStore) Path(code domain.Code) string {
	return filepath.Join(m.Dir, code.String()+".png")
}

func (m *MockArtifactStore) Write(ctx context.Context, code domain.Code, data []byte) (string, error) {
	args := m.Called(ctx, code, data)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) Read(ctx context.Context, code domain.Code) ([]byte, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockArtifactStore) RemoveAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
