package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockExportSink is a mock implementation of port.ExportSink.
type MockExportSink struct {
	mock.Mock
}

func (m *MockExportSink) Save(ctx context.Context, name string, data []byte) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}
