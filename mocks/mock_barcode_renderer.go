package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eanlabel/internal/domain"
)

// MockBarcodeRenderer is a mock implementation of port.BarcodeRenderer.
type MockBarcodeRenderer struct {
	mock.Mock
}

func (m *MockBarcodeRenderer) Render(ctx context.Context, code domain.Code) ([]byte, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
