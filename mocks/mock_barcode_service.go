package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eanlabel/internal/domain"
	"eanlabel/internal/service"
)

// MockBarcodeService is a mock implementation of service.BarcodeService.
type MockBarcodeService struct {
	mock.Mock
}

func (m *MockBarcodeService) GenerateAndValidate(ctx context.Context, raw string) (*domain.GenerateResult, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GenerateResult), args.Error(1)
}

func (m *MockBarcodeService) Validate(raw string) (domain.ValidationStatus, *domain.Rejection) {
	args := m.Called(raw)
	if args.Get(1) == nil {
		return args.Get(0).(domain.ValidationStatus), nil
	}
	return args.Get(0).(domain.ValidationStatus), args.Get(1).(*domain.Rejection)
}

func (m *MockBarcodeService) ExportPDF(ctx context.Context, raw string) (*domain.ExportResult, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportResult), args.Error(1)
}

func (m *MockBarcodeService) Session() service.Session {
	args := m.Called()
	return args.Get(0).(service.Session)
}

func (m *MockBarcodeService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
