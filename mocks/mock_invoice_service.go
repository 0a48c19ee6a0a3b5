package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invoiceflow/internal/domain"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Get(ctx context.Context, id string) (domain.Invoice, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Save(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	args := m.Called(ctx, inv)
	return args.Get(0).(domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceService) NewNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
