package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockBackupService is a mock implementation of service.BackupService.
type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) Export(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBackupService) Import(ctx context.Context, doc []byte) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockBackupService) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
