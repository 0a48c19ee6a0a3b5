package service

import (
	"context"

	"invoiceflow/internal/backup"
)

// BackupService exposes full-data export, import and clear.
type BackupService interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, doc []byte) error
	Clear(ctx context.Context) error
}

type backupService struct {
	codec *backup.Codec
}

// NewBackupService creates a BackupService over the codec.
func NewBackupService(codec *backup.Codec) BackupService {
	return &backupService{codec: codec}
}

func (s *backupService) Export(ctx context.Context) ([]byte, error) {
	return s.codec.Export(ctx)
}

func (s *backupService) Import(ctx context.Context, doc []byte) error {
	return s.codec.Import(ctx, doc)
}

func (s *backupService) Clear(ctx context.Context) error {
	return s.codec.Clear(ctx)
}
