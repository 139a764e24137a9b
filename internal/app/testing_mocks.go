//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/xmh0511/byte-aes/internal/domain/blobs"

	"github.com/stretchr/testify/mock"
)

// MockBlobRepository is a mock implementation of BlobRepository
type MockBlobRepository struct {
	mock.Mock
}

func (m *MockBlobRepository) Create(ctx context.Context, blob *blobs.BlobMeta, ciphertext []byte) error {
	args := m.Called(ctx, blob, ciphertext)
	return args.Error(0)
}

func (m *MockBlobRepository) List(ctx context.Context, query *blobs.BlobMetaQuery) ([]*blobs.BlobMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*blobs.BlobMeta), args.Error(1)
}

func (m *MockBlobRepository) GetByID(ctx context.Context, blobID string) (*blobs.BlobMeta, error) {
	args := m.Called(ctx, blobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blobs.BlobMeta), args.Error(1)
}

func (m *MockBlobRepository) GetCiphertextByID(ctx context.Context, blobID string) ([]byte, error) {
	args := m.Called(ctx, blobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBlobRepository) DeleteByID(ctx context.Context, blobID string) error {
	args := m.Called(ctx, blobID)
	return args.Error(0)
}
