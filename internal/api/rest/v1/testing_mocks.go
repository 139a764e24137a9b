//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/xmh0511/byte-aes/internal/domain/blobs"

	"github.com/stretchr/testify/mock"
)

// MockBlobSealService is a mock implementation of BlobSealService
type MockBlobSealService struct {
	mock.Mock
}

func (m *MockBlobSealService) Seal(ctx context.Context, name string, data []byte) (*blobs.BlobMeta, error) {
	args := m.Called(ctx, name, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blobs.BlobMeta), args.Error(1)
}

// MockBlobOpenService is a mock implementation of BlobOpenService
type MockBlobOpenService struct {
	mock.Mock
}

func (m *MockBlobOpenService) Open(ctx context.Context, blobID string) ([]byte, error) {
	args := m.Called(ctx, blobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockBlobMetadataService is a mock implementation of BlobMetadataService
type MockBlobMetadataService struct {
	mock.Mock
}

func (m *MockBlobMetadataService) List(ctx context.Context, query *blobs.BlobMetaQuery) ([]*blobs.BlobMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*blobs.BlobMeta), args.Error(1)
}

func (m *MockBlobMetadataService) GetByID(ctx context.Context, blobID string) (*blobs.BlobMeta, error) {
	args := m.Called(ctx, blobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blobs.BlobMeta), args.Error(1)
}

func (m *MockBlobMetadataService) DeleteByID(ctx context.Context, blobID string) error {
	args := m.Called(ctx, blobID)
	return args.Error(0)
}
