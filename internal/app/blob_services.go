package app

import (
	"context"
	"fmt"
	"time"

	"github.com/xmh0511/byte-aes/internal/domain/blobs"
	"github.com/xmh0511/byte-aes/internal/domain/crypto"
	"github.com/xmh0511/byte-aes/internal/pkg/logger"

	"github.com/google/uuid"
)

// blobSealService implements the BlobSealService interface
type blobSealService struct {
	blobRepository blobs.BlobRepository
	cryptor        crypto.BlockCryptor
	logger         logger.Logger
}

// NewBlobSealService creates a new instance of BlobSealService
func NewBlobSealService(blobRepository blobs.BlobRepository, cryptor crypto.BlockCryptor, logger logger.Logger) (blobs.BlobSealService, error) {
	if blobRepository == nil || cryptor == nil {
		return nil, fmt.Errorf("blob repository and cryptor are required")
	}
	return &blobSealService{
		blobRepository: blobRepository,
		cryptor:        cryptor,
		logger:         logger,
	}, nil
}

// Seal encrypts data and stores the ciphertext under a new ID.
func (s *blobSealService) Seal(ctx context.Context, name string, data []byte) (*blobs.BlobMeta, error) {
	ciphertext := s.cryptor.Encrypt(data)

	blobMeta := &blobs.BlobMeta{
		ID:              uuid.New().String(),
		DateTimeCreated: time.Now().UTC(),
		Name:            name,
		PlainSize:       int64(len(data)),
		CipherSize:      int64(len(ciphertext)),
		Algorithm:       crypto.AlgorithmAES256,
		Mode:            crypto.ModeIndependentBlock,
	}

	if err := s.blobRepository.Create(ctx, blobMeta, ciphertext); err != nil {
		return nil, fmt.Errorf("failed to store sealed blob: %w", err)
	}

	s.logger.Info("Sealed blob ", blobMeta.ID, " (", blobMeta.PlainSize, " -> ", blobMeta.CipherSize, " bytes)")
	return blobMeta, nil
}

// blobOpenService implements the BlobOpenService interface
type blobOpenService struct {
	blobRepository blobs.BlobRepository
	cryptor        crypto.BlockCryptor
	logger         logger.Logger
}

// NewBlobOpenService creates a new instance of BlobOpenService
func NewBlobOpenService(blobRepository blobs.BlobRepository, cryptor crypto.BlockCryptor, logger logger.Logger) (blobs.BlobOpenService, error) {
	if blobRepository == nil || cryptor == nil {
		return nil, fmt.Errorf("blob repository and cryptor are required")
	}
	return &blobOpenService{
		blobRepository: blobRepository,
		cryptor:        cryptor,
		logger:         logger,
	}, nil
}

// Open loads the ciphertext of a blob and decrypts it.
func (s *blobOpenService) Open(ctx context.Context, blobID string) ([]byte, error) {
	ciphertext, err := s.blobRepository.GetCiphertextByID(ctx, blobID)
	if err != nil {
		return nil, err
	}

	plaintext, err := s.cryptor.Decrypt(ciphertext)
	if err != nil {
		s.logger.Error("Failed to open blob ", blobID, ": ", err)
		return nil, fmt.Errorf("failed to decrypt blob %s: %w", blobID, err)
	}

	s.logger.Info("Opened blob ", blobID)
	return plaintext, nil
}

// blobMetadataService implements the BlobMetadataService interface
type blobMetadataService struct {
	blobRepository blobs.BlobRepository
	logger         logger.Logger
}

// NewBlobMetadataService creates a new instance of BlobMetadataService
func NewBlobMetadataService(blobRepository blobs.BlobRepository, logger logger.Logger) (blobs.BlobMetadataService, error) {
	if blobRepository == nil {
		return nil, fmt.Errorf("blob repository is required")
	}
	return &blobMetadataService{
		blobRepository: blobRepository,
		logger:         logger,
	}, nil
}

// List retrieves all blobs' metadata considering a query filter when set.
func (s *blobMetadataService) List(ctx context.Context, query *blobs.BlobMetaQuery) ([]*blobs.BlobMeta, error) {
	blobMetas, err := s.blobRepository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blobs: %w", err)
	}
	return blobMetas, nil
}

// GetByID retrieves a blob's metadata by its unique ID.
func (s *blobMetadataService) GetByID(ctx context.Context, blobID string) (*blobs.BlobMeta, error) {
	return s.blobRepository.GetByID(ctx, blobID)
}

// DeleteByID deletes a blob and its ciphertext by ID.
func (s *blobMetadataService) DeleteByID(ctx context.Context, blobID string) error {
	if err := s.blobRepository.DeleteByID(ctx, blobID); err != nil {
		return err
	}
	s.logger.Info("Deleted blob ", blobID)
	return nil
}
