package blobs

import (
	"context"
)

// BlobSealService encrypts data and stores the ciphertext.
type BlobSealService interface {
	// Seal encrypts data with the configured cryptor and persists the ciphertext under a new ID.
	// It returns the metadata of the stored blob.
	Seal(ctx context.Context, name string, data []byte) (*BlobMeta, error)
}

// BlobOpenService loads and decrypts stored blobs.
type BlobOpenService interface {
	// Open decrypts the blob with the given ID.
	// Decryption failures are returned as errors; an empty result always means an empty original.
	Open(ctx context.Context, blobID string) ([]byte, error)
}

// BlobMetadataService defines methods for retrieving blob metadata and deleting a blob.
type BlobMetadataService interface {
	// List retrieves all blobs' metadata considering a query filter when set.
	List(ctx context.Context, query *BlobMetaQuery) ([]*BlobMeta, error)

	// GetByID retrieves the blob metadata by ID.
	GetByID(ctx context.Context, blobID string) (*BlobMeta, error)

	// DeleteByID deletes a blob and its ciphertext by ID.
	DeleteByID(ctx context.Context, blobID string) error
}

// BlobRepository defines the interface for blob persistence
type BlobRepository interface {
	// Create adds a new blob and its ciphertext to the database
	Create(ctx context.Context, blob *BlobMeta, ciphertext []byte) error
	// List lists blobs in the database with optional filter
	List(ctx context.Context, query *BlobMetaQuery) ([]*BlobMeta, error)
	// GetByID retrieves blob metadata from the database by ID
	GetByID(ctx context.Context, blobID string) (*BlobMeta, error)
	// GetCiphertextByID retrieves the stored ciphertext by ID
	GetCiphertextByID(ctx context.Context, blobID string) ([]byte, error)
	// DeleteByID deletes a blob in the database by ID
	DeleteByID(ctx context.Context, blobID string) error
}
