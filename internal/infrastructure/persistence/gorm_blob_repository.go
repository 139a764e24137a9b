package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/xmh0511/byte-aes/internal/domain/blobs"
	"github.com/xmh0511/byte-aes/internal/infrastructure/persistence/models"
	"github.com/xmh0511/byte-aes/internal/pkg/logger"

	"gorm.io/gorm"
)

// metadataColumns excludes the ciphertext so listings do not load blob bodies
var metadataColumns = []string{"id", "date_time_created", "name", "plain_size", "cipher_size", "algorithm", "mode"}

type gormBlobRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBlobRepository creates a new GORM-based BlobRepository implementation
func NewGormBlobRepository(db *gorm.DB, logger logger.Logger) (blobs.BlobRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}
	return &gormBlobRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBlobRepository) Create(ctx context.Context, blob *blobs.BlobMeta, ciphertext []byte) error {
	if err := blob.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if int64(len(ciphertext)) != blob.CipherSize {
		return fmt.Errorf("validation error: ciphertext has %d bytes, metadata says %d", len(ciphertext), blob.CipherSize)
	}

	model := &models.BlobModel{}
	model.FromDomain(blob, ciphertext)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create blob: %w", err)
	}

	r.logger.Info("Created sealed blob with id ", blob.ID)
	return nil
}

func (r *gormBlobRepository) List(ctx context.Context, query *blobs.BlobMetaQuery) ([]*blobs.BlobMeta, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.BlobModel
	dbQuery := r.db.WithContext(ctx).Model(&models.BlobModel{}).Select(metadataColumns)

	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}

	// SortBy and SortOrder are restricted to known values by query.Validate
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch blobs: %w", err)
	}

	domainList := make([]*blobs.BlobMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormBlobRepository) GetByID(ctx context.Context, blobID string) (*blobs.BlobMeta, error) {
	model, err := r.find(ctx, blobID, metadataColumns)
	if err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *gormBlobRepository) GetCiphertextByID(ctx context.Context, blobID string) ([]byte, error) {
	model, err := r.find(ctx, blobID, []string{"id", "ciphertext"})
	if err != nil {
		return nil, err
	}
	return model.Ciphertext, nil
}

func (r *gormBlobRepository) DeleteByID(ctx context.Context, blobID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", blobID).Delete(&models.BlobModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete blob: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("blob with ID %s: %w", blobID, blobs.ErrBlobNotFound)
	}

	r.logger.Info("Deleted sealed blob with id ", blobID)
	return nil
}

func (r *gormBlobRepository) find(ctx context.Context, blobID string, columns []string) (*models.BlobModel, error) {
	var model models.BlobModel
	if err := r.db.WithContext(ctx).Select(columns).Where("id = ?", blobID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blob with ID %s: %w", blobID, blobs.ErrBlobNotFound)
		}
		return nil, fmt.Errorf("failed to fetch blob: %w", err)
	}
	return &model, nil
}
