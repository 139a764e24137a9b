package v1

import (
	"github.com/xmh0511/byte-aes/internal/domain/blobs"
	"github.com/xmh0511/byte-aes/internal/domain/crypto"
	"github.com/xmh0511/byte-aes/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	cryptor crypto.BlockCryptor,
	blobSealService blobs.BlobSealService,
	blobOpenService blobs.BlobOpenService,
	blobMetadataService blobs.BlobMetadataService,
	logger logger.Logger) {

	v1 := r.Group(BasePath) // lookup in version file

	// Cryptor Routes
	cryptorHandler := NewCryptorHandler(cryptor, logger)
	v1.POST("/encrypt", cryptorHandler.Encrypt)
	v1.POST("/decrypt", cryptorHandler.Decrypt)

	// Blobs Routes
	blobHandler := NewBlobHandler(blobSealService, blobOpenService, blobMetadataService, logger)
	v1.POST("/blobs", blobHandler.Upload)
	v1.GET("/blobs", blobHandler.ListMetadata)
	v1.GET("/blobs/:id", blobHandler.GetMetadataByID)
	v1.GET("/blobs/:id/file", blobHandler.DownloadByID)
	v1.DELETE("/blobs/:id", blobHandler.DeleteByID)
}
