package v1

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/xmh0511/byte-aes/internal/domain/blobs"
	"github.com/xmh0511/byte-aes/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// BlobHandler defines the interface for handling sealed blob operations
type BlobHandler interface {
	Upload(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// blobHandler struct holds the services
type blobHandler struct {
	blobSealService     blobs.BlobSealService
	blobOpenService     blobs.BlobOpenService
	blobMetadataService blobs.BlobMetadataService
	logger              logger.Logger
}

// NewBlobHandler creates a new BlobHandler
func NewBlobHandler(blobSealService blobs.BlobSealService, blobOpenService blobs.BlobOpenService, blobMetadataService blobs.BlobMetadataService, logger logger.Logger) BlobHandler {
	return &blobHandler{
		blobSealService:     blobSealService,
		blobOpenService:     blobOpenService,
		blobMetadataService: blobMetadataService,
		logger:              logger,
	}
}

// Upload seals every file of the multipart form
// @Summary Upload and seal files
// @Description Encrypt the uploaded files and store their ciphertext.
// @Tags Blob
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to seal"
// @Success 201 {array} BlobMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /blobs [post]
func (handler *blobHandler) Upload(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		writeError(ctx, http.StatusBadRequest, "invalid form data")
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		writeError(ctx, http.StatusBadRequest, "no files provided in form field 'files'")
		return
	}

	responses := make([]BlobMetaResponse, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		data, err := readFormFile(fileHeader)
		if err != nil {
			writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not read file %s: %v", fileHeader.Filename, err.Error()))
			return
		}

		blobMeta, err := handler.blobSealService.Seal(ctx, fileHeader.Filename, data)
		if err != nil {
			handler.logger.Error("Failed to seal ", fileHeader.Filename, ": ", err)
			writeError(ctx, http.StatusBadRequest, fmt.Sprintf("error sealing blob: %v", err.Error()))
			return
		}
		responses = append(responses, newBlobMetaResponse(blobMeta))
	}

	ctx.JSON(http.StatusCreated, responses)
}

// ListMetadata fetches sealed blob metadata optionally with query parameters
// @Summary List sealed blob metadata
// @Tags Blob
// @Produce json
// @Param name query string false "Blob name"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} BlobMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /blobs [get]
func (handler *blobHandler) ListMetadata(ctx *gin.Context) {
	query := blobs.NewBlobMetaQuery()

	if blobName := ctx.Query("name"); len(blobName) > 0 {
		query.Name = blobName
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		value, err := strconv.Atoi(limit)
		if err != nil {
			writeError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", limit))
			return
		}
		query.Limit = value
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		value, err := strconv.Atoi(offset)
		if err != nil {
			writeError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid offset %q", offset))
			return
		}
		query.Offset = value
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err.Error()))
		return
	}

	blobMetas, err := handler.blobMetadataService.List(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusInternalServerError, fmt.Sprintf("list query failed: %v", err.Error()))
		return
	}

	listResponse := []BlobMetaResponse{}
	for _, blobMeta := range blobMetas {
		listResponse = append(listResponse, newBlobMetaResponse(blobMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID fetches blob metadata by ID
// @Summary Retrieve sealed blob metadata by ID
// @Tags Blob
// @Produce json
// @Param id path string true "Blob ID"
// @Success 200 {object} BlobMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /blobs/{id} [get]
func (handler *blobHandler) GetMetadataByID(ctx *gin.Context) {
	blobID := ctx.Param("id")

	blobMeta, err := handler.blobMetadataService.GetByID(ctx, blobID)
	if err != nil {
		writeError(ctx, statusFor(err), fmt.Sprintf("could not get blob with id %s: %v", blobID, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, newBlobMetaResponse(blobMeta))
}

// DownloadByID decrypts a sealed blob and streams the plaintext
// @Summary Download the decrypted content of a sealed blob
// @Tags Blob
// @Produce octet-stream
// @Param id path string true "Blob ID"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /blobs/{id}/file [get]
func (handler *blobHandler) DownloadByID(ctx *gin.Context) {
	blobID := ctx.Param("id")

	blobMeta, err := handler.blobMetadataService.GetByID(ctx, blobID)
	if err != nil {
		writeError(ctx, statusFor(err), fmt.Sprintf("could not get blob with id %s: %v", blobID, err.Error()))
		return
	}

	plaintext, err := handler.blobOpenService.Open(ctx, blobID)
	if err != nil {
		writeError(ctx, statusFor(err), fmt.Sprintf("could not open blob with id %s: %v", blobID, err.Error()))
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+strconv.Quote(blobMeta.Name))
	ctx.Data(http.StatusOK, "application/octet-stream", plaintext)
}

// DeleteByID deletes a blob by ID
// @Summary Delete a sealed blob by ID
// @Tags Blob
// @Param id path string true "Blob ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /blobs/{id} [delete]
func (handler *blobHandler) DeleteByID(ctx *gin.Context) {
	blobID := ctx.Param("id")

	if err := handler.blobMetadataService.DeleteByID(ctx, blobID); err != nil {
		writeError(ctx, statusFor(err), fmt.Sprintf("could not delete blob with id %s: %v", blobID, err.Error()))
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted blob with id %s", blobID)})
}

func readFormFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
