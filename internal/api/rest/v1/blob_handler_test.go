//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/xmh0511/byte-aes/internal/domain/blobs"
	"github.com/xmh0511/byte-aes/internal/domain/crypto"
	"github.com/xmh0511/byte-aes/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBlobID = "b6a4f4a2-4e4e-4d3c-9a57-7a1f6a1b7c2e"

type blobHandlerMocks struct {
	seal     *MockBlobSealService
	open     *MockBlobOpenService
	metadata *MockBlobMetadataService
}

func setupBlobHandler(t *testing.T) (BlobHandler, blobHandlerMocks) {
	t.Helper()

	mocks := blobHandlerMocks{
		seal:     new(MockBlobSealService),
		open:     new(MockBlobOpenService),
		metadata: new(MockBlobMetadataService),
	}
	handler := NewBlobHandler(mocks.seal, mocks.open, mocks.metadata, testutil.SetupTestLogger(t))
	return handler, mocks
}

func testBlobMeta(name string) *blobs.BlobMeta {
	return &blobs.BlobMeta{
		ID:              testBlobID,
		DateTimeCreated: time.Now().UTC(),
		Name:            name,
		PlainSize:       27,
		CipherSize:      32,
		Algorithm:       crypto.AlgorithmAES256,
		Mode:            crypto.ModeIndependentBlock,
	}
}

func newTestContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, w
}

func TestBlobHandler_Upload_Success(t *testing.T) {
	handler, mocks := setupBlobHandler(t)

	fileContent := []byte("This is a test file content")
	mocks.seal.On("Seal", mock.Anything, "testfile.txt", fileContent).
		Return(testBlobMeta("testfile.txt"), nil)

	body, contentType := testutil.CreateMultipartBody(t, map[string][]byte{"testfile.txt": fileContent})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/blobs", body)
	c.Request.Header.Set("Content-Type", contentType)

	handler.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), testBlobID)
	mocks.seal.AssertExpectations(t)
}

func TestBlobHandler_Upload_InvalidData_Error(t *testing.T) {
	handler, _ := setupBlobHandler(t)

	c, w := newTestContext(http.MethodPost, "/blobs")

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid form data")
}

func TestBlobHandler_Upload_NoFiles_Error(t *testing.T) {
	handler, _ := setupBlobHandler(t)

	body, contentType := testutil.CreateMultipartBody(t, map[string][]byte{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/blobs", body)
	c.Request.Header.Set("Content-Type", contentType)

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no files provided")
}

func TestBlobHandler_Upload_SealError(t *testing.T) {
	handler, mocks := setupBlobHandler(t)

	mocks.seal.On("Seal", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("disk full"))

	body, contentType := testutil.CreateMultipartBody(t, map[string][]byte{"a.txt": []byte("a")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/blobs", body)
	c.Request.Header.Set("Content-Type", contentType)

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "disk full")
}

func TestBlobHandler_ListMetadata_Success(t *testing.T) {
	handler, mocks := setupBlobHandler(t)

	mocks.metadata.On("List", mock.Anything, mock.MatchedBy(func(q *blobs.BlobMetaQuery) bool {
		return q.Name == "report" && q.Limit == 5 && q.SortOrder == "desc"
	})).Return([]*blobs.BlobMeta{testBlobMeta("report")}, nil)

	c, w := newTestContext(http.MethodGet, "/blobs?name=report&limit=5&sortOrder=desc")

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testBlobID)
	mocks.metadata.AssertExpectations(t)
}

func TestBlobHandler_ListMetadata_EmptyList(t *testing.T) {
	handler, mocks := setupBlobHandler(t)

	mocks.metadata.On("List", mock.Anything, mock.Anything).Return([]*blobs.BlobMeta{}, nil)

	c, w := newTestContext(http.MethodGet, "/blobs")

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestBlobHandler_ListMetadata_ValidationError(t *testing.T) {
	handler, _ := setupBlobHandler(t)

	tests := []string{
		"/blobs?sortOrder=sideways",
		"/blobs?limit=abc",
		"/blobs?offset=-",
	}

	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, target)

			handler.ListMetadata(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestBlobHandler_GetMetadataByID_Success(t *testing.T) {
	handler, mocks := setupBlobHandler(t)

	mocks.metadata.On("GetByID", mock.Anything, testBlobID).Return(testBlobMeta("file.txt"), nil)

	c, w := newTestContext(http.MethodGet, "/blobs/"+testBlobID)
	c.Params = gin.Params{{Key: "id", Value: testBlobID}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "file.txt")
}

func TestBlobHandler_GetMetadataByID_NotFound(t *testing.T) {
	handler, mocks := setupBlobHandler(t)

	mocks.metadata.On("GetByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("lookup: %w", blobs.ErrBlobNotFound))

	c, w := newTestContext(http.MethodGet, "/blobs/missing")
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlobHandler_DownloadByID_Success(t *testing.T) {
	handler, mocks := setupBlobHandler(t)

	mocks.metadata.On("GetByID", mock.Anything, testBlobID).Return(testBlobMeta("file.txt"), nil)
	mocks.open.On("Open", mock.Anything, testBlobID).Return([]byte("plain content"), nil)

	c, w := newTestContext(http.MethodGet, "/blobs/"+testBlobID+"/file")
	c.Params = gin.Params{{Key: "id", Value: testBlobID}}

	handler.DownloadByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "plain content", w.Body.String())
	assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "file.txt")
}

func TestBlobHandler_DownloadByID_EmptyPlaintext(t *testing.T) {
	handler, mocks := setupBlobHandler(t)

	mocks.metadata.On("GetByID", mock.Anything, testBlobID).Return(testBlobMeta("empty.txt"), nil)
	mocks.open.On("Open", mock.Anything, testBlobID).Return([]byte{}, nil)

	c, w := newTestContext(http.MethodGet, "/blobs/"+testBlobID+"/file")
	c.Params = gin.Params{{Key: "id", Value: testBlobID}}

	handler.DownloadByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestBlobHandler_DownloadByID_DecryptError(t *testing.T) {
	handler, mocks := setupBlobHandler(t)

	mocks.metadata.On("GetByID", mock.Anything, testBlobID).Return(testBlobMeta("file.txt"), nil)
	mocks.open.On("Open", mock.Anything, testBlobID).
		Return(nil, fmt.Errorf("failed to decrypt blob: %w", &crypto.PaddingError{Value: 200}))

	c, w := newTestContext(http.MethodGet, "/blobs/"+testBlobID+"/file")
	c.Params = gin.Params{{Key: "id", Value: testBlobID}}

	handler.DownloadByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "200")
}

func TestBlobHandler_DownloadByID_NotFound(t *testing.T) {
	handler, mocks := setupBlobHandler(t)

	mocks.metadata.On("GetByID", mock.Anything, "missing").Return(nil, blobs.ErrBlobNotFound)

	c, w := newTestContext(http.MethodGet, "/blobs/missing/file")
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.DownloadByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mocks.open.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
}

func TestBlobHandler_DeleteByID_Success(t *testing.T) {
	handler, mocks := setupBlobHandler(t)

	mocks.metadata.On("DeleteByID", mock.Anything, testBlobID).Return(nil)

	c, w := newTestContext(http.MethodDelete, "/blobs/"+testBlobID)
	c.Params = gin.Params{{Key: "id", Value: testBlobID}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mocks.metadata.AssertExpectations(t)
}

func TestBlobHandler_DeleteByID_Error(t *testing.T) {
	handler, mocks := setupBlobHandler(t)

	mocks.metadata.On("DeleteByID", mock.Anything, "missing").Return(blobs.ErrBlobNotFound)

	c, w := newTestContext(http.MethodDelete, "/blobs/missing")
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.DeleteByID(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "blob not found")
}
