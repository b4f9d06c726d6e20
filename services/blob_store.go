package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// FileUpload is a file received from a multipart form.
type FileUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// BlobStore stores uploaded files and hands back a public download URL.
type BlobStore interface {
	Upload(ctx context.Context, folder string, file FileUpload) (string, error)
}

// objectName builds "{folder}/{unix-millis}_{filename}".
func objectName(folder, filename string, now time.Time) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" {
		name = "file"
	}
	return fmt.Sprintf("%s/%d_%s", strings.Trim(folder, "/"), now.UnixMilli(), name)
}

type FirebaseBlobStore struct {
	Bucket *gcs.BucketHandle
}

func NewFirebaseBlobStore(bucket *gcs.BucketHandle) *FirebaseBlobStore {
	return &FirebaseBlobStore{Bucket: bucket}
}

func (b *FirebaseBlobStore) Upload(ctx context.Context, folder string, file FileUpload) (string, error) {
	name := objectName(folder, file.Filename, time.Now())
	token := uuid.NewString()

	w := b.Bucket.Object(name).NewWriter(ctx)
	w.ContentType = file.ContentType
	// Firebase serves the object through this token without signed URLs.
	w.Metadata = map[string]string{"firebaseStorageDownloadTokens": token}

	if _, err := io.Copy(w, file.Body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}

	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		b.Bucket.BucketName(), url.PathEscape(name), token), nil
}

type storedBlob struct {
	ContentType string
	Data        []byte
}

// MemoryBlobStore keeps uploads in memory and returns memory:// URLs.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string]storedBlob
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string]storedBlob)}
}

func (b *MemoryBlobStore) Upload(_ context.Context, folder string, file FileUpload) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file.Body); err != nil {
		return "", err
	}
	name := objectName(folder, file.Filename, time.Now())

	b.mu.Lock()
	b.blobs[name] = storedBlob{ContentType: file.ContentType, Data: buf.Bytes()}
	b.mu.Unlock()

	return "memory://" + name, nil
}

// Object returns a stored upload by the URL Upload returned.
func (b *MemoryBlobStore) Object(rawURL string) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	blob, ok := b.blobs[strings.TrimPrefix(rawURL, "memory://")]
	return blob.Data, ok
}

func (b *MemoryBlobStore) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.blobs)
}
