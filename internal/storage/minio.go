package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/tags"

	"recordsapi/internal/config"
)

const visibilityTag = "visibility"

// minioStorage implements the Storage interface using an S3-compatible
// backend (MinIO, AWS S3, DigitalOcean Spaces, etc.). It is safe for
// concurrent use by multiple goroutines.
//
// Per-object visibility is recorded as an object tag; the bucket policy is
// expected to grant anonymous read only to objects tagged visibility=public.
type minioStorage struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinIO creates a new S3-compatible storage client backed by MinIO.
// It validates connectivity and ensures the bucket exists (creates it if missing).
func NewMinIO(cfg config.MinIOConfig) (Storage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ms := &minioStorage{
		client:     cli,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicURL, "/"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure bucket exists.
	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return ms, nil
}

// Put uploads an object using streaming I/O only (no local disk). The
// requested visibility is applied as an object tag at write time.
func (m *minioStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	v := opt.Visibility
	if v == "" {
		v = Private
	}
	putOpts := minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
		UserTags:     map[string]string{visibilityTag: string(v)},
	}
	info, err := m.client.PutObject(ctx, m.bucket, key, r, opt.Size, putOpts)
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{
		Key:          key,
		Size:         info.Size,
		ETag:         info.ETag,
		ContentType:  opt.ContentType,
		LastModified: time.Now(), // MinIO PutObjectInfo doesn't return LastModified
		Metadata:     opt.Metadata,
	}, nil
}

// Get downloads an object content as a ReadCloser along with basic info.
func (m *minioStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	// Fetch stat to populate info; avoid reading content into memory.
	st, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, ObjectInfo{}, err
	}
	info := ObjectInfo{
		Key:          key,
		Size:         st.Size,
		ETag:         st.ETag,
		ContentType:  st.ContentType,
		LastModified: st.LastModified,
		Metadata:     st.UserMetadata,
	}
	return obj, info, nil
}

// Exists reports object presence. A missing key is (false, nil), never an error.
func (m *minioStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SetVisibility rewrites the object's visibility tag.
func (m *minioStorage) SetVisibility(ctx context.Context, key string, v Visibility) error {
	t, err := tags.NewTags(map[string]string{visibilityTag: string(v)}, true)
	if err != nil {
		return fmt.Errorf("build tags: %w", err)
	}
	return m.client.PutObjectTagging(ctx, m.bucket, key, t, minio.PutObjectTaggingOptions{})
}

// GetVisibility reads the visibility tag back. Untagged objects are private.
func (m *minioStorage) GetVisibility(ctx context.Context, key string) (Visibility, error) {
	t, err := m.client.GetObjectTagging(ctx, m.bucket, key, minio.GetObjectTaggingOptions{})
	if err != nil {
		return "", err
	}
	if t.ToMap()[visibilityTag] == string(Public) {
		return Public, nil
	}
	return Private, nil
}

// URL resolves the object's public URL, or "" if the object does not exist.
// A configured public base (CDN or reverse proxy) takes precedence over the
// raw endpoint.
func (m *minioStorage) URL(ctx context.Context, key string) (string, error) {
	exists, err := m.Exists(ctx, key)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", nil
	}
	if m.publicBase != "" {
		return m.publicBase + "/" + m.bucket + "/" + key, nil
	}
	u := *m.client.EndpointURL()
	u.Path = "/" + m.bucket + "/" + key
	return u.String(), nil
}

// PresignGet generates a pre-signed URL for GET with the specified expiry.
func (m *minioStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Delete removes an object by key.
func (m *minioStorage) Delete(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == 404
}
