package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
)

// GCSConfig describes where uploads land in Cloud Storage.
type GCSConfig struct {
	Bucket string
	Prefix string // ex: "uploads/"
	// Public grants allUsers read so the site can link the object directly.
	Public bool
	// BaseURL replaces https://storage.googleapis.com/<bucket> in returned
	// links, for buckets fronted by a CDN.
	BaseURL string
}

type GCSUploader struct {
	client *gcs.Client
	cfg    GCSConfig
}

func NewGCSUploader(ctx context.Context, cfg GCSConfig) (*GCSUploader, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("gcs: bucket is required")
	}
	c, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSUploader{client: c, cfg: cfg}, nil
}

func (u *GCSUploader) Close() error { return u.client.Close() }

func (u *GCSUploader) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	key := u.cfg.Prefix + objectName
	obj := u.client.Bucket(u.cfg.Bucket).Object(key)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	w.ContentDisposition = contentDisposition(contentType, objectName)
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s: %w", key, err)
	}

	if u.cfg.Public {
		if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
			return "", fmt.Errorf("gcs acl %s: %w", key, err)
		}
	}
	return objectURL(u.cfg, key), nil
}

// objectURL returns the https link for public objects and a gs:// URI
// otherwise.
func objectURL(cfg GCSConfig, key string) string {
	if !cfg.Public {
		return fmt.Sprintf("gs://%s/%s", cfg.Bucket, key)
	}
	if cfg.BaseURL != "" {
		return strings.TrimRight(cfg.BaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", cfg.Bucket, key)
}

// contentDisposition shows images inline; resumes and other files download
// under their stored name.
func contentDisposition(contentType, objectName string) string {
	if strings.HasPrefix(contentType, "image/") {
		return "inline"
	}
	return fmt.Sprintf("attachment; filename=%q", objectName)
}
