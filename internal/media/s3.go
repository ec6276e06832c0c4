// Copyright (c) 2026 Mustafa Zahid Official. All rights reserved.
// Author: Shahzada Shoaib

package media

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/apperr"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/config"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/constants"
	requestutil "github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/request"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/pkg/uuidv7"
)

// S3Store implements [Store] against any S3-compatible object store
// (Cloudflare R2, MinIO, AWS S3).
//
// Objects live under a fixed key namespace ([constants.MediaUploadPrefix]);
// public URLs are rooted at the configured public base URL, so the object key
// is always recoverable from a stored URL's path.
type S3Store struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	logger        *slog.Logger
}

// NewS3Store builds the object-store client from configuration and verifies
// nothing — bucket reachability problems surface on first use, keeping
// startup independent of the media host.
func NewS3Store(cfg *config.Config, logger *slog.Logger) (*S3Store, error) {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.S3Endpoint, "https://"), "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("media: failed to build object store client: %w", err)
	}

	return &S3Store{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload implements [Store]. The object key embeds a fresh UUIDv7 so uploads
// never collide and never overwrite each other.
func (store *S3Store) Upload(ctx context.Context, file requestutil.File) (string, error) {
	key := constants.MediaUploadPrefix + uuidv7.New() + strings.ToLower(path.Ext(file.Name))

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := store.client.PutObject(ctx, store.bucket, key,
		bytes.NewReader(file.Data), int64(len(file.Data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", apperr.Upload(err)
	}

	publicURL := store.publicBaseURL + "/" + key
	store.logger.Debug("media_uploaded",
		slog.String("key", key),
		slog.Int("bytes", len(file.Data)),
	)

	return publicURL, nil
}

// UploadMany implements [Store]. The fan-out is bounded by the batch size
// (galleries are small); errgroup cancels the remaining uploads as soon as
// one fails.
func (store *S3Store) UploadMany(ctx context.Context, files []requestutil.File) ([]string, error) {
	urls := make([]string, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			uploadedURL, err := store.Upload(groupCtx, file)
			if err != nil {
				return err
			}
			urls[i] = uploadedURL
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

// DeleteByURL implements [Store]. Failures are logged and swallowed.
func (store *S3Store) DeleteByURL(ctx context.Context, rawURL string) bool {
	key := KeyFromURL(store.publicBaseURL, rawURL)
	if key == "" {
		store.logger.Warn("media_delete_skipped_unrecognized_url", slog.String("url", rawURL))
		return false
	}

	if err := store.client.RemoveObject(ctx, store.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		store.logger.Warn("media_delete_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return false
	}

	return true
}

// DeleteMany implements [Store].
func (store *S3Store) DeleteMany(ctx context.Context, urls []string) bool {
	var deleted atomic.Int64
	var wg sync.WaitGroup

	for _, rawURL := range urls {
		rawURL := rawURL
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.DeleteByURL(ctx, rawURL) {
				deleted.Add(1)
			}
		}()
	}
	wg.Wait()

	return deleted.Load() > 0
}

// KeyFromURL derives the object key from a stored public media URL.
//
// It returns "" when the URL is not rooted at the given public base URL or
// its path lies outside the upload namespace — foreign URLs (placeholder
// images, hand-entered links) must never translate into delete calls.
func KeyFromURL(publicBaseURL, rawURL string) string {
	base, err := url.Parse(strings.TrimRight(publicBaseURL, "/"))
	if err != nil {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host != base.Host {
		return ""
	}

	key := strings.TrimPrefix(strings.TrimPrefix(parsed.Path, base.Path), "/")
	if !strings.HasPrefix(key, constants.MediaUploadPrefix) {
		return ""
	}
	return key
}
