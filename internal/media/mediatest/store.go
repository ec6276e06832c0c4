// Copyright (c) 2026 Mustafa Zahid Official. All rights reserved.
// Author: Shahzada Shoaib

// Package mediatest provides a spy implementation of the media store for
// service-layer tests.
package mediatest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/apperr"
	requestutil "github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/request"
)

// SpyStore records every call and serves deterministic fake URLs. Deletion
// batches are captured so tests can assert exactly which URLs a document
// delete scheduled for cleanup.
type SpyStore struct {
	mu sync.Mutex

	// FailUploads makes every upload fail, for abort-the-write tests.
	FailUploads bool

	uploadCount int
	Uploaded    []string   // URLs handed out, in order
	Deleted     [][]string // one entry per DeleteMany call
}

// Upload returns "https://media.test/uploads/<n>-<filename>".
func (spy *SpyStore) Upload(ctx context.Context, file requestutil.File) (string, error) {
	spy.mu.Lock()
	defer spy.mu.Unlock()

	if spy.FailUploads {
		return "", apperr.Upload(errors.New("mediatest: upload failed"))
	}

	spy.uploadCount++
	url := fmt.Sprintf("https://media.test/uploads/%d-%s", spy.uploadCount, file.Name)
	spy.Uploaded = append(spy.Uploaded, url)
	return url, nil
}

// UploadMany is sequential in the spy; ordering assertions stay deterministic.
func (spy *SpyStore) UploadMany(ctx context.Context, files []requestutil.File) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := spy.Upload(ctx, file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// DeleteByURL always succeeds.
func (spy *SpyStore) DeleteByURL(ctx context.Context, url string) bool {
	spy.mu.Lock()
	defer spy.mu.Unlock()
	spy.Deleted = append(spy.Deleted, []string{url})
	return true
}

// DeleteMany records the batch and succeeds.
func (spy *SpyStore) DeleteMany(ctx context.Context, urls []string) bool {
	spy.mu.Lock()
	defer spy.mu.Unlock()
	spy.Deleted = append(spy.Deleted, append([]string(nil), urls...))
	return true
}

// DeletedURLs flattens all recorded deletion batches.
func (spy *SpyStore) DeletedURLs() []string {
	spy.mu.Lock()
	defer spy.mu.Unlock()

	var all []string
	for _, batch := range spy.Deleted {
		all = append(all, batch...)
	}
	return all
}
