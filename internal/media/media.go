// Copyright (c) 2026 Mustafa Zahid Official. All rights reserved.
// Author: Shahzada Shoaib

/*
Package media is the adapter between content documents and the external
media host (an S3-compatible object store).

Contract highlights:

  - Upload is fallible and must complete before any document write that
    references the resulting URL (write-after-upload ordering).
  - UploadMany is all-or-nothing: one failed file fails the whole batch, so
    a document never references a half-uploaded gallery.
  - Deletion is best-effort: DeleteByURL and DeleteMany report success as a
    bool and never raise, because media cleanup must not fail or roll back
    the document operation that triggered it.
*/
package media

import (
	"context"
	"strings"

	requestutil "github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/request"
)

// Store is the media host interface. The production implementation is
// [S3Store]; tests substitute a spy.
type Store interface {
	// Upload sends one file to the media host and returns its public URL.
	Upload(ctx context.Context, file requestutil.File) (string, error)

	// UploadMany uploads all files concurrently. If any single upload fails
	// the whole batch fails and no URLs are returned.
	UploadMany(ctx context.Context, files []requestutil.File) ([]string, error)

	// DeleteByURL removes the object a previously returned URL points at.
	// It returns false — never an error — when the object key cannot be
	// derived from the URL or the remote delete fails.
	DeleteByURL(ctx context.Context, url string) bool

	// DeleteMany fans out DeleteByURL across all URLs concurrently and
	// returns true if at least one deletion succeeded.
	DeleteMany(ctx context.Context, urls []string) bool
}

// Cleaner schedules best-effort deletion of media URLs after their owning
// document is gone. Implemented by [Janitor]; services depend on this
// interface so tests can capture what was scheduled.
type Cleaner interface {
	Enqueue(urls []string)
}

// # Slot Resolution

// ResolveSlot resolves a single media slot to exactly one value, in priority
// order: a newly uploaded file, then an explicitly submitted URL, then the
// previously stored value.
//
// On create, previous is empty, so an untouched slot resolves to the
// submitted URL or stays empty.
func ResolveSlot(ctx context.Context, store Store, uploads []requestutil.File, submitted, previous string) (string, error) {
	if len(uploads) > 0 {
		return store.Upload(ctx, uploads[0])
	}
	if strings.TrimSpace(submitted) != "" {
		return submitted, nil
	}
	return previous, nil
}

// ResolveGallery resolves a gallery slot. The base list is the submitted
// replacement list when the caller provided one (non-nil), otherwise the
// previously stored list; newly uploaded files are appended, never replacing
// the base.
func ResolveGallery(ctx context.Context, store Store, uploads []requestutil.File, submitted, previous []string) ([]string, error) {
	base := previous
	if submitted != nil {
		base = submitted
	}

	// Copy so callers never share backing arrays with stored documents.
	resolved := make([]string, 0, len(base)+len(uploads))
	for _, url := range base {
		if strings.TrimSpace(url) != "" {
			resolved = append(resolved, url)
		}
	}

	if len(uploads) > 0 {
		uploaded, err := store.UploadMany(ctx, uploads)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, uploaded...)
	}

	return resolved, nil
}
