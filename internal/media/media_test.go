// Copyright (c) 2026 Mustafa Zahid Official. All rights reserved.
// Author: Shahzada Shoaib

package media_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/media"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/media/mediatest"
	requestutil "github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/request"
)

/*
TestResolveSlot verifies the per-slot priority order: new upload, then
submitted URL, then previous value.
*/
func TestResolveSlot(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		uploads   []requestutil.File
		submitted string
		previous  string
		want      string
	}{
		{"upload_wins", []requestutil.File{{Name: "a.jpg"}}, "https://x/submitted.jpg", "https://x/old.jpg", "https://media.test/uploads/1-a.jpg"},
		{"submitted_beats_previous", nil, "https://x/submitted.jpg", "https://x/old.jpg", "https://x/submitted.jpg"},
		{"previous_kept", nil, "", "https://x/old.jpg", "https://x/old.jpg"},
		{"blank_submitted_falls_back", nil, "   ", "https://x/old.jpg", "https://x/old.jpg"},
		{"all_empty", nil, "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &mediatest.SpyStore{}
			got, err := media.ResolveSlot(ctx, spy, tt.uploads, tt.submitted, tt.previous)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestResolveSlot_UploadFailure verifies a failed upload propagates instead of
falling back — a document must never be written referencing a failed upload.
*/
func TestResolveSlot_UploadFailure(t *testing.T) {
	spy := &mediatest.SpyStore{FailUploads: true}

	_, err := media.ResolveSlot(context.Background(), spy,
		[]requestutil.File{{Name: "a.jpg"}}, "https://x/submitted.jpg", "https://x/old.jpg")

	require.Error(t, err)
}

/*
TestResolveGallery covers the append-only gallery contract.
*/
func TestResolveGallery(t *testing.T) {
	ctx := context.Background()
	previous := []string{"https://x/1.jpg", "https://x/2.jpg", "https://x/3.jpg"}

	t.Run("uploads_append_to_previous", func(t *testing.T) {
		spy := &mediatest.SpyStore{}
		uploads := []requestutil.File{{Name: "new1.jpg"}, {Name: "new2.jpg"}}

		got, err := media.ResolveGallery(ctx, spy, uploads, nil, previous)
		require.NoError(t, err)

		require.Len(t, got, 5)
		assert.Equal(t, previous, got[:3], "existing gallery must come first, untouched")
	})

	t.Run("submitted_list_replaces_base", func(t *testing.T) {
		spy := &mediatest.SpyStore{}
		replacement := []string{"https://x/only.jpg"}

		got, err := media.ResolveGallery(ctx, spy, nil, replacement, previous)
		require.NoError(t, err)
		assert.Equal(t, replacement, got)
	})

	t.Run("empty_submitted_list_clears_gallery", func(t *testing.T) {
		spy := &mediatest.SpyStore{}

		got, err := media.ResolveGallery(ctx, spy, nil, []string{}, previous)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("no_changes_keeps_previous", func(t *testing.T) {
		spy := &mediatest.SpyStore{}

		got, err := media.ResolveGallery(ctx, spy, nil, nil, previous)
		require.NoError(t, err)
		assert.Equal(t, previous, got)
	})

	t.Run("failed_batch_returns_nothing", func(t *testing.T) {
		spy := &mediatest.SpyStore{FailUploads: true}

		_, err := media.ResolveGallery(ctx, spy, []requestutil.File{{Name: "a.jpg"}}, nil, previous)
		require.Error(t, err)
	})
}

/*
TestKeyFromURL verifies object-key derivation from stored public URLs.
*/
func TestKeyFromURL(t *testing.T) {
	const base = "https://cdn.mustafazahid.com"

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"own_upload", "https://cdn.mustafazahid.com/uploads/0192-abc.jpg", "uploads/0192-abc.jpg"},
		{"foreign_host", "https://images.example.com/uploads/x.jpg", ""},
		{"outside_namespace", "https://cdn.mustafazahid.com/static/logo.png", ""},
		{"not_a_url", "::::", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, media.KeyFromURL(base, tt.url))
		})
	}
}
