// Copyright (c) 2026 Mustafa Zahid Official. All rights reserved.
// Author: Shahzada Shoaib

/*
Package identifier disambiguates the two externally addressable identities a
content document has: the store-assigned document id (dashboard write paths)
and the human-readable slug (public read paths).

The decision is made once, at the HTTP boundary, by format: a canonical UUID
string is an id, anything else is a slug. Persistence code never guesses.
*/
package identifier

import (
	"github.com/google/uuid"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/apperr"
)

// Identifier is a tagged id-or-slug lookup key.
type Identifier struct {
	// ID is the document id when the raw string was id-shaped.
	ID string
	// Slug is the lookup slug otherwise. Exactly one of ID/Slug is set.
	Slug string
}

// ByID reports whether the identifier resolves via the document id.
func (i Identifier) ByID() bool { return i.ID != "" }

// IsIDShaped reports whether raw is in canonical UUID form.
func IsIDShaped(raw string) bool {
	// uuid.Parse also accepts URN and braced forms; only the canonical
	// 36-character form is a valid document id here.
	if len(raw) != 36 {
		return false
	}
	_, err := uuid.Parse(raw)
	return err == nil
}

// Parse classifies raw as an id or a slug.
func Parse(raw string) Identifier {
	if IsIDShaped(raw) {
		return Identifier{ID: raw}
	}
	return Identifier{Slug: raw}
}

// RequireID returns raw when it is id-shaped, or an INVALID_IDENTIFIER error
// naming the resource. Used on paths where slug addressing is unsupported
// (update/delete, and get for entities without public slug lookup).
func RequireID(raw, resource string) (string, error) {
	if !IsIDShaped(raw) {
		return "", apperr.InvalidIdentifier(resource)
	}
	return raw, nil
}
