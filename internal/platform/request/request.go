// Copyright (c) 2026 Mustafa Zahid Official. All rights reserved.
// Author: Shahzada Shoaib

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.

Multipart convention: write endpoints receive a form with a "data" field
holding the JSON-encoded entity payload, plus any number of file fields whose
names are entity-specific media slot names ("mainImage", "gallery", ...).
*/
package requestutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/apperr"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/constants"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/validate"
)

// PayloadField is the multipart form field carrying the JSON entity payload.
const PayloadField = "data"

// File is one uploaded file read fully into memory.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Files groups uploaded files by their logical slot name.
type Files map[string][]File

// Slot returns the files uploaded under the given slot name (nil if none).
func (f Files) Slot(name string) []File {
	return f[name]
}

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID/Slug) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
ParseForm parses a multipart write request: the "data" JSON field is decoded
into payload, and every non-empty file part is read into memory, grouped by
slot name.

Empty file parts (zero bytes) are skipped — browsers submit them for
untouched file inputs, and an untouched input must not count as an upload.

Returns:
  - Files: Uploaded files keyed by slot name (never nil)
  - error: validate.ErrInvalidJSON on a missing/undecodable payload,
    VALIDATION_ERROR on oversized files
*/
func ParseForm(request *http.Request, payload interface{}) (Files, error) {
	if err := request.ParseMultipartForm(constants.MaxMultipartMemory); err != nil {
		return nil, validate.ErrInvalidJSON
	}

	raw := request.FormValue(PayloadField)
	if raw == "" {
		return nil, validate.ErrInvalidJSON
	}
	if err := json.Unmarshal([]byte(raw), payload); err != nil {
		return nil, validate.ErrInvalidJSON
	}

	files := Files{}
	if request.MultipartForm == nil {
		return files, nil
	}

	for slot, headers := range request.MultipartForm.File {
		for _, header := range headers {
			if header.Size == 0 {
				continue
			}
			if header.Size > constants.MaxUploadBytes {
				return nil, apperr.ValidationError(
					fmt.Sprintf("File %q exceeds the %d MB upload limit", header.Filename, constants.MaxUploadBytes>>20),
				)
			}

			part, err := header.Open()
			if err != nil {
				return nil, apperr.Internal(err)
			}
			data, err := io.ReadAll(part)
			_ = part.Close()
			if err != nil {
				return nil, apperr.Internal(err)
			}

			files[slot] = append(files[slot], File{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	return files, nil
}
