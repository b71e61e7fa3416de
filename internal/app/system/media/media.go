// Package media is the gateway to the hosted image service.
//
// The rest of the system never sees the provider's native response shape:
// uploads come back as an Asset (delivered URL plus an opaque deletion
// handle) and removals take only the handle. Handlers hold the Store
// interface so tests can substitute a recorder fake.
package media

import (
	"context"
	"regexp"
	"strings"

	"github.com/buildright/buildright-api/internal/app/system/apperr"
)

// Asset is the gateway's view of a stored image.
type Asset struct {
	URL    string `json:"url"`
	Handle string `json:"handle"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Bytes  int    `json:"bytes"`
}

// Options tune a single upload.
type Options struct {
	Folder    string // remote folder, e.g. "buildright/projects"
	Transform string // provider-side transformation preset, optional
}

// Store is the media gateway interface.
type Store interface {
	// Store uploads a base64 data-URI image and returns the stored asset.
	// Fails with a BadRequest error if the input is not a recognized
	// base64 image string.
	Store(ctx context.Context, base64Image string, opts Options) (Asset, error)

	// StoreMany uploads images concurrently. If any single upload fails
	// the whole call fails; there is no partial-success contract, so
	// callers must not have partially persisted state beforehand.
	StoreMany(ctx context.Context, base64Images []string, opts Options) ([]Asset, error)

	// Remove deletes by handle. Idempotent: "deleted" and "not found"
	// both count as success.
	Remove(ctx context.Context, handle string) error

	// StoreFromURL fetches an externally hosted image and re-stores it.
	StoreFromURL(ctx context.Context, url string, opts Options) (Asset, error)
}

// base64ImageRe matches the data-URI prefix of the accepted image types.
var base64ImageRe = regexp.MustCompile(`^data:image/(jpeg|jpg|png|gif|webp|svg\+xml);base64,`)

// ValidBase64Image reports whether s carries a recognized image MIME prefix
// with base64 payload.
func ValidBase64Image(s string) bool {
	return base64ImageRe.MatchString(s)
}

// ErrNotBase64Image is returned by implementations for malformed input.
var ErrNotBase64Image = apperr.New(apperr.BadRequest,
	"image must be a base64 data URI of type jpeg, jpg, png, gif, webp or svg+xml")

// DeriveHandleFromURL recovers a deletion handle from a delivered URL.
//
// This is a best-effort parse of the provider's URL structure
// (.../<cloud>/image/upload/[v123/]folder/name.ext -> "folder/name") for
// legacy documents that only persisted a URL. It returns false whenever the
// URL does not match the expected shape; callers must treat that as a
// normal outcome, not an error.
func DeriveHandleFromURL(url string) (string, bool) {
	const marker = "/upload/"
	i := strings.Index(url, marker)
	if i < 0 {
		return "", false
	}
	rest := strings.Trim(url[i+len(marker):], "/")
	if rest == "" {
		return "", false
	}

	segs := strings.Split(rest, "/")
	// Skip the version segment (v<digits>) if present.
	if len(segs) > 1 && isVersionSeg(segs[0]) {
		segs = segs[1:]
	}
	handle := strings.Join(segs, "/")

	// Strip the delivery extension; the handle is extensionless.
	if dot := strings.LastIndex(handle, "."); dot > strings.LastIndex(handle, "/") && dot >= 0 {
		handle = handle[:dot]
	}
	if handle == "" {
		return "", false
	}
	return handle, true
}

// HandleOrDerive prefers the stored deletion handle and falls back to
// deriving one from the delivered URL for legacy documents.
func HandleOrDerive(handle, url string) (string, bool) {
	if handle != "" {
		return handle, true
	}
	return DeriveHandleFromURL(url)
}

func isVersionSeg(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
