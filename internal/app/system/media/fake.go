// internal/app/system/media/fake.go
package media

import (
	"context"
	"fmt"
	"sync"
)

// Fake is an in-memory Store for tests. It records every call and can be
// told to fail specific handles on Remove, which is how the best-effort
// cleanup contract is exercised.
type Fake struct {
	mu sync.Mutex

	seq        int
	Stored     []Asset
	Removed    []string
	FailRemove map[string]bool // handles whose Remove reports failure
	FailStore  bool            // when set, every upload fails
}

// NewFake creates an empty fake gateway.
func NewFake() *Fake {
	return &Fake{FailRemove: make(map[string]bool)}
}

var _ Store = (*Fake)(nil)

// Store records an upload and fabricates a stable URL/handle pair.
func (f *Fake) Store(ctx context.Context, base64Image string, opts Options) (Asset, error) {
	if !ValidBase64Image(base64Image) {
		return Asset{}, ErrNotBase64Image
	}
	return f.store(opts)
}

// StoreFromURL records an upload for an already-hosted image.
func (f *Fake) StoreFromURL(ctx context.Context, url string, opts Options) (Asset, error) {
	return f.store(opts)
}

func (f *Fake) store(opts Options) (Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailStore {
		return Asset{}, fmt.Errorf("fake media: upload failure")
	}
	f.seq++
	folder := opts.Folder
	if folder == "" {
		folder = "test"
	}
	asset := Asset{
		URL:    fmt.Sprintf("https://media.test/%s/img-%d.jpg", folder, f.seq),
		Handle: fmt.Sprintf("%s/img-%d", folder, f.seq),
		Width:  800,
		Height: 600,
		Format: "jpg",
		Bytes:  1024,
	}
	f.Stored = append(f.Stored, asset)
	return asset, nil
}

// StoreMany mirrors the all-or-nothing contract of the real gateway.
func (f *Fake) StoreMany(ctx context.Context, base64Images []string, opts Options) ([]Asset, error) {
	assets := make([]Asset, 0, len(base64Images))
	for _, img := range base64Images {
		asset, err := f.Store(ctx, img, opts)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

// Remove records the deletion attempt. Configured failures still get
// recorded so tests can assert the call was issued.
func (f *Fake) Remove(ctx context.Context, handle string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Removed = append(f.Removed, handle)
	if f.FailRemove[handle] {
		return fmt.Errorf("fake media: deletion failure for %s", handle)
	}
	return nil
}

// RemovedCount returns how many Remove calls were issued.
func (f *Fake) RemovedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Removed)
}
