// internal/app/system/media/cloudinary.go
package media

import (
	"context"
	"fmt"

	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Cloudinary implements Store against the Cloudinary upload API.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

// NewCloudinary creates the gateway from account credentials.
func NewCloudinary(cloudName, apiKey, apiSecret string, logger *zap.Logger) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Cloudinary{cld: cld, logger: logger}, nil
}

// Store uploads a base64 data-URI image.
func (g *Cloudinary) Store(ctx context.Context, base64Image string, opts Options) (Asset, error) {
	if !ValidBase64Image(base64Image) {
		return Asset{}, ErrNotBase64Image
	}
	return g.upload(ctx, base64Image, opts)
}

// StoreFromURL fetches and re-stores an externally hosted image. Cloudinary
// fetches the URL itself, so failure semantics match Store.
func (g *Cloudinary) StoreFromURL(ctx context.Context, url string, opts Options) (Asset, error) {
	return g.upload(ctx, url, opts)
}

func (g *Cloudinary) upload(ctx context.Context, source string, opts Options) (Asset, error) {
	res, err := g.cld.Upload.Upload(ctx, source, uploader.UploadParams{
		Folder:         opts.Folder,
		Transformation: opts.Transform,
	})
	if err != nil {
		return Asset{}, apperr.Wrap(apperr.ExternalService, "image upload failed", err)
	}
	if res.Error.Message != "" {
		return Asset{}, apperr.New(apperr.ExternalService, "image upload failed: "+res.Error.Message)
	}
	return Asset{
		URL:    res.SecureURL,
		Handle: res.PublicID,
		Width:  res.Width,
		Height: res.Height,
		Format: res.Format,
		Bytes:  res.Bytes,
	}, nil
}

// StoreMany uploads images concurrently; any single failure fails the call.
func (g *Cloudinary) StoreMany(ctx context.Context, base64Images []string, opts Options) ([]Asset, error) {
	for _, img := range base64Images {
		if !ValidBase64Image(img) {
			return nil, ErrNotBase64Image
		}
	}

	assets := make([]Asset, len(base64Images))
	eg, ctx := errgroup.WithContext(ctx)
	for i, img := range base64Images {
		eg.Go(func() error {
			asset, err := g.upload(ctx, img, opts)
			if err != nil {
				return err
			}
			assets[i] = asset
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return assets, nil
}

// Remove deletes an asset by handle. "not found" counts as success so
// retried cleanups stay idempotent.
func (g *Cloudinary) Remove(ctx context.Context, handle string) error {
	res, err := g.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: handle})
	if err != nil {
		return apperr.Wrap(apperr.ExternalService, "image deletion failed", err)
	}
	switch res.Result {
	case "ok", "not found":
		return nil
	}
	return apperr.Newf(apperr.ExternalService, "image deletion failed: %s", res.Result)
}
