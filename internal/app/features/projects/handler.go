// internal/app/features/projects/handler.go
package projects

import (
	"net/http"

	"github.com/buildright/buildright-api/internal/app/store/projects"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/app/system/jsonutil"
	"github.com/buildright/buildright-api/internal/app/system/media"
	"github.com/buildright/buildright-api/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const mediaFolder = "buildright/projects"

// Handler serves the projects endpoints.
type Handler struct {
	store    *projects.Store
	media    media.Store
	errs     *apperr.Writer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new projects Handler.
func NewHandler(store *projects.Store, m media.Store, errs *apperr.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		media:    m,
		errs:     errs,
		validate: validator.New(),
		logger:   logger,
	}
}

// resolveGallery turns mixed gallery entries into stored images. Base64
// entries are uploaded concurrently (all-or-nothing); URL entries are kept
// with a best-effort derived handle.
func (h *Handler) resolveGallery(r *http.Request, entries []string) ([]models.Image, error) {
	gallery := make([]models.Image, len(entries))
	var uploads []string
	var uploadIdx []int

	for i, entry := range entries {
		if media.ValidBase64Image(entry) {
			uploads = append(uploads, entry)
			uploadIdx = append(uploadIdx, i)
			continue
		}
		img := models.Image{URL: entry}
		if handle, ok := media.DeriveHandleFromURL(entry); ok {
			img.Handle = handle
		}
		gallery[i] = img
	}

	if len(uploads) > 0 {
		assets, err := h.media.StoreMany(r.Context(), uploads, media.Options{Folder: mediaFolder})
		if err != nil {
			return nil, err
		}
		for j, asset := range assets {
			gallery[uploadIdx[j]] = models.Image{URL: asset.URL, Handle: asset.Handle}
		}
	}
	return gallery, nil
}

// removeAssets issues one best-effort removal per handle. Failures are
// logged and never block the caller.
func (h *Handler) removeAssets(r *http.Request, images []models.Image) {
	for _, img := range images {
		handle, ok := media.HandleOrDerive(img.Handle, img.URL)
		if !ok {
			continue
		}
		if err := h.media.Remove(r.Context(), handle); err != nil {
			h.logger.Warn("failed to remove project image",
				zap.String("handle", handle), zap.Error(err))
		}
	}
}

// ListPublic returns active projects, optionally filtered by ?category=.
func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListPublic(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKList(w, docs, len(docs))
}

// ListByCategory returns active projects in one category.
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListPublic(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKList(w, docs, len(docs))
}

// Categories returns the distinct categories across active projects.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.Categories(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKList(w, categories, len(categories))
}

// ListAdmin returns every project.
func (h *Handler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListAdmin(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKList(w, docs, len(docs))
}

// GetPublic resolves an active project by id.
func (h *Handler) GetPublic(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.GetPublic(r.Context(), chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// Create uploads the main image and gallery, then persists the project.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	asset, err := h.media.Store(r.Context(), req.Image, media.Options{Folder: mediaFolder})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	gallery, err := h.resolveGallery(r, req.Gallery)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	doc, err := h.store.Create(r.Context(), projects.CreateInput{
		Title:       req.Title,
		Category:    req.Category,
		Location:    req.Location,
		Year:        req.Year,
		Client:      req.Client,
		Description: req.Description,
		Image:       models.Image{URL: asset.URL, Handle: asset.Handle},
		Gallery:     gallery,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.Created(w, doc)
}

// Update applies a partial update. New images are uploaded before the
// document write; replaced assets are removed only afterwards.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	var req UpdateRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := projects.UpdateInput{
		Title:       req.Title,
		Category:    req.Category,
		Location:    req.Location,
		Year:        req.Year,
		Client:      req.Client,
		Description: req.Description,
		Active:      req.IsActive,
	}

	var replaced []models.Image
	if req.Image != nil || req.Gallery != nil {
		existing, err := h.store.GetAdmin(r.Context(), id.Hex())
		if err != nil {
			h.errs.Write(w, r, err)
			return
		}

		if req.Image != nil {
			asset, err := h.media.Store(r.Context(), *req.Image, media.Options{Folder: mediaFolder})
			if err != nil {
				h.errs.Write(w, r, err)
				return
			}
			input.Image = &models.Image{URL: asset.URL, Handle: asset.Handle}
			replaced = append(replaced, existing.Image)
		}

		if req.Gallery != nil {
			gallery, err := h.resolveGallery(r, *req.Gallery)
			if err != nil {
				h.errs.Write(w, r, err)
				return
			}
			input.Gallery = &gallery

			kept := make(map[string]struct{}, len(gallery))
			for _, img := range gallery {
				kept[img.URL] = struct{}{}
			}
			for _, img := range existing.Gallery {
				if _, ok := kept[img.URL]; !ok {
					replaced = append(replaced, img)
				}
			}
		}
	}

	doc, err := h.store.Update(r.Context(), id, input)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	h.removeAssets(r, replaced)
	jsonutil.OK(w, doc)
}

// Delete removes every media asset best-effort (main image plus each
// gallery entry), then the document. A failing removal never blocks the
// document deletion.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	existing, err := h.store.GetAdmin(r.Context(), id.Hex())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	h.removeAssets(r, append([]models.Image{existing.Image}, existing.Gallery...))

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKMessage(w, "Project deleted successfully", nil)
}

// Toggle flips visibility.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	doc, err := h.store.ToggleActive(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}
