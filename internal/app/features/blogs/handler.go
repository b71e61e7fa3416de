// internal/app/features/blogs/handler.go
package blogs

import (
	"net/http"
	"strconv"

	"github.com/buildright/buildright-api/internal/app/store/blogs"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/app/system/jsonutil"
	"github.com/buildright/buildright-api/internal/app/system/media"
	"github.com/buildright/buildright-api/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	mediaFolder  = "buildright/blogs"
	relatedLimit = 3
)

// Handler serves the blog endpoints.
type Handler struct {
	store    *blogs.Store
	media    media.Store
	errs     *apperr.Writer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new blogs Handler.
func NewHandler(store *blogs.Store, m media.Store, errs *apperr.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		media:    m,
		errs:     errs,
		validate: validator.New(),
		logger:   logger,
	}
}

func queryInt64(r *http.Request, key string, fallback int64) int64 {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// ListPublic returns one page of published posts, newest first. Accepts
// ?category=, ?page= and ?limit=.
func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	limit := queryInt64(r, "limit", 10)
	page := queryInt64(r, "page", 1)

	docs, total, err := h.store.ListPublic(r.Context(), r.URL.Query().Get("category"), limit, page)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	jsonutil.OKPage(w, docs, total, page, totalPages)
}

// ListByCategory returns one page of published posts in a category.
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	limit := queryInt64(r, "limit", 10)
	page := queryInt64(r, "page", 1)

	docs, total, err := h.store.ListPublic(r.Context(), chi.URLParam(r, "category"), limit, page)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	jsonutil.OKPage(w, docs, total, page, totalPages)
}

// ListAdmin returns every post, published or not.
func (h *Handler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListAdmin(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKList(w, docs, len(docs))
}

// GetPublic resolves a published post by id or slug. A successful fetch
// increments the view counter by exactly one.
func (h *Handler) GetPublic(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.GetPublic(r.Context(), chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// Related returns up to three other published posts in the same category.
func (h *Handler) Related(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.GetAdmin(r.Context(), chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	related, err := h.store.Related(r.Context(), doc.ID, doc.Category, relatedLimit)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKList(w, related, len(related))
}

// Create uploads the image, then persists the post.
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

	doc, err := h.store.Create(r.Context(), blogs.CreateInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Author:   req.Author,
		Image:    models.Image{URL: asset.URL, Handle: asset.Handle},
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.Created(w, doc)
}

// Update applies a partial update. A new image is uploaded first; the old
// asset is removed only after the document write succeeds.
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

	input := blogs.UpdateInput{
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		Author:    req.Author,
		Published: req.Published,
	}

	var oldHandle string
	if req.Image != nil {
		existing, err := h.store.GetAdmin(r.Context(), id.Hex())
		if err != nil {
			h.errs.Write(w, r, err)
			return
		}
		if handle, ok := media.HandleOrDerive(existing.Image.Handle, existing.Image.URL); ok {
			oldHandle = handle
		}

		asset, err := h.media.Store(r.Context(), *req.Image, media.Options{Folder: mediaFolder})
		if err != nil {
			h.errs.Write(w, r, err)
			return
		}
		input.Image = &models.Image{URL: asset.URL, Handle: asset.Handle}
	}

	doc, err := h.store.Update(r.Context(), id, input)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	if oldHandle != "" {
		if err := h.media.Remove(r.Context(), oldHandle); err != nil {
			h.logger.Warn("failed to remove replaced blog image",
				zap.String("handle", oldHandle), zap.Error(err))
		}
	}
	jsonutil.OK(w, doc)
}

// Delete removes the media asset best-effort, then the document.
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

	if handle, ok := media.HandleOrDerive(existing.Image.Handle, existing.Image.URL); ok {
		if err := h.media.Remove(r.Context(), handle); err != nil {
			h.logger.Warn("failed to remove blog image",
				zap.String("handle", handle), zap.Error(err))
		}
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKMessage(w, "Blog post deleted successfully", nil)
}

// Toggle flips publication state.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	doc, err := h.store.TogglePublished(r.Context(), id)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}
