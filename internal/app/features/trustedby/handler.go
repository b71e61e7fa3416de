// internal/app/features/trustedby/handler.go
package trustedby

import (
	"net/http"

	"github.com/buildright/buildright-api/internal/app/store/content"
	"github.com/buildright/buildright-api/internal/app/store/trustedby"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/app/system/jsonutil"
	"github.com/buildright/buildright-api/internal/app/system/media"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const mediaFolder = "buildright/trusted-by"

// Handler serves the trusted-by endpoints. Logos persist only the
// delivered URL; deletion handles are derived from the URL best-effort.
type Handler struct {
	store    *trustedby.Store
	media    media.Store
	errs     *apperr.Writer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new trusted-by Handler.
func NewHandler(store *trustedby.Store, m media.Store, errs *apperr.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		media:    m,
		errs:     errs,
		validate: validator.New(),
		logger:   logger,
	}
}

// resolveLogo uploads a base64 logo and returns its delivered URL; a plain
// URL passes through unchanged.
func (h *Handler) resolveLogo(r *http.Request, logo string) (string, error) {
	if !media.ValidBase64Image(logo) {
		return logo, nil
	}
	asset, err := h.media.Store(r.Context(), logo, media.Options{Folder: mediaFolder})
	if err != nil {
		return "", err
	}
	return asset.URL, nil
}

// removeLogo removes the asset behind url best-effort. URLs that do not
// match the gateway's structure are skipped silently.
func (h *Handler) removeLogo(r *http.Request, url string) {
	handle, ok := media.DeriveHandleFromURL(url)
	if !ok {
		return
	}
	if err := h.media.Remove(r.Context(), handle); err != nil {
		h.logger.Warn("failed to remove logo asset",
			zap.String("handle", handle), zap.Error(err))
	}
}

// ListPublic returns active entries in display order.
func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListPublic(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKList(w, docs, len(docs))
}

// ListAdmin returns every entry.
func (h *Handler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListAdmin(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKList(w, docs, len(docs))
}

// Create creates a new entry, uploading the logo when it arrives as base64.
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

	logo, err := h.resolveLogo(r, req.Logo)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	doc, err := h.store.Create(r.Context(), trustedby.CreateInput{
		Name:  req.Name,
		Logo:  logo,
		Order: req.Order,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.Created(w, doc)
}

// Update applies a partial update. A replaced logo's old asset is removed
// after the document write succeeds.
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

	input := trustedby.UpdateInput{
		Name:   req.Name,
		Order:  req.Order,
		Active: req.IsActive,
	}

	var oldLogo string
	if req.Logo != nil {
		existing, err := h.store.GetAdmin(r.Context(), id.Hex())
		if err != nil {
			h.errs.Write(w, r, err)
			return
		}
		oldLogo = existing.Logo

		logo, err := h.resolveLogo(r, *req.Logo)
		if err != nil {
			h.errs.Write(w, r, err)
			return
		}
		input.Logo = &logo
	}

	doc, err := h.store.Update(r.Context(), id, input)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	if oldLogo != "" && input.Logo != nil && oldLogo != *input.Logo {
		h.removeLogo(r, oldLogo)
	}
	jsonutil.OK(w, doc)
}

// Delete removes the logo asset best-effort, then the entry.
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
	h.removeLogo(r, existing.Logo)

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKMessage(w, "Entry deleted successfully", nil)
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

// Reorder applies a batch of order assignments.
func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	var pairs []content.OrderPair
	if err := jsonutil.Decode(r, &pairs); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(pairs) == 0 {
		jsonutil.Fail(w, http.StatusBadRequest, "no order pairs supplied")
		return
	}

	failed, firstErr := h.store.Reorder(r.Context(), pairs)
	if failed > 0 {
		h.logger.Warn("trusted-by reorder partially failed",
			zap.Int("failed", failed), zap.Int("total", len(pairs)), zap.Error(firstErr))
		jsonutil.Fail(w, http.StatusInternalServerError, "some order updates could not be applied")
		return
	}
	jsonutil.OKMessage(w, "Order updated successfully", nil)
}
