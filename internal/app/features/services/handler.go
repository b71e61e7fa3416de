// internal/app/features/services/handler.go
package services

import (
	"net/http"

	"github.com/buildright/buildright-api/internal/app/store/content"
	"github.com/buildright/buildright-api/internal/app/store/services"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/app/system/jsonutil"
	"github.com/buildright/buildright-api/internal/app/system/media"
	"github.com/buildright/buildright-api/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const mediaFolder = "buildright/services"

// Handler serves the services endpoints.
type Handler struct {
	store    *services.Store
	media    media.Store
	errs     *apperr.Writer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new services Handler.
func NewHandler(store *services.Store, m media.Store, errs *apperr.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		media:    m,
		errs:     errs,
		validate: validator.New(),
		logger:   logger,
	}
}

func subServices(inputs []SubServiceInput) []models.SubService {
	if inputs == nil {
		return nil
	}
	out := make([]models.SubService, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, models.SubService{Title: in.Title, BlogID: in.BlogID})
	}
	return out
}

// ListPublic returns active services in display order.
func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListPublic(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKList(w, docs, len(docs))
}

// ListAdmin returns every service.
func (h *Handler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListAdmin(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKList(w, docs, len(docs))
}

// GetPublic resolves an active service by id or slug.
func (h *Handler) GetPublic(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.GetPublic(r.Context(), chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// Create uploads the image, then persists the service. If the document
// write fails after the upload, the uploaded asset is orphaned; there is
// no compensating cleanup.
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

	doc, err := h.store.Create(r.Context(), services.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       models.Image{URL: asset.URL, Handle: asset.Handle},
		Order:       req.Order,
		SubServices: subServices(req.SubServices),
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

	input := services.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
		Active:      req.IsActive,
	}
	if req.SubServices != nil {
		subs := subServices(*req.SubServices)
		input.SubServices = &subs
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
			h.logger.Warn("failed to remove replaced service image",
				zap.String("handle", oldHandle), zap.Error(err))
		}
	}
	jsonutil.OK(w, doc)
}

// Delete removes the media asset best-effort, then the document. A media
// removal failure never blocks the document deletion.
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
			h.logger.Warn("failed to remove service image",
				zap.String("handle", handle), zap.Error(err))
		}
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKMessage(w, "Service deleted successfully", nil)
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

// Reorder applies a batch of order assignments. The batch is not atomic;
// the response reports how many pairs failed.
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
		h.logger.Warn("service reorder partially failed",
			zap.Int("failed", failed), zap.Int("total", len(pairs)), zap.Error(firstErr))
		jsonutil.Fail(w, http.StatusInternalServerError, "some order updates could not be applied")
		return
	}
	jsonutil.OKMessage(w, "Order updated successfully", nil)
}
