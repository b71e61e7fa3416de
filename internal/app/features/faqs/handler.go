// internal/app/features/faqs/handler.go
package faqs

import (
	"net/http"

	"github.com/buildright/buildright-api/internal/app/store/content"
	"github.com/buildright/buildright-api/internal/app/store/faqs"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/app/system/jsonutil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves the FAQ endpoints.
type Handler struct {
	store    *faqs.Store
	errs     *apperr.Writer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new FAQ Handler.
func NewHandler(store *faqs.Store, errs *apperr.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		errs:     errs,
		validate: validator.New(),
		logger:   logger,
	}
}

// ListPublic returns active FAQs in display order.
func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListPublic(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKList(w, docs, len(docs))
}

// ListAdmin returns every FAQ.
func (h *Handler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListAdmin(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKList(w, docs, len(docs))
}

// Create creates a new FAQ.
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

	doc, err := h.store.Create(r.Context(), faqs.CreateInput{
		Question: req.Question,
		Answer:   req.Answer,
		Order:    req.Order,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.Created(w, doc)
}

// Update applies a partial update.
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

	doc, err := h.store.Update(r.Context(), id, faqs.UpdateInput{
		Question: req.Question,
		Answer:   req.Answer,
		Order:    req.Order,
		Active:   req.IsActive,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// Delete removes the FAQ.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKMessage(w, "FAQ deleted successfully", nil)
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
		h.logger.Warn("faq reorder partially failed",
			zap.Int("failed", failed), zap.Int("total", len(pairs)), zap.Error(firstErr))
		jsonutil.Fail(w, http.StatusInternalServerError, "some order updates could not be applied")
		return
	}
	jsonutil.OKMessage(w, "Order updated successfully", nil)
}
