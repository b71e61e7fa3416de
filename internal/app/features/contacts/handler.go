// internal/app/features/contacts/handler.go
package contacts

import (
	"net/http"

	"github.com/buildright/buildright-api/internal/app/store/leads"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/app/system/jsonutil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves the contact-lead endpoints.
type Handler struct {
	store    *leads.Store
	errs     *apperr.Writer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new contacts Handler.
func NewHandler(store *leads.Store, errs *apperr.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		errs:     errs,
		validate: validator.New(),
		logger:   logger,
	}
}

// Create stores a public contact form submission.
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

	doc, err := h.store.CreateContact(r.Context(), leads.ContactInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		ServiceType: req.ServiceType,
		Message:     req.Message,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	h.logger.Info("contact lead received", zap.String("email", doc.Email))
	jsonutil.CreatedMessage(w, "Thank you for contacting us. We will get back to you soon.",
		CreatedPayload{ID: doc.ID.Hex(), Name: doc.Name, Email: doc.Email})
}

// List returns contact leads newest first, optionally filtered by ?status=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListContacts(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKList(w, docs, len(docs))
}

// Get resolves a contact lead by id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.GetContact(r.Context(), chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// UpdateStatus moves a contact lead through its status enum.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	var req StatusRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	doc, err := h.store.UpdateContactStatus(r.Context(), id, req.Status)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// Delete removes a contact lead.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	if err := h.store.DeleteContact(r.Context(), id); err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OKMessage(w, "Contact deleted successfully", nil)
}
