// internal/app/features/homepage/handler.go
package homepage

import (
	"net/http"

	"github.com/buildright/buildright-api/internal/app/store/homepage"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/app/system/jsonutil"
	"github.com/buildright/buildright-api/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler serves the homepage singleton endpoints.
type Handler struct {
	store    *homepage.Store
	errs     *apperr.Writer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new homepage Handler.
func NewHandler(store *homepage.Store, errs *apperr.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		errs:     errs,
		validate: validator.New(),
		logger:   logger,
	}
}

// Get returns the homepage content, materializing the default on first
// access.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.GetOrCreateDefault(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// Create stores an explicit homepage document. Fails with Conflict when
// one already exists.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.store.Create(r.Context(), models.Homepage{
		Hero:       req.Hero,
		About:      req.About,
		ContactCTA: req.ContactCTA,
		Services:   req.Services,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.Created(w, doc)
}

// PatchHero merges the request into the hero section.
func (h *Handler) PatchHero(w http.ResponseWriter, r *http.Request) {
	var req HeroRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.store.PatchHero(r.Context(), homepage.HeroPatch{
		Heading:    req.Heading,
		Subheading: req.Subheading,
		CTAText:    req.CTAText,
		CTALink:    req.CTALink,
		Image:      req.Image,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// PatchAbout merges the request into the about section.
func (h *Handler) PatchAbout(w http.ResponseWriter, r *http.Request) {
	var req AboutRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.store.PatchAbout(r.Context(), homepage.AboutPatch{
		Heading: req.Heading,
		Body:    req.Body,
		Image:   req.Image,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// PatchContactCTA merges the request into the contact-CTA section.
func (h *Handler) PatchContactCTA(w http.ResponseWriter, r *http.Request) {
	var req ContactCTARequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.store.PatchContactCTA(r.Context(), homepage.ContactCTAPatch{
		Heading:    req.Heading,
		Subheading: req.Subheading,
		ButtonText: req.ButtonText,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// UpsertService adds or replaces an embedded service teaser.
func (h *Handler) UpsertService(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	doc, err := h.store.UpsertService(r.Context(), models.HomepageService{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// DeleteService removes an embedded service teaser by id.
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.DeleteService(r.Context(), chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}
