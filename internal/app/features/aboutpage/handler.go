// internal/app/features/aboutpage/handler.go
package aboutpage

import (
	"net/http"
	"strconv"

	"github.com/buildright/buildright-api/internal/app/store/aboutpage"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/app/system/jsonutil"
	"github.com/buildright/buildright-api/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler serves the about-page singleton endpoints.
type Handler struct {
	store    *aboutpage.Store
	errs     *apperr.Writer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new about-page Handler.
func NewHandler(store *aboutpage.Store, errs *apperr.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		errs:     errs,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handler) statIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid stat index")
		return 0, false
	}
	return index, true
}

// Get returns the about content, materializing the default on first access.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.GetOrCreateDefault(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// Create stores an explicit about document. Fails with Conflict when one
// already exists.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.store.Create(r.Context(), models.About{
		Story:      req.Story,
		Leadership: req.Leadership,
		Team:       req.Team,
		Values:     req.Values,
		Stats:      req.Stats,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.Created(w, doc)
}

// PatchStory merges the request into the story section.
func (h *Handler) PatchStory(w http.ResponseWriter, r *http.Request) {
	var req StoryRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.store.PatchStory(r.Context(), aboutpage.StoryPatch{
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

// PatchLeadership merges the request into the leadership section.
func (h *Handler) PatchLeadership(w http.ResponseWriter, r *http.Request) {
	var req LeadershipRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.store.PatchLeadership(r.Context(), aboutpage.LeadershipPatch{
		Heading:    req.Heading,
		Subheading: req.Subheading,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// UpsertTeamMember adds or replaces an embedded team member.
func (h *Handler) UpsertTeamMember(w http.ResponseWriter, r *http.Request) {
	var req TeamMemberRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	doc, err := h.store.UpsertTeamMember(r.Context(), models.TeamMember{
		ID:       req.ID,
		Name:     req.Name,
		Position: req.Position,
		Photo:    req.Photo,
		Bio:      req.Bio,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// DeleteTeamMember removes an embedded team member by id.
func (h *Handler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.DeleteTeamMember(r.Context(), chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// UpsertValue adds or replaces an embedded company value.
func (h *Handler) UpsertValue(w http.ResponseWriter, r *http.Request) {
	var req ValueRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	doc, err := h.store.UpsertValue(r.Context(), models.CompanyValue{
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

// DeleteValue removes an embedded company value by id.
func (h *Handler) DeleteValue(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.DeleteValue(r.Context(), chi.URLParam(r, "identifier"))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// AddStat appends a stat.
func (h *Handler) AddStat(w http.ResponseWriter, r *http.Request) {
	var req StatRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	doc, err := h.store.AddStat(r.Context(), models.Stat{Label: req.Label, Value: req.Value})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// UpdateStat replaces the stat at the given index.
func (h *Handler) UpdateStat(w http.ResponseWriter, r *http.Request) {
	index, ok := h.statIndex(w, r)
	if !ok {
		return
	}

	var req StatRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	doc, err := h.store.UpdateStat(r.Context(), index, models.Stat{Label: req.Label, Value: req.Value})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}

// DeleteStat removes the stat at the given index.
func (h *Handler) DeleteStat(w http.ResponseWriter, r *http.Request) {
	index, ok := h.statIndex(w, r)
	if !ok {
		return
	}

	doc, err := h.store.DeleteStat(r.Context(), index)
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}
	jsonutil.OK(w, doc)
}
