package projects

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildright/buildright-api/internal/app/store/projects"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/app/system/media"
	"github.com/buildright/buildright-api/internal/domain/models"
	"github.com/buildright/buildright-api/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const testImage = "data:image/png;base64,iVBORw0KGgo="

func passGate(next http.Handler) http.Handler { return next }

func newTestRouter(t *testing.T, db *mongo.Database) (http.Handler, *projects.Store, *media.Fake) {
	t.Helper()
	logger := zap.NewNop()
	store := projects.New(db)
	fake := media.NewFake()
	h := NewHandler(store, fake, apperr.NewWriter(logger, false), logger)
	return Routes(h, passGate), store, fake
}

func validCreate() CreateRequest {
	return CreateRequest{
		Title:       "Riverside Offices",
		Category:    "commercial",
		Location:    "Portland",
		Year:        "2024",
		Client:      "Riverside LLC",
		Description: "Office complex",
		Image:       testImage,
		Gallery:     []string{testImage, testImage, testImage},
	}
}

func TestRoutes_Create_UploadsMainAndGallery(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, _, fake := newTestRouter(t, db)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", validCreate())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("POST / status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	if len(fake.Stored) != 4 {
		t.Errorf("uploads = %d, want 4 (main + 3 gallery)", len(fake.Stored))
	}

	var doc models.Project
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &doc)
	if doc.Image.URL == "" || doc.Image.Handle == "" {
		t.Error("main image missing URL or handle")
	}
	if len(doc.Gallery) != 3 {
		t.Fatalf("gallery = %d entries, want 3", len(doc.Gallery))
	}
	for i, img := range doc.Gallery {
		if img.Handle == "" {
			t.Errorf("gallery[%d] missing handle", i)
		}
	}
}

func TestRoutes_Create_UploadFailurePersistsNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, store, fake := newTestRouter(t, db)
	fake.FailStore = true

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", validCreate())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("POST / with failing uploads status = %d, want 500", rec.Code)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	docs, err := store.ListAdmin(ctx)
	if err != nil {
		t.Fatalf("ListAdmin() error = %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("documents = %d after failed upload, want 0", len(docs))
	}
}

func TestRoutes_Delete_RemovesAllAssetsBestEffort(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, store, fake := newTestRouter(t, db)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", validCreate())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST / status = %d, want 201", rec.Code)
	}
	var doc models.Project
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &doc)

	// One gallery removal fails; the others and the document deletion
	// must proceed regardless.
	fake.FailRemove[doc.Gallery[1].Handle] = true

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/"+doc.ID.Hex(), nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if fake.RemovedCount() != 4 {
		t.Errorf("removals issued = %d, want 4 (main + 3 gallery)", fake.RemovedCount())
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if _, err := store.GetAdmin(ctx, doc.ID.Hex()); err != mongo.ErrNoDocuments {
		t.Errorf("GetAdmin(deleted) error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestRoutes_Update_ReplacesImageAndCleansUp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, _, fake := newTestRouter(t, db)

	create := validCreate()
	create.Gallery = nil
	req := testutil.NewJSONRequest(t, http.MethodPost, "/", create)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST / status = %d, want 201", rec.Code)
	}
	var doc models.Project
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &doc)
	oldHandle := doc.Image.Handle

	img := testImage
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, testutil.NewJSONRequest(t, http.MethodPut, "/"+doc.ID.Hex(),
		UpdateRequest{Image: &img}))

	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	var updated models.Project
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &updated)
	if updated.Image.Handle == oldHandle {
		t.Error("PUT image handle unchanged, want new upload")
	}

	// The replaced asset was removed after the document write.
	found := false
	for _, h := range fake.Removed {
		if h == oldHandle {
			found = true
		}
	}
	if !found {
		t.Errorf("old handle %q not removed (removed: %v)", oldHandle, fake.Removed)
	}
}

func TestRoutes_PublicVisibility(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router, store, _ := newTestRouter(t, db)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", validCreate())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var doc models.Project
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &doc)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if _, err := store.ToggleActive(ctx, doc.ID); err != nil {
		t.Fatalf("ToggleActive() error = %v", err)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+doc.ID.Hex(), nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET hidden project status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/all", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /admin/all status = %d, want 200", rec.Code)
	}
	env := testutil.DecodeEnvelope(t, rec)
	if env.Count == nil || *env.Count != 1 {
		t.Errorf("GET /admin/all count = %v, want 1", env.Count)
	}
}
