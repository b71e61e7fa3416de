package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/buildright/buildright-api/internal/app/store/admins"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	systemauth "github.com/buildright/buildright-api/internal/app/system/auth"
	"github.com/buildright/buildright-api/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, db *mongo.Database) *Handler {
	t.Helper()
	logger := zap.NewNop()
	svc := systemauth.NewService(admins.New(db), "test-secret", time.Hour, logger)
	return NewHandler(svc, apperr.NewWriter(logger, false), logger)
}

func TestHandler_Login(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	testutil.SeedAdmin(t, db, "admin@example.com", "correct-horse")

	req := testutil.NewJSONRequest(t, http.MethodPost, "/login", LoginRequest{
		Email:    "admin@example.com",
		Password: "correct-horse",
	})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Login() status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	env := testutil.DecodeEnvelope(t, rec)
	if !env.Success {
		t.Error("Login() success = false, want true")
	}
	var payload LoginPayload
	testutil.DecodeData(t, env, &payload)
	if payload.Token == "" {
		t.Error("Login() token empty, want issued token")
	}
	if payload.User.Email != "admin@example.com" {
		t.Errorf("Login() user email = %q, want admin@example.com", payload.User.Email)
	}
}

func TestHandler_Login_FailuresIndistinguishable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	testutil.SeedAdmin(t, db, "admin@example.com", "correct-horse")

	login := func(email, password string) *httptest.ResponseRecorder {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/login", LoginRequest{
			Email:    email,
			Password: password,
		})
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		return rec
	}

	unknownEmail := login("nobody@example.com", "correct-horse")
	wrongPassword := login("admin@example.com", "wrong-horse")

	if unknownEmail.Code != http.StatusUnauthorized {
		t.Errorf("Login(unknown email) status = %d, want 401", unknownEmail.Code)
	}
	if wrongPassword.Code != http.StatusUnauthorized {
		t.Errorf("Login(wrong password) status = %d, want 401", wrongPassword.Code)
	}

	// The two failure modes must be byte-identical so the endpoint cannot
	// be used to probe which emails exist.
	if unknownEmail.Body.String() != wrongPassword.Body.String() {
		t.Errorf("Login() failure bodies differ:\n  unknown email: %s\n  wrong password: %s",
			unknownEmail.Body.String(), wrongPassword.Body.String())
	}
}

func TestHandler_Me(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	admin := testutil.SeedAdmin(t, db, "admin@example.com", "pw")

	req := testutil.WithAdmin(httptest.NewRequest(http.MethodGet, "/me", nil), admin)
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Me() status = %d, want 200", rec.Code)
	}
	var payload UserPayload
	testutil.DecodeData(t, testutil.DecodeEnvelope(t, rec), &payload)
	if payload.ID != admin.ID.Hex() {
		t.Errorf("Me() id = %q, want %q", payload.ID, admin.ID.Hex())
	}

	// Without an identity in context the endpoint refuses.
	rec = httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Me() without identity status = %d, want 401", rec.Code)
	}
}

func TestHandler_ChangePassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(t, db)
	admin := testutil.SeedAdmin(t, db, "admin@example.com", "old-password")

	req := testutil.WithAdmin(testutil.NewJSONRequest(t, http.MethodPut, "/change-password", ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password-123",
	}), admin)
	rec := httptest.NewRecorder()
	h.ChangePassword(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("ChangePassword() status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	// Old password no longer works, new one does.
	login := testutil.NewJSONRequest(t, http.MethodPost, "/login", LoginRequest{
		Email:    "admin@example.com",
		Password: "old-password",
	})
	rec = httptest.NewRecorder()
	h.Login(rec, login)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Login(old password) status = %d, want 401", rec.Code)
	}

	login = testutil.NewJSONRequest(t, http.MethodPost, "/login", LoginRequest{
		Email:    "admin@example.com",
		Password: "new-password-123",
	})
	rec = httptest.NewRecorder()
	h.Login(rec, login)
	if rec.Code != http.StatusOK {
		t.Errorf("Login(new password) status = %d, want 200", rec.Code)
	}
}
