package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildright/buildright-api/internal/app/store/admins"
	"github.com/buildright/buildright-api/internal/app/system/auth"
	"github.com/buildright/buildright-api/internal/app/system/jsonutil"
	"github.com/buildright/buildright-api/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin inserts an admin account with the given credentials and
// returns it. The password is stored bcrypt-hashed, matching production.
func SeedAdmin(t *testing.T, db *mongo.Database, email, password string) *models.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	ctx, cancel := TestContext()
	defer cancel()

	admin, err := admins.New(db).Create(ctx, admins.CreateInput{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Test Admin",
	})
	if err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	return admin
}

// WithAdmin adds an admin to the request context, bypassing the token
// gate for handler tests.
func WithAdmin(r *http.Request, admin *models.Admin) *http.Request {
	return r.WithContext(auth.WithAdmin(r.Context(), admin))
}

// NewJSONRequest builds a request with the body marshaled as JSON.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	if body == nil {
		return httptest.NewRequest(method, target, nil)
	}
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeEnvelope unmarshals a recorded response body into the standard
// response envelope.
func DecodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) jsonutil.Envelope {
	t.Helper()

	var env jsonutil.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response envelope: %v (body: %s)", err, rec.Body.String())
	}
	return env
}

// DecodeData re-marshals the envelope's data field into v. Handler
// responses carry typed documents in data; tests use this to get them
// back out of the generic envelope.
func DecodeData(t *testing.T, env jsonutil.Envelope, v any) {
	t.Helper()

	buf, err := json.Marshal(env.Data)
	if err != nil {
		t.Fatalf("failed to re-marshal envelope data: %v", err)
	}
	if err := json.Unmarshal(buf, v); err != nil {
		t.Fatalf("failed to decode envelope data: %v", err)
	}
}
