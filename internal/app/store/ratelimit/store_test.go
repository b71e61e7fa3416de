package ratelimit_test

import (
	"testing"
	"time"

	"github.com/buildright/buildright-api/internal/app/store/ratelimit"
	"github.com/buildright/buildright-api/internal/testutil"
)

func TestStore_Allow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := ratelimit.New(db, 3, time.Minute)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 3; i++ {
		allowed, remaining := store.Allow(ctx, "10.0.0.1")
		if !allowed {
			t.Fatalf("Allow() call %d blocked, want allowed", i+1)
		}
		if remaining != 3-i-1 {
			t.Errorf("Allow() call %d remaining = %d, want %d", i+1, remaining, 3-i-1)
		}
	}

	allowed, remaining := store.Allow(ctx, "10.0.0.1")
	if allowed {
		t.Error("Allow() over limit, want blocked")
	}
	if remaining != 0 {
		t.Errorf("Allow() over limit remaining = %d, want 0", remaining)
	}

	// Other keys are unaffected.
	if allowed, _ := store.Allow(ctx, "10.0.0.2"); !allowed {
		t.Error("Allow() for a different key blocked, want allowed")
	}
}

func TestStore_Allow_WindowResets(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := ratelimit.New(db, 1, 100*time.Millisecond)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if allowed, _ := store.Allow(ctx, "10.0.0.9"); !allowed {
		t.Fatal("Allow() first call blocked")
	}
	if allowed, _ := store.Allow(ctx, "10.0.0.9"); allowed {
		t.Fatal("Allow() second call in window allowed, want blocked")
	}

	time.Sleep(150 * time.Millisecond)

	if allowed, _ := store.Allow(ctx, "10.0.0.9"); !allowed {
		t.Error("Allow() after window elapsed blocked, want allowed")
	}
}

func TestStore_Reset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := ratelimit.New(db, 1, time.Minute)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	store.Allow(ctx, "10.0.0.5")
	if allowed, _ := store.Allow(ctx, "10.0.0.5"); allowed {
		t.Fatal("Allow() second call allowed, want blocked")
	}

	if err := store.Reset(ctx, "10.0.0.5"); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if allowed, _ := store.Allow(ctx, "10.0.0.5"); !allowed {
		t.Error("Allow() after Reset blocked, want allowed")
	}
}
