// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/buildright/buildright-api/internal/app/store/admins"
	"github.com/buildright/buildright-api/internal/app/store/blogs"
	"github.com/buildright/buildright-api/internal/app/store/faqs"
	"github.com/buildright/buildright-api/internal/app/store/leads"
	"github.com/buildright/buildright-api/internal/app/store/projects"
	"github.com/buildright/buildright-api/internal/app/store/ratelimit"
	"github.com/buildright/buildright-api/internal/app/store/services"
	"github.com/buildright/buildright-api/internal/app/store/testimonials"
	"github.com/buildright/buildright-api/internal/app/store/trustedby"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
EnsureAll is called at startup. Index creation per store is idempotent.
Errors are aggregated so every problem is visible and startup can fail
fast on any of them.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	ensures := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"admins", admins.New(db).EnsureIndexes},
		{"services", services.New(db).EnsureIndexes},
		{"projects", projects.New(db).EnsureIndexes},
		{"blogs", blogs.New(db).EnsureIndexes},
		{"faqs", faqs.New(db).EnsureIndexes},
		{"testimonials", testimonials.New(db).EnsureIndexes},
		{"trusted_by", trustedby.New(db).EnsureIndexes},
		{"leads", leads.New(db).EnsureIndexes},
		{"rate_limits", ratelimit.New(db, 0, time.Minute).EnsureIndexes},
	}

	var problems []string
	for _, e := range ensures {
		if err := e.fn(ctx); err != nil {
			problems = append(problems, e.name+": "+err.Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
