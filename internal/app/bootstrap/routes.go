// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	aboutpagefeature "github.com/buildright/buildright-api/internal/app/features/aboutpage"
	authfeature "github.com/buildright/buildright-api/internal/app/features/auth"
	blogsfeature "github.com/buildright/buildright-api/internal/app/features/blogs"
	contactsfeature "github.com/buildright/buildright-api/internal/app/features/contacts"
	faqsfeature "github.com/buildright/buildright-api/internal/app/features/faqs"
	healthfeature "github.com/buildright/buildright-api/internal/app/features/health"
	homepagefeature "github.com/buildright/buildright-api/internal/app/features/homepage"
	projectsfeature "github.com/buildright/buildright-api/internal/app/features/projects"
	quotesfeature "github.com/buildright/buildright-api/internal/app/features/quotes"
	servicesfeature "github.com/buildright/buildright-api/internal/app/features/services"
	testimonialsfeature "github.com/buildright/buildright-api/internal/app/features/testimonials"
	trustedbyfeature "github.com/buildright/buildright-api/internal/app/features/trustedby"
	aboutpagestore "github.com/buildright/buildright-api/internal/app/store/aboutpage"
	"github.com/buildright/buildright-api/internal/app/store/admins"
	blogstore "github.com/buildright/buildright-api/internal/app/store/blogs"
	faqstore "github.com/buildright/buildright-api/internal/app/store/faqs"
	homepagestore "github.com/buildright/buildright-api/internal/app/store/homepage"
	leadstore "github.com/buildright/buildright-api/internal/app/store/leads"
	projectstore "github.com/buildright/buildright-api/internal/app/store/projects"
	"github.com/buildright/buildright-api/internal/app/store/ratelimit"
	servicestore "github.com/buildright/buildright-api/internal/app/store/services"
	testimonialstore "github.com/buildright/buildright-api/internal/app/store/testimonials"
	trustedbystore "github.com/buildright/buildright-api/internal/app/store/trustedby"
	"github.com/buildright/buildright-api/internal/app/system/apicors"
	"github.com/buildright/buildright-api/internal/app/system/apperr"
	"github.com/buildright/buildright-api/internal/app/system/auth"
	"github.com/buildright/buildright-api/internal/app/system/jsonutil"
	"github.com/buildright/buildright-api/internal/app/system/network"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// maxRequestBody bounds request bodies at 25 MB, enough for a main image
// plus a handful of base64 gallery entries in one create call.
const maxRequestBody = 25 << 20

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. All routes live under /api and speak
// JSON. Admin mutations are gated with Bearer token auth; public reads and
// lead submission are open (behind per-IP rate limiting).
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase
	dev := coreCfg.Env == "dev"

	// Error writer translates store and validation errors into the JSON
	// error envelope. Dev mode appends the underlying error detail.
	errs := apperr.NewWriter(logger, dev)

	// Token auth service and the middleware gate for admin routes.
	adminStore := admins.New(db)
	authSvc := auth.NewService(adminStore, appCfg.JWTSecret, appCfg.JWTExpiry, logger)
	gate := auth.RequireAdmin(authSvc, logger)

	r := chi.NewRouter()

	// ── Global middleware ──

	// Recover from handler panics with a JSON 500 instead of a dropped
	// connection.
	r.Use(recoverer(logger))

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// Cap request bodies. Base64-encoded gallery uploads are the largest
	// legitimate payloads.
	r.Use(chimw.RequestSize(maxRequestBody))

	// CORS: must be early in the chain to handle preflight requests.
	// Locked to the configured frontend origin when one is set.
	if appCfg.ClientURL != "" {
		r.Use(apicors.MiddlewareWithOrigins(appCfg.ClientURL))
	} else {
		r.Use(apicors.Middleware())
	}

	// Structured request logging.
	r.Use(requestLogger(logger))

	// Per-IP rate limiting backed by MongoDB so limits hold across
	// replicas. Fails open when the database is unreachable.
	if appCfg.RateLimitEnabled && appCfg.RateLimitMax > 0 {
		limiter := ratelimit.New(db, appCfg.RateLimitMax, appCfg.RateLimitWindow)
		r.Use(rateLimiter(limiter, logger))
	}

	// ── Routes ──

	healthHandler := healthfeature.NewHandler(deps.MongoClient, coreCfg.Env, logger)
	healthfeature.MountRootEndpoints(r, healthHandler)

	r.Route("/api", func(api chi.Router) {
		api.Mount("/health", healthfeature.Routes(healthHandler))

		api.Mount("/auth", authfeature.Routes(
			authfeature.NewHandler(authSvc, errs, logger), gate))

		api.Mount("/homepage", homepagefeature.Routes(
			homepagefeature.NewHandler(homepagestore.New(db), errs, logger), gate))

		api.Mount("/about", aboutpagefeature.Routes(
			aboutpagefeature.NewHandler(aboutpagestore.New(db), errs, logger), gate))

		api.Mount("/services", servicesfeature.Routes(
			servicesfeature.NewHandler(servicestore.New(db), deps.Media, errs, logger), gate))

		api.Mount("/projects", projectsfeature.Routes(
			projectsfeature.NewHandler(projectstore.New(db), deps.Media, errs, logger), gate))

		api.Mount("/blogs", blogsfeature.Routes(
			blogsfeature.NewHandler(blogstore.New(db), deps.Media, errs, logger), gate))

		api.Mount("/faqs", faqsfeature.Routes(
			faqsfeature.NewHandler(faqstore.New(db), errs, logger), gate))

		api.Mount("/testimonials", testimonialsfeature.Routes(
			testimonialsfeature.NewHandler(testimonialstore.New(db), errs, logger), gate))

		api.Mount("/trusted-by", trustedbyfeature.Routes(
			trustedbyfeature.NewHandler(trustedbystore.New(db), deps.Media, errs, logger), gate))

		leadsStore := leadstore.New(db)
		api.Mount("/contacts", contactsfeature.Routes(
			contactsfeature.NewHandler(leadsStore, errs, logger), gate))
		api.Mount("/quotes", quotesfeature.Routes(
			quotesfeature.NewHandler(leadsStore, errs, logger), gate))
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		jsonutil.Fail(w, http.StatusNotFound, "route not found")
	})

	return r, nil
}

// recoverer converts handler panics into a JSON 500 response.
func recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("panic in handler",
						zap.Any("panic", rec),
						zap.String("method", req.Method),
						zap.String("path", req.URL.Path),
					)
					jsonutil.Fail(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, req)
		})
	}
}

// requestLogger logs one line per request with method, path, status, and
// duration.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, req.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, req)
			logger.Debug("request",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("ip", network.GetClientIP(req)),
			)
		})
	}
}

// rateLimiter rejects requests from clients that exceed the per-IP
// fixed-window limit. The limiter itself fails open on store errors.
func rateLimiter(limiter *ratelimit.Store, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ip := network.GetClientIP(req)
			allowed, _ := limiter.Allow(req.Context(), ip)
			if !allowed {
				logger.Warn("rate limit exceeded", zap.String("ip", ip))
				jsonutil.Fail(w, http.StatusTooManyRequests, "too many requests, please try again later")
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
