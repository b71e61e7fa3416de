// Package apperr defines the error taxonomy for the API and the single
// translator that maps any failure onto the response envelope.
//
// Stores and services return either a tagged *Error (when the failure is
// semantic: not found, conflict, bad input) or a raw driver error. Handlers
// funnel everything through Writer.Write, which owns the mapping from
// native error shapes (Mongo duplicate keys, malformed ObjectIDs, JWT
// verification failures, validator field errors) to HTTP statuses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/buildright/buildright-api/internal/app/system/jsonutil"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Kind classifies an error into the API taxonomy.
type Kind int

const (
	BadRequest Kind = iota + 1 // missing/invalid input
	Unauthorized               // missing/invalid/expired token, wrong password
	Forbidden                  // role check failure (defined, unused by current routes)
	NotFound                   // no matching document, or not public-visible
	Conflict                   // singleton already exists
	ExternalService            // media gateway failure
	Internal                   // anything else
)

// Error is a taxonomy-tagged error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional underlying cause, logged server-side only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a tagged error with a client-visible message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf creates a tagged error with a formatted client-visible message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error. The message is client-visible; the cause
// is only logged.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// IsKind reports whether err is a tagged error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func (k Kind) status() int {
	switch k {
	case BadRequest:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Writer translates errors into envelope responses.
type Writer struct {
	logger *zap.Logger
	dev    bool
}

// NewWriter creates a Writer. In dev mode the underlying error detail is
// appended to 500 responses; in any other mode clients only see a generic
// message.
func NewWriter(logger *zap.Logger, dev bool) *Writer {
	return &Writer{logger: logger, dev: dev}
}

// Write maps err to a status and writes the error envelope. It logs every
// server-side failure with full detail regardless of what the client sees.
func (wr *Writer) Write(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := wr.translate(err)

	if status >= http.StatusInternalServerError {
		wr.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	} else {
		wr.logger.Debug("request rejected",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}

	jsonutil.Fail(w, status, msg)
}

func (wr *Writer) translate(err error) (int, string) {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind.status(), tagged.Msg
	}

	// No matching document.
	if errors.Is(err, mongo.ErrNoDocuments) {
		return http.StatusNotFound, "resource not found"
	}

	// Malformed identifiers resolve to "not found" rather than leaking
	// driver internals for what is, to the client, just a bad lookup.
	if errors.Is(err, primitive.ErrInvalidHex) {
		return http.StatusNotFound, "resource not found"
	}

	// Unique-constraint violations (duplicate slug, duplicate email).
	if mongo.IsDuplicateKeyError(err) {
		return http.StatusBadRequest, "duplicate field value"
	}

	// DTO validation failures: concatenate the offending fields.
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}
		return http.StatusBadRequest, "missing or invalid fields: " + strings.Join(fields, ", ")
	}

	// Token failures surface one fixed message regardless of cause
	// (expired vs. malformed is logged, never told to the client).
	var jwtErr *jwt.ValidationError
	if errors.As(err, &jwtErr) {
		return http.StatusUnauthorized, "invalid or expired token"
	}

	msg := "server error"
	if wr.dev {
		msg = fmt.Sprintf("server error: %v", err)
	}
	return http.StatusInternalServerError, msg
}
