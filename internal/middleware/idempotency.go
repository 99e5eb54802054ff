package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/baharkarakas/credit-ledger/internal/api/httpx"
	"github.com/baharkarakas/credit-ledger/internal/cache"
)

// reservations outlive any sane request; a crashed request frees its key after this.
const inFlightTTL = 30 * time.Second

type IdempotencyStore interface {
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
	Get(ctx context.Context, key string) (*cache.CachedResponse, error)
	Save(ctx context.Context, key string, resp cache.CachedResponse, ttl time.Duration) error
}

type bodyRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *bodyRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for a repeated Idempotency-Key.
// The key is reserved before the handler runs, so a concurrent duplicate gets
// 409 instead of executing twice. Keys are scoped to the authenticated owner,
// so it must run after Auth. Store errors fail open; 5xx responses release the
// key so clients can retry.
func Idempotency(store IdempotencyStore, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if store == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("Idempotency-Key")
			uid, ok := UserID(r.Context())
			if key == "" || !ok || len(key) > 128 {
				next.ServeHTTP(w, r)
				return
			}
			scoped := uid + ":" + r.Method + ":" + r.URL.Path + ":" + key
			ctx := r.Context()
			reqID := RequestIDFrom(ctx)

			reserved, err := store.Reserve(ctx, scoped, inFlightTTL)
			if err != nil {
				slog.Warn("idempotency reserve failed", "err", err, "request_id", reqID)
				next.ServeHTTP(w, r)
				return
			}
			if !reserved {
				cached, err := store.Get(ctx, scoped)
				if err != nil {
					slog.Warn("idempotency lookup failed", "err", err, "request_id", reqID)
				}
				if cached == nil || cached.InFlight {
					w.Header().Set("Retry-After", strconv.Itoa(1))
					httpx.WriteError(w, http.StatusConflict, "idempotency_in_flight", "a request with this Idempotency-Key is still in progress", nil)
					return
				}
				if cached.ContentType != "" {
					w.Header().Set("Content-Type", cached.ContentType)
				}
				w.Header().Set("X-Idempotency-Hit", "true")
				w.WriteHeader(cached.StatusCode)
				_, _ = w.Write(cached.Body)
				return
			}

			rec := &bodyRecorder{ResponseWriter: w, status: http.StatusOK}
			defer func() {
				// a panicking handler must not pin the key for inFlightTTL
				if p := recover(); p != nil {
					_ = store.Release(context.WithoutCancel(ctx), scoped)
					panic(p)
				}
			}()
			next.ServeHTTP(rec, r)

			saveCtx := context.WithoutCancel(ctx)
			if rec.status >= 500 {
				if err := store.Release(saveCtx, scoped); err != nil {
					slog.Warn("idempotency release failed", "err", err, "request_id", reqID)
				}
				return
			}
			err = store.Save(saveCtx, scoped, cache.CachedResponse{
				StatusCode:  rec.status,
				ContentType: rec.Header().Get("Content-Type"),
				Body:        rec.body.Bytes(),
			}, ttl)
			if err != nil {
				slog.Warn("idempotency save failed", "err", err, "request_id", reqID)
			}
		})
	}
}
