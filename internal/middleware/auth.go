package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/baharkarakas/credit-ledger/internal/api/httpx"
	"github.com/baharkarakas/credit-ledger/internal/auth"
)

type AuthMiddleware struct {
	TM      *auth.TokenManager
	Revoker auth.Revoker
	AppEnv  string
}

func NewAuthMiddleware(tm *auth.TokenManager, revoker auth.Revoker, appEnv string) *AuthMiddleware {
	if revoker == nil {
		revoker = auth.NopRevoker{}
	}
	return &AuthMiddleware{TM: tm, Revoker: revoker, AppEnv: appEnv}
}

// DEV: Bearer dev-<uuid> | everywhere: Bearer <JWT(access)>
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if len(ah) < 7 || !strings.EqualFold(ah[:7], "bearer ") {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token", nil)
			return
		}
		token := strings.TrimSpace(ah[7:])

		if m.AppEnv == "dev" && strings.HasPrefix(token, "dev-") {
			uid := strings.TrimPrefix(token, "dev-")
			if _, err := uuid.Parse(uid); err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid dev token", nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), UserCtx{UserID: uid})))
			return
		}

		claims, err := m.TM.ParseAccess(token)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid access token", nil)
			return
		}
		revoked, err := m.Revoker.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			slog.Error("revocation check", "err", err, "request_id", RequestIDFrom(r.Context()))
			httpx.WriteError(w, http.StatusServiceUnavailable, "session_unavailable", "could not verify session", nil)
			return
		}
		if revoked {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "session ended", nil)
			return
		}
		ctx := WithUser(r.Context(), UserCtx{UserID: claims.UserID(), Claims: claims})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
