package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenManager(accessSecret, refreshSecret, issuer string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		issuer:        issuer,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// Claims carry the owner id in Subject and a unique token id in ID.
type Claims struct {
	Type string `json:"typ"` // "access" | "refresh"
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string { return c.Subject }

// Expiry returns when the token stops being valid.
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

type Pair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (tm *TokenManager) claims(userID, typ string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tm.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// GeneratePair signs a fresh access/refresh pair for userID.
func (tm *TokenManager) GeneratePair(userID string) (Pair, error) {
	now := tm.now()
	acc := tm.claims(userID, typeAccess, tm.accessTTL, now)
	ref := tm.claims(userID, typeRefresh, tm.refreshTTL, now)

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, acc).SignedString(tm.accessSecret)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, ref).SignedString(tm.refreshSecret)
	if err != nil {
		return Pair{}, err
	}
	return Pair{AccessToken: access, RefreshToken: refresh, ExpiresAt: acc.ExpiresAt.Time}, nil
}

func (tm *TokenManager) ParseAccess(tok string) (*Claims, error) {
	return tm.parse(tok, tm.accessSecret, typeAccess)
}

func (tm *TokenManager) ParseRefresh(tok string) (*Claims, error) {
	return tm.parse(tok, tm.refreshSecret, typeRefresh)
}

func (tm *TokenManager) parse(tok string, secret []byte, typ string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tok, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tm.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil || claims.Type != typ || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
