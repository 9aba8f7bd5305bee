package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

type IdentitySource string

const (
	SourceToken   IdentitySource = "token"
	SourceQuery   IdentitySource = "query"
	SourceDefault IdentitySource = "default"
)

type Identity struct {
	UserID int64
	Source IdentitySource
}

type identityContextKey struct{}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(Identity)
	return identity, ok
}

// ResolveUserID returns the caller's user id. A userId sent in the body only
// overrides the development default, never a token or query identity.
func ResolveUserID(ctx context.Context, bodyUserID *int64) (int64, error) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return 0, errors.UnauthorizedError("Caller identity is required")
	}

	if identity.Source == SourceDefault && bodyUserID != nil && *bodyUserID > 0 {
		return *bodyUserID, nil
	}

	return identity.UserID, nil
}

type IdentityResolver struct {
	jwtKey        []byte
	devFallback   bool
	defaultUserID int64
}

// NewIdentityResolver verifies bearer tokens. With devFallback enabled,
// requests without a token are identified by ?userId= or defaultUserID.
func NewIdentityResolver(jwtKey []byte, devFallback bool, defaultUserID int64) *IdentityResolver {
	return &IdentityResolver{jwtKey: jwtKey, devFallback: devFallback, defaultUserID: defaultUserID}
}

func (m *IdentityResolver) Resolve(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		var identity Identity

		authHeader := r.Header.Get("Authorization")

		switch {
		case authHeader != "":
			userID, err := m.verify(authHeader, logger)
			if err != nil {
				response.Error(w, err)
				return
			}
			identity = Identity{UserID: userID, Source: SourceToken}

		case !m.devFallback:
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return

		case r.URL.Query().Get("userId") != "":
			userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
			if err != nil || userID <= 0 {
				response.Error(w, errors.AddValidationError("userId", "must be a positive integer"))
				return
			}
			identity = Identity{UserID: userID, Source: SourceQuery}

		default:
			identity = Identity{UserID: m.defaultUserID, Source: SourceDefault}
		}

		ctx := WithIdentity(r.Context(), identity)
		ctx = WithLogger(ctx, logger.With(slog.Int64("user_id", identity.UserID), slog.String("identity_source", string(identity.Source))))

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func (m *IdentityResolver) verify(authHeader string, logger *slog.Logger) (int64, error) {

	// Token is of format : "Bearer <token>"
	tokenParts := strings.Split(authHeader, " ")

	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		logger.Warn("Invalid authorization header format")
		return 0, errors.UnauthorizedError("Invalid authorization format")
	}

	if len(m.jwtKey) == 0 {
		logger.Error("Bearer token sent but no JWT key is configured")
		return 0, errors.UnauthorizedError("Invalid or expired token")
	}

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
		return m.jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		logger.Warn("JWT parsing failed", slog.Any("error", err))
		return 0, errors.UnauthorizedError("Invalid or expired token")
	}

	if claims.UserID <= 0 {
		logger.Warn("Token carries no user id")
		return 0, errors.UnauthorizedError("Invalid token")
	}

	return claims.UserID, nil
}
