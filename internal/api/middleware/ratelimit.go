package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils/response"
)

type RateLimiter interface {
	Allow(ctx context.Context, scope, subject string) (bool, int, int, error)
}

// RateLimit bounds requests per client address for scope. A nil limiter
// disables the check and limiter failures let the request through.
// X-Forwarded-For is only read when trustForwardedFor is set.
func RateLimit(limiter RateLimiter, scope string, trustForwardedFor bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			logger := LoggerFromContext(r.Context())

			allowed, remaining, retryAfter, err := limiter.Allow(r.Context(), scope, ClientIP(r, trustForwardedFor))
			if err != nil {
				logger.Warn("Rate limiter unavailable, allowing request", slog.String("scope", scope), slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				response.Error(w, errors.TooManyRequestsError("Too many requests, please try again later"))
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP is the peer address of the connection. Behind a trusted proxy it is
// the right-most X-Forwarded-For hop, the one the proxy itself appended; every
// hop to its left is client supplied.
func ClientIP(r *http.Request, trustForwardedFor bool) string {
	if trustForwardedFor {
		hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			if hop := strings.TrimSpace(hops[i]); hop != "" {
				return hop
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
