package http

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"
)

func rateLimitMessage(window time.Duration) string {
	if window >= time.Minute {
		return fmt.Sprintf("Too many requests from this IP, please try again after %d minutes.", int(window.Minutes()))
	}
	return fmt.Sprintf("Too many requests from this IP, please try again after %d seconds.", int(window.Seconds()))
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// RateLimitMiddleware rejects clients over their quota with 429 and
// reports the quota through RateLimit-* headers.
func RateLimitMiddleware(
	limiter *RateLimiter,
	next http.Handler,
) http.Handler {

	message := rateLimitMessage(limiter.window)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		d := limiter.Take(clientIP(r))
		resetSeconds := strconv.Itoa(int(math.Ceil(d.Reset.Seconds())))

		w.Header().Set("RateLimit-Limit", strconv.Itoa(d.Limit))
		w.Header().Set("RateLimit-Remaining", strconv.Itoa(d.Remaining))
		w.Header().Set("RateLimit-Reset", resetSeconds)

		if !d.Allowed {
			w.Header().Set("Retry-After", resetSeconds)
			writeError(w, r, http.StatusTooManyRequests, message)
			return
		}

		next.ServeHTTP(w, r)
	})
}
