package app

import (
	"fmt"
	"net"
	"net/http"
	"time"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// rateLimit applies a fixed-window limit per client IP, with the counters
// kept in Redis so that the limit holds across instances. A Redis failure
// lets the request through rather than taking the API down with it.
func (app *Application) rateLimit(next http.Handler) http.Handler {
	if !app.config.RateLimit.Enabled || app.redis == nil {
		return next
	}

	window := app.config.RateLimit.Window
	limit := int64(app.config.RateLimit.Requests)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		key := rateLimitKey(ip, time.Now(), window)

		count, err := app.redis.Incr(r.Context(), key).Result()
		if err != nil {
			app.logError(r, err)
			next.ServeHTTP(w, r)
			return
		}

		if count == 1 {
			app.redis.Expire(r.Context(), key, window)
		}

		if count > limit {
			app.rateLimitExceededResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// rateLimitKey buckets the given instant into fixed windows. Windows shorter
// than a second are clamped to one second to keep the bucket arithmetic
// well-defined.
func rateLimitKey(ip string, now time.Time, window time.Duration) string {
	windowSecs := int64(window.Seconds())
	if windowSecs < 1 {
		windowSecs = 1
	}

	return fmt.Sprintf("ratelimit:%s:%d", ip, now.Unix()/windowSecs)
}
