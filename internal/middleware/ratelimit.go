package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// IPLimiter hands out one token bucket per client IP. Buckets idle for a whole window are
// full again, so they are dropped and recreated on the client's next request.
type IPLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	rate      rate.Limit
	burst     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPLimiter allows requestsPerWindow per client within window
func NewIPLimiter(requestsPerWindow int, window time.Duration) *IPLimiter {
	if requestsPerWindow < 1 {
		requestsPerWindow = 1
	}
	return &IPLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(float64(requestsPerWindow) / window.Seconds()),
		burst:    max(1, requestsPerWindow/2),
		window:   window,
		now:      time.Now,
	}
}

// Allow reports whether the client may make another request now
func (l *IPLimiter) Allow(ip string) bool {
	now := l.now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(now)
	}
	client, ok := l.limiters[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.limiters[ip] = client
	}
	client.lastSeen = now
	l.mu.Unlock()

	return client.limiter.AllowN(now, 1)
}

// sweep drops buckets not used within the last window. Callers hold mu.
func (l *IPLimiter) sweep(now time.Time) {
	for ip, client := range l.limiters {
		if now.Sub(client.lastSeen) >= l.window {
			delete(l.limiters, ip)
		}
	}
	l.lastSweep = now
}

// RateLimit rejects clients over the limiter's budget, delegating the response to onLimit
func RateLimit(limiter *IPLimiter, onLimit http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(ClientIP(r)) {
				w.Header().Set("Retry-After", strconv.Itoa(int(limiter.window.Seconds())))
				onLimit(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the host part of the request's remote address
func ClientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || ip == "" {
		return r.RemoteAddr
	}
	return ip
}
