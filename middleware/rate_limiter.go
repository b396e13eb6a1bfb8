package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/JosephChoi/abcbond-api/utils"
)

// In-memory per-IP fixed-window rate limiter, used on the auth endpoints.
// Cross-instance coordination is handled only for the login lockout below
// (Redis-backed when available).

type timestamps []int64 // unix nanos

func nowUnix() int64 { return time.Now().UnixNano() }

type IPRateLimiter struct {
	window      time.Duration
	maxReq      int
	mu          sync.Mutex
	state       map[string]timestamps
	trustedCIDR []string
}

func NewIPRateLimiter(maxReq int, window time.Duration) *IPRateLimiter {
	l := &IPRateLimiter{
		window: window,
		maxReq: maxReq,
		state:  make(map[string]timestamps),
	}
	if v := os.Getenv("TRUSTED_PROXIES"); v != "" {
		l.trustedCIDR = strings.Split(v, ",")
	}
	go l.cleanupLoop()
	return l
}

// clientIPGeneric returns the client IP string. If trustedCIDR is provided,
// X-Forwarded-For / X-Real-IP headers are honored when remote addr is inside
// one of the trusted CIDRs or IPs.
func clientIPGeneric(r *http.Request, trustedCIDR []string) string {
	remoteHost, _, _ := net.SplitHostPort(r.RemoteAddr)
	remoteIP := net.ParseIP(remoteHost)
	trusted := false
	for _, cidr := range trustedCIDR {
		cidr = strings.TrimSpace(cidr)
		if cidr == "" {
			continue
		}
		if strings.Contains(cidr, "/") {
			if _, ipnet, err := net.ParseCIDR(cidr); err == nil {
				if remoteIP != nil && ipnet.Contains(remoteIP) {
					trusted = true
					break
				}
			}
			continue
		}
		if ip := net.ParseIP(cidr); ip != nil && remoteIP != nil && ip.Equal(remoteIP) {
			trusted = true
			break
		}
	}
	if trusted {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			if len(parts) > 0 {
				return strings.TrimSpace(parts[0])
			}
		}
		if xr := r.Header.Get("X-Real-IP"); xr != "" {
			return strings.TrimSpace(xr)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware applies the per-IP limit and sets rate-limit headers.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIPGeneric(r, l.trustedCIDR)
		now := nowUnix()
		windowNs := int64(l.window)

		l.mu.Lock()
		var filtered timestamps
		cutoff := now - windowNs
		for _, ts := range l.state[ip] {
			if ts >= cutoff {
				filtered = append(filtered, ts)
			}
		}
		filtered = append(filtered, now)
		l.state[ip] = filtered
		count := len(filtered)
		l.mu.Unlock()

		remaining := l.maxReq - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", l.maxReq))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if count > l.maxReq {
			oldest := filtered[0]
			for _, ts := range filtered {
				if ts < oldest {
					oldest = ts
				}
			}
			retryAfter := int((oldest + windowNs - now) / 1e9)
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIError{
				Error:   "Too Many Requests",
				Message: "Too many requests, try again later",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *IPRateLimiter) cleanupLoop() {
	tick := time.NewTicker(time.Minute)
	defer tick.Stop()
	for range tick.C {
		now := nowUnix()
		cutoff := now - int64(l.window)
		l.mu.Lock()
		for k, arr := range l.state {
			var filtered timestamps
			for _, ts := range arr {
				if ts >= cutoff {
					filtered = append(filtered, ts)
				}
			}
			if len(filtered) == 0 {
				delete(l.state, k)
			} else {
				l.state[k] = filtered
			}
		}
		l.mu.Unlock()
	}
}

// Account lockout tracker for failed logins. Redis-backed when configured so
// the lock holds across instances; in-memory otherwise.
var (
	loginMu   sync.Mutex
	failedMap = make(map[string]int)   // key = u:<id> -> failures
	lockMap   = make(map[string]int64) // key -> lockUntil unix nanos
)

const lockoutThreshold = 5

func lockoutDuration(failures int) time.Duration {
	switch {
	case failures <= lockoutThreshold:
		return 0
	case failures == lockoutThreshold+1:
		return 1 * time.Minute
	case failures == lockoutThreshold+2:
		return 5 * time.Minute
	default:
		return 15 * time.Minute
	}
}

func IsAccountLocked(userID uint) (bool, time.Duration) {
	if utils.RedisClient != nil {
		ctx := context.Background()
		lockKey := fmt.Sprintf("login:lock:u:%d", userID)
		ttl, err := utils.RedisClient.TTL(ctx, lockKey).Result()
		if err == nil && ttl > 0 {
			return true, ttl
		}
		return false, 0
	}
	loginMu.Lock()
	defer loginMu.Unlock()
	key := fmt.Sprintf("u:%d", userID)
	until := lockMap[key]
	if until == 0 {
		return false, 0
	}
	now := nowUnix()
	if until > now {
		return true, time.Duration(until - now)
	}
	delete(lockMap, key)
	failedMap[key] = 0
	return false, 0
}

func RecordFailedLogin(userID uint) {
	if utils.RedisClient != nil {
		ctx := context.Background()
		failKey := fmt.Sprintf("login:fail:u:%d", userID)
		lockKey := fmt.Sprintf("login:lock:u:%d", userID)
		failures, err := utils.RedisClient.Incr(ctx, failKey).Result()
		if err == nil {
			_, _ = utils.RedisClient.Expire(ctx, failKey, 30*time.Minute).Result()
			if d := lockoutDuration(int(failures)); d > 0 {
				_ = utils.RedisClient.Set(ctx, lockKey, "1", d).Err()
			}
			return
		}
		// on Redis error fall through to in-memory tracking
	}
	loginMu.Lock()
	defer loginMu.Unlock()
	key := fmt.Sprintf("u:%d", userID)
	failedMap[key]++
	if d := lockoutDuration(failedMap[key]); d > 0 {
		lockMap[key] = nowUnix() + int64(d)
	}
}

func ResetFailedLogin(userID uint) {
	if utils.RedisClient != nil {
		ctx := context.Background()
		failKey := fmt.Sprintf("login:fail:u:%d", userID)
		lockKey := fmt.Sprintf("login:lock:u:%d", userID)
		_, _ = utils.RedisClient.Del(ctx, failKey, lockKey).Result()
		return
	}
	loginMu.Lock()
	defer loginMu.Unlock()
	key := fmt.Sprintf("u:%d", userID)
	delete(failedMap, key)
	delete(lockMap, key)
}
