// Package ratelimit provides per-client request rate limiting for the API.
package ratelimit

import (
	"sync"
	"time"
)

// Info describes the limit state returned alongside each decision.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter settings.
type Config struct {
	// RequestsPerMinute is the default bucket size per client.
	RequestsPerMinute int
	// ExportPerMinute caps the expensive PDF export path separately.
	ExportPerMinute int
	// CleanupInterval controls how often idle client buckets are dropped.
	CleanupInterval time.Duration
}

// DefaultConfig returns the limiter defaults.
func DefaultConfig() Config {
	return Config{
		RequestsPerMinute: 120,
		ExportPerMinute:   10,
		CleanupInterval:   5 * time.Minute,
	}
}

type window struct {
	count    int
	resetAt  time.Time
	lastSeen time.Time
}

// Limiter is a fixed-window per-client limiter with a stricter budget for
// PDF exports. Safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	cfg     Config
	windows map[string]*window
	done    chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup goroutine.
func NewLimiter(cfg Config) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		windows: make(map[string]*window),
		done:    make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether the client may proceed on the given path.
func (l *Limiter) Allow(clientID, path string) (bool, Info) {
	limit := l.cfg.RequestsPerMinute
	key := clientID
	if isExportPath(path) {
		limit = l.cfg.ExportPerMinute
		key = clientID + "|export"
	}

	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(time.Minute)}
		l.windows[key] = w
	}
	w.lastSeen = now

	info := Info{
		Limit:     limit,
		Remaining: limit - w.count - 1,
		ResetTime: w.resetAt,
	}

	if w.count >= limit {
		info.Remaining = 0
		info.RetryAfter = time.Until(w.resetAt)
		return false, info
	}

	w.count++
	return true, info
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	close(l.done)
}

func (l *Limiter) cleanupLoop() {
	interval := l.cfg.CleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-interval)
			l.mu.Lock()
			for key, w := range l.windows {
				if w.lastSeen.Before(cutoff) {
					delete(l.windows, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

func isExportPath(path string) bool {
	return len(path) > 7 && path[len(path)-7:] == "/export"
}
