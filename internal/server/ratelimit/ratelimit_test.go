package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		RequestsPerMinute: 3,
		ExportPerMinute:   1,
		CleanupInterval:   time.Hour,
	}
}

func TestLimiter_AllowsUpToLimit(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/cvs")
		require.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, info := l.Allow("1.2.3.4", "/cvs")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		l.Allow("1.1.1.1", "/cvs")
	}

	allowed, _ := l.Allow("2.2.2.2", "/cvs")
	assert.True(t, allowed, "a different client has its own budget")
}

func TestLimiter_ExportHasSeparateBudget(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/cvs/abc/export")
	require.True(t, allowed)

	allowed, _ = l.Allow("1.2.3.4", "/cvs/abc/export")
	assert.False(t, allowed, "export budget is 1 per minute in the test config")

	allowed, _ = l.Allow("1.2.3.4", "/cvs")
	assert.True(t, allowed, "regular requests are unaffected by the export budget")
}

func TestLimiter_InfoReportsLimit(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	_, info := l.Allow("1.2.3.4", "/cvs")
	assert.Equal(t, 3, info.Limit)
	assert.Equal(t, 2, info.Remaining)
	assert.False(t, info.ResetTime.IsZero())
}
