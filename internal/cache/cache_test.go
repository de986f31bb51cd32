package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silver-dev/resume-checker/internal/cache"
	"github.com/silver-dev/resume-checker/internal/domain"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestResultCache_RoundTrip(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := cache.New(24*time.Hour, clk.Now)

	res := domain.GradeResult{Grade: domain.GradeA, YellowFlags: []string{"flag"}}
	c.Put("templates/serial.pdf", res)

	got, ok := c.Get("templates/serial.pdf")
	require.True(t, ok)
	assert.Equal(t, res, got)
}

func TestResultCache_ExpiresAfterWindow(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := cache.New(24*time.Hour, clk.Now)

	c.Put("k", domain.GradeResult{Grade: domain.GradeB})

	clk.Advance(24 * time.Hour)
	_, ok := c.Get("k")
	assert.True(t, ok, "entry at exactly the window edge is still valid")

	clk.Advance(time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry removed lazily on read")
}

func TestResultCache_MissOnUnknownKey(t *testing.T) {
	t.Parallel()
	c := cache.New(time.Hour, nil)
	_, ok := c.Get("nope")
	assert.False(t, ok)
}

func TestResultCache_LastWriteWins(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{t: time.Now()}
	c := cache.New(time.Hour, clk.Now)
	c.Put("k", domain.GradeResult{Grade: domain.GradeC})
	c.Put("k", domain.GradeResult{Grade: domain.GradeS})
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, domain.GradeS, got.Grade)
}

func TestResultCache_ClonesOnPutAndGet(t *testing.T) {
	t.Parallel()
	c := cache.New(time.Hour, nil)
	res := domain.GradeResult{Grade: domain.GradeA, RedFlags: []string{"original"}}
	c.Put("k", res)
	res.RedFlags[0] = "mutated after put"

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "original", got.RedFlags[0])

	got.RedFlags[0] = "mutated after get"
	again, _ := c.Get("k")
	assert.Equal(t, "original", again.RedFlags[0])
}
