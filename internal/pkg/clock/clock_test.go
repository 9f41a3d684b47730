//go:build unit

package clock_test

import (
	"testing"
	"time"

	"booking-flow/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("timers fire in deadline order once due", func(t *testing.T) {
		c := clock.NewMockClock(start)
		var fired []string
		c.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
		c.AfterFunc(time.Second, func() { fired = append(fired, "a") })

		c.Add(500 * time.Millisecond)
		assert.Empty(t, fired)
		assert.Equal(t, 2, c.Pending())

		c.Add(2 * time.Second)
		assert.Equal(t, []string{"a", "b"}, fired)
		assert.Equal(t, 0, c.Pending())
	})

	t.Run("stopped timer never fires", func(t *testing.T) {
		c := clock.NewMockClock(start)
		called := false
		tm := c.AfterFunc(time.Second, func() { called = true })

		assert.True(t, tm.Stop())
		assert.False(t, tm.Stop())
		c.Add(time.Minute)
		assert.False(t, called)
	})

	t.Run("timer scheduled by a firing timer runs when due", func(t *testing.T) {
		c := clock.NewMockClock(start)
		count := 0
		c.AfterFunc(time.Second, func() {
			count++
			c.AfterFunc(time.Second, func() { count++ })
		})

		c.Add(time.Second)
		assert.Equal(t, 1, count)
		c.Add(time.Second)
		assert.Equal(t, 2, count)
	})

	t.Run("set moves time", func(t *testing.T) {
		c := clock.NewMockClock(start)
		c.Set(start.Add(time.Hour))
		assert.Equal(t, start.Add(time.Hour), c.Now())
	})
}
