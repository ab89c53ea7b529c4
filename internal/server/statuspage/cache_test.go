package statuspage

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache_EmptyThenSet(t *testing.T) {
	c := NewMemoryCache()

	_, ok := c.Get()
	assert.False(t, ok)

	exp := time.Date(2026, 1, 1, 0, 1, 0, 0, time.UTC)
	c.Set(Entry{Payload: NormalizedStatus{OK: true, MappedStatus: StatusLive}, ExpiresAt: exp})

	e, ok := c.Get()
	assert.True(t, ok)
	assert.Equal(t, StatusLive, e.Payload.MappedStatus)
	assert.Equal(t, exp, e.ExpiresAt)
}

func TestEntry_Fresh(t *testing.T) {
	exp := time.Date(2026, 1, 1, 0, 1, 0, 0, time.UTC)
	e := Entry{ExpiresAt: exp}

	assert.True(t, e.Fresh(exp.Add(-time.Nanosecond)))
	assert.False(t, e.Fresh(exp))
	assert.False(t, e.Fresh(exp.Add(time.Second)))
}

func TestMemoryCache_ConcurrentSetGet(t *testing.T) {
	c := NewMemoryCache()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Set(Entry{Payload: NormalizedStatus{OK: true}})
		}()
		go func() {
			defer wg.Done()
			_, _ = c.Get()
		}()
	}
	wg.Wait()

	e, ok := c.Get()
	assert.True(t, ok)
	assert.True(t, e.Payload.OK)
}
