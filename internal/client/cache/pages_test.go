package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPages_PutGetClear(t *testing.T) {
	c := NewPages[int]()
	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Put("k", 7)
	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestLoader_HitSkipsFetch(t *testing.T) {
	l := NewLoader(NewPages[string]())
	calls := 0
	fetch := func(context.Context) (string, error) {
		calls++
		return "page", nil
	}

	v, hit, err := l.Load(context.Background(), Key(Params{"a": "1", "b": "2"}), fetch)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "page", v)

	v, hit, err = l.Load(context.Background(), Key(Params{"b": "2", "a": "1"}), fetch)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "page", v)
	assert.Equal(t, 1, calls)
}

func TestLoader_ErrorsAreNotCached(t *testing.T) {
	l := NewLoader(NewPages[string]())
	boom := errors.New("boom")

	_, _, err := l.Load(context.Background(), "k", func(context.Context) (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, l.Pages().Len())

	v, hit, err := l.Load(context.Background(), "k", func(context.Context) (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "ok", v)
}

func TestLoader_ConcurrentMissesShareOneFetch(t *testing.T) {
	l := NewLoader(NewPages[int]())
	var calls atomic.Int32
	release := make(chan struct{})

	fetch := func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, _, err := l.Load(context.Background(), "k", fetch)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, 42, v)
	}
}

func TestPages_DeleteFunc(t *testing.T) {
	c := NewPages[string]()
	c.Put("companyId:c1|page:1", "a")
	c.Put("companyId:c1|page:2", "b")
	c.Put("companyId:c2|page:1", "c")

	n := c.DeleteFunc(func(k string) bool { return KeyHas(k, "companyId", "c1") })
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("companyId:c2|page:1")
	assert.True(t, ok)
}
