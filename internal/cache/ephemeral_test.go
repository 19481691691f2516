package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrFetchCallsFetchOnlyOnce(t *testing.T) {
	c := NewEphemeral()
	var calls int32

	fetch := func() (string, error) {
		atomic.AddInt32(&calls, 1)
		return "value", nil
	}

	v1, err1 := GetOrFetch(c, "key", fetch)
	v2, err2 := GetOrFetch(c, "key", fetch)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, "value", v1)
	assert.Equal(t, "value", v2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrFetchConcurrentCallersCollapseToOneFetch(t *testing.T) {
	c := NewEphemeral()
	var calls int32

	fetch := func() (int, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := GetOrFetch(c, "shared-key", fetch)
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrFetchCachesErrorsWithoutRefetching(t *testing.T) {
	c := NewEphemeral()
	var calls int32
	wantErr := errors.New("upstream unavailable")

	fetch := func() (string, error) {
		atomic.AddInt32(&calls, 1)
		return "", wantErr
	}

	_, err1 := GetOrFetch(c, "key", fetch)
	_, err2 := GetOrFetch(c, "key", fetch)

	assert.Equal(t, wantErr, err1)
	assert.Equal(t, wantErr, err2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrFetchCachesNoneAsAValidResult(t *testing.T) {
	c := NewEphemeral()
	var calls int32

	fetch := func() (*string, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	}

	v1, err1 := GetOrFetch(c, "key", fetch)
	v2, err2 := GetOrFetch(c, "key", fetch)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Nil(t, v1)
	assert.Nil(t, v2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "a cached nil result must not trigger a second fetch")
}

func TestGetOrFetchDifferentKeysFetchIndependently(t *testing.T) {
	c := NewEphemeral()
	var calls int32
	fetch := func() (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	v1, _ := GetOrFetch(c, "a", fetch)
	v2, _ := GetOrFetch(c, "b", fetch)

	assert.NotEqual(t, v1, v2)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
