package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue[int]()
	assert.True(t, q.Empty())

	q.Push(1)
	q.Push(2)
	q.Push(3)
	require.Equal(t, 3, q.Size())

	v, ok := q.Front()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = q.Front()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	assert.Equal(t, 1, q.Size())
}

func TestQueueFrontOnEmpty(t *testing.T) {
	q := NewQueue[string]()
	v, ok := q.Front()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue[int]()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			q.Push(n)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 100, q.Size())
}

func TestSpinlockMutualExclusion(t *testing.T) {
	var lock Spinlock
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock.Lock()
			defer lock.Unlock()
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}
