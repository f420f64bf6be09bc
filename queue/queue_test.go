package queue_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/dsakit/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_Empty(t *testing.T) {
	q := queue.New[int]()
	assert.True(t, q.Empty())
	assert.Equal(t, 0, q.Len())

	_, err := q.Front()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
	_, err = q.Back()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
	_, err = q.Pop()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
}

func TestQueue_FIFO(t *testing.T) {
	var q queue.Queue[string]
	q.Push("a")
	q.Push("b")
	q.Push("c")
	require.Equal(t, 3, q.Len())

	front, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, "a", front)
	back, err := q.Back()
	require.NoError(t, err)
	assert.Equal(t, "c", back)
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(q.All()))

	for _, want := range []string{"a", "b", "c"} {
		got, err := q.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.Empty())

	// Tail resets so a drained queue is reusable.
	q.Push("d")
	back, err = q.Back()
	require.NoError(t, err)
	assert.Equal(t, "d", back)
}

func TestQueue_Clear(t *testing.T) {
	q := queue.New[int]()
	for i := 0; i < 10; i++ {
		q.Push(i)
	}
	q.Clear()
	assert.True(t, q.Empty())
	assert.Empty(t, slices.Collect(q.All()))
	q.Push(1)
	assert.Equal(t, 1, q.Len())
}
