package vector_test

import (
	"testing"

	"github.com/katalvlaran/dsakit/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v, err := vector.New[int](2)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, 2+vector.SpareCapacity, v.Cap())
	assert.Equal(t, []int{0, 0}, v.Values())

	_, err = vector.New[int](-1)
	assert.ErrorIs(t, err, vector.ErrNegativeSize)
}

func TestPushPop(t *testing.T) {
	var v vector.Vector[string]
	assert.True(t, v.Empty())

	v.PushBack("a")
	v.PushBack("b")
	back, err := v.Back()
	require.NoError(t, err)
	assert.Equal(t, "b", back)
	front, err := v.Front()
	require.NoError(t, err)
	assert.Equal(t, "a", front)

	x, err := v.PopBack()
	require.NoError(t, err)
	assert.Equal(t, "b", x)
	_, _ = v.PopBack()

	_, err = v.PopBack()
	assert.ErrorIs(t, err, vector.ErrEmpty)
	_, err = v.Front()
	assert.ErrorIs(t, err, vector.ErrEmpty)
	_, err = v.Back()
	assert.ErrorIs(t, err, vector.ErrEmpty)
}

func TestGrowth(t *testing.T) {
	v := vector.Of[int]()
	for i := 0; i < 1000; i++ {
		v.PushBack(i)
	}
	assert.Equal(t, 1000, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), 1000)
	for i := 0; i < 1000; i += 97 {
		got, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

func TestAtSetBounds(t *testing.T) {
	v := vector.Of(1, 2, 3)
	require.NoError(t, v.Set(1, 20))
	got, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20, got)

	_, err = v.At(3)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	_, err = v.At(-1)
	assert.ErrorIs(t, err, vector.ErrIndexOutOfRange)
	assert.ErrorIs(t, v.Set(5, 0), vector.ErrIndexOutOfRange)
}

func TestResizeReserve(t *testing.T) {
	v := vector.Of(1, 2, 3)
	require.NoError(t, v.Resize(100))
	assert.Equal(t, 100, v.Len())
	assert.Equal(t, 200, v.Cap())
	require.NoError(t, v.Resize(2))
	assert.Equal(t, []int{1, 2}, v.Values())
	require.NoError(t, v.Resize(3))
	assert.Equal(t, []int{1, 2, 0}, v.Values(), "regrown slots are zeroed")

	require.NoError(t, v.Reserve(10))
	assert.Equal(t, 200, v.Cap(), "Reserve never shrinks")
	assert.ErrorIs(t, v.Reserve(-1), vector.ErrNegativeSize)
	assert.ErrorIs(t, v.Resize(-1), vector.ErrNegativeSize)
}

func TestClone(t *testing.T) {
	v := vector.Of(1, 2)
	c := v.Clone()
	require.NoError(t, c.Set(0, 9))
	c.PushBack(3)
	assert.Equal(t, []int{1, 2}, v.Values())
	assert.Equal(t, []int{9, 2, 3}, c.Values())
}
