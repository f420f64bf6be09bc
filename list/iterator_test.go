package list_test

import (
	"testing"

	"github.com/katalvlaran/dsakit/list"
	"github.com/stretchr/testify/assert"
)

// TestIterator_Traversal exercises the mutable iterator over a bare chain
// [0 10 20] with no owning list.
func TestIterator_Traversal(t *testing.T) {
	it0, _ := list.NewChainForTest(0, 10, 20)
	it1 := it0.Next()

	tmp := it0
	assert.True(t, tmp.Advance().Equal(it1), "prefix advance yields successor")
	assert.True(t, tmp.Retreat().Equal(it0), "prefix retreat yields predecessor")

	old := tmp
	tmp.Advance()
	assert.True(t, old == it0, "postfix form: copy keeps old position")
	assert.True(t, tmp == it1)

	assert.Equal(t, 0, it0.Value())
	assert.Equal(t, 10, it0.Next().Value())
	assert.Equal(t, 20, it0.Next().Next().Value())
	assert.Equal(t, 10, it0.Next().Next().Prev().Value())

	it1.Set(100)
	assert.Equal(t, 100, it1.Value())
	*it1.Ref() += 1
	assert.Equal(t, 101, it0.Next().Value())
}

// TestConstIterator_Traversal checks that ConstIterator walks identically.
func TestConstIterator_Traversal(t *testing.T) {
	first, end := list.NewChainForTest("a", "b")
	c := first.Const()

	assert.Equal(t, "a", c.Value())
	assert.Equal(t, "b", c.Advance().Value())
	assert.True(t, c.Advance().Equal(end))
	assert.True(t, c.Retreat().Retreat().Equal(first))
	assert.Equal(t, "b", c.Next().Value())
	assert.True(t, c.Next().Prev() == c)
}

// TestIterator_CrossEquality compares mutable and read-only positions.
func TestIterator_CrossEquality(t *testing.T) {
	l := list.Of(1, 2)
	assert.True(t, l.Begin().Equal(l.CBegin()))
	assert.True(t, l.CBegin().Equal(l.Begin()))
	assert.True(t, l.CEnd().Equal(l.End()))
	assert.False(t, l.Begin().Equal(l.CEnd()))
	assert.False(t, l.CBegin().Next().Equal(l.Begin()))
}

// TestIterator_StableAcrossOtherMutation: a position survives inserts and
// erases elsewhere in the same list.
func TestIterator_StableAcrossOtherMutation(t *testing.T) {
	l := list.Of(1, 2, 3)
	mid := l.Begin().Next()
	l.PushFront(0)
	l.PushBack(4)
	l.Erase(l.Begin())
	l.Insert(mid, 9)
	assert.Equal(t, 2, mid.Value())
	assert.Equal(t, []int{1, 9, 2, 3, 4}, l.Values())
}
