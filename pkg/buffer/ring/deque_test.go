package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCeilToPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 2, 3: 4, 5: 8, 16: 16, 17: 32, 4097: 8192}
	for in, want := range cases {
		assert.Equal(t, want, ceilToPowerOfTwo(in), "n=%d", in)
	}
}

func TestDequeZeroValue(t *testing.T) {
	var dq Deque[int]
	assert.True(t, dq.IsEmpty())
	_, ok := dq.PopFront()
	assert.False(t, ok)
	_, ok = dq.PopBack()
	assert.False(t, ok)

	dq.PushBack(1)
	assert.Equal(t, DefaultDequeSize, dq.Cap())
	assert.Equal(t, []int{1}, dq.Slice())

	var nilDq *Deque[int]
	assert.Equal(t, 0, nilDq.Len())
}

func TestDequePushPop(t *testing.T) {
	dq := New[string](2)
	dq.PushBack("b")
	dq.PushFront("a")
	dq.PushBack("c")
	assert.Equal(t, []string{"a", "b", "c"}, dq.Slice())

	front, ok := dq.Front()
	require.True(t, ok)
	assert.Equal(t, "a", front)
	back, ok := dq.Back()
	require.True(t, ok)
	assert.Equal(t, "c", back)

	v, ok := dq.PopBack()
	require.True(t, ok)
	assert.Equal(t, "c", v)
	v, ok = dq.PopFront()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 1, dq.Len())
	assert.Equal(t, "b", dq.At(0))
}

func TestDequeWrapAndGrow(t *testing.T) {
	dq := New[int](4)
	for i := 0; i < 3; i++ {
		dq.PushBack(i)
	}
	// 让 head 移动到数组尾部附近，再触发扩容。
	_, _ = dq.PopFront()
	_, _ = dq.PopFront()
	for i := 3; i < 40; i++ {
		dq.PushBack(i)
	}
	dq.PushFront(1)

	want := make([]int, 0, 40)
	for i := 1; i < 40; i++ {
		want = append(want, i)
	}
	assert.Equal(t, want, dq.Slice())
	assert.Equal(t, 0, dq.Cap()&(dq.Cap()-1))
}

func TestDequeOfAndRange(t *testing.T) {
	dq := Of(3, 1, 2)
	var seen []int
	dq.Range(func(i int, v int) bool {
		seen = append(seen, v)
		return i < 1
	})
	assert.Equal(t, []int{3, 1}, seen)

	assert.Panics(t, func() { dq.At(3) })

	dq.Reset()
	assert.True(t, dq.IsEmpty())
	assert.Equal(t, 4, dq.Cap())
}
