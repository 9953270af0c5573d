// Copyright (c) 2019 The Gnet Authors. All rights reserved.
// Copyright (c) 2019 Chao yuepan, Allen Xu
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE

// Package ring 实现了基于环形数组的双端队列。
package ring

import (
	"math/bits"
)

const (
	// DefaultDequeSize 是双端队列首次扩容时的最小容量。
	DefaultDequeSize   = 16
	dequeGrowThreshold = 4 * 1024
)

// Deque 是一个容量始终为 2 的幂的环形双端队列。
// 零值可以直接使用。非并发安全。
type Deque[T any] struct {
	buf  []T
	head int // 队首元素下标
	n    int // 元素个数
}

// New 创建一个给定初始容量的 Deque。
// size 会被向上取整为 2 的幂；size 为 0 时不预分配。
func New[T any](size int) *Deque[T] {
	if size <= 0 {
		return &Deque[T]{}
	}
	return &Deque[T]{buf: make([]T, ceilToPowerOfTwo(size))}
}

// Of 按给定顺序创建一个 Deque，第一个元素位于队首。
func Of[T any](elements ...T) *Deque[T] {
	dq := New[T](len(elements))
	for i := range elements {
		dq.PushBack(elements[i])
	}
	return dq
}

// Len 返回队列中的元素个数。
func (dq *Deque[T]) Len() int {
	if dq == nil {
		return 0
	}
	return dq.n
}

// Cap 返回底层数组的容量。
func (dq *Deque[T]) Cap() int {
	return len(dq.buf)
}

// IsEmpty 返回队列是否为空。
func (dq *Deque[T]) IsEmpty() bool {
	return dq.Len() == 0
}

// PushBack 在队尾追加元素。
func (dq *Deque[T]) PushBack(v T) {
	dq.ensure(dq.n + 1)
	dq.buf[dq.index(dq.n)] = v
	dq.n++
}

// PushFront 在队首插入元素。
func (dq *Deque[T]) PushFront(v T) {
	dq.ensure(dq.n + 1)
	dq.head = (dq.head - 1) & (len(dq.buf) - 1)
	dq.buf[dq.head] = v
	dq.n++
}

// PopFront 弹出队首元素，队列为空时 ok 为 false。
func (dq *Deque[T]) PopFront() (v T, ok bool) {
	if dq.n == 0 {
		return v, false
	}
	var zero T
	v = dq.buf[dq.head]
	dq.buf[dq.head] = zero
	dq.head = (dq.head + 1) & (len(dq.buf) - 1)
	dq.n--
	return v, true
}

// PopBack 弹出队尾元素，队列为空时 ok 为 false。
func (dq *Deque[T]) PopBack() (v T, ok bool) {
	if dq.n == 0 {
		return v, false
	}
	var zero T
	tail := dq.index(dq.n - 1)
	v = dq.buf[tail]
	dq.buf[tail] = zero
	dq.n--
	return v, true
}

// Front 返回队首元素但不移除。
func (dq *Deque[T]) Front() (v T, ok bool) {
	if dq.n == 0 {
		return v, false
	}
	return dq.buf[dq.head], true
}

// Back 返回队尾元素但不移除。
func (dq *Deque[T]) Back() (v T, ok bool) {
	if dq.n == 0 {
		return v, false
	}
	return dq.buf[dq.index(dq.n-1)], true
}

// At 返回从队首开始第 i 个元素，i 越界时 panic。
func (dq *Deque[T]) At(i int) T {
	if i < 0 || i >= dq.n {
		panic("ring: deque index out of range")
	}
	return dq.buf[dq.index(i)]
}

// Range 从队首到队尾依次遍历元素，回调返回 false 时提前终止。
func (dq *Deque[T]) Range(f func(i int, v T) bool) {
	for i := 0; i < dq.Len(); i++ {
		if !f(i, dq.buf[dq.index(i)]) {
			return
		}
	}
}

// Slice 按队首到队尾的顺序返回所有元素的拷贝。
func (dq *Deque[T]) Slice() []T {
	out := make([]T, dq.Len())
	for i := range out {
		out[i] = dq.buf[dq.index(i)]
	}
	return out
}

// Reset 清空队列，保留底层数组。
func (dq *Deque[T]) Reset() {
	var zero T
	for i := 0; i < dq.n; i++ {
		dq.buf[dq.index(i)] = zero
	}
	dq.head, dq.n = 0, 0
}

func (dq *Deque[T]) index(i int) int {
	return (dq.head + i) & (len(dq.buf) - 1)
}

func (dq *Deque[T]) ensure(need int) {
	if need <= len(dq.buf) {
		return
	}
	dq.grow(need)
}

func (dq *Deque[T]) grow(newCap int) {
	if n := len(dq.buf); n == 0 {
		if newCap <= DefaultDequeSize {
			newCap = DefaultDequeSize
		} else {
			newCap = ceilToPowerOfTwo(newCap)
		}
	} else {
		doubleCap := n + n
		if newCap <= doubleCap || n < dequeGrowThreshold {
			newCap = ceilToPowerOfTwo(max(newCap, doubleCap))
		} else {
			newCap = ceilToPowerOfTwo(newCap)
		}
	}
	newBuf := make([]T, newCap)
	for i := 0; i < dq.n; i++ {
		newBuf[i] = dq.buf[dq.index(i)]
	}
	dq.buf = newBuf
	dq.head = 0
}

// ceilToPowerOfTwo 将 n 向上取整为最接近的 2 的幂。
// 若 n 已经是 2 的幂，则直接返回 n。
func ceilToPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}
