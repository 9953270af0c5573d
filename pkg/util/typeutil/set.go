// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package typeutil

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Set 是基于 map[T]struct{} 的无序集合，
// 可以像创建 map 一样使用 make(Set[T]) 创建实例。
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](elements ...T) Set[T] {
	set := make(Set[T], len(elements))
	set.Insert(elements...)
	return set
}

// Insert 将元素插入集合。
// 如果元素已存在，则忽略该元素。
func (set Set[T]) Insert(elements ...T) {
	for i := range elements {
		set[elements[i]] = struct{}{}
	}
}

// Contain 判断一个或多个元素是否都存在于集合中。
func (set Set[T]) Contain(elements ...T) bool {
	for i := range elements {
		_, ok := set[elements[i]]
		if !ok {
			return false
		}
	}
	return true
}

// Remove 从集合中移除元素。
// 如果集合为 nil 或元素不存在，则忽略。
func (set Set[T]) Remove(elements ...T) {
	for i := range elements {
		delete(set, elements[i])
	}
}

// Collect 返回集合中所有元素的切片，顺序不固定。
func (set Set[T]) Collect() []T {
	return lo.Keys(set)
}

// Len 返回集合中元素的个数。
func (set Set[T]) Len() int {
	return len(set)
}

// Range 遍历集合中的所有元素。
// 当回调返回 false 时提前终止遍历。
func (set Set[T]) Range(f func(element T) bool) {
	for elem := range set {
		if !f(elem) {
			break
		}
	}
}

// Equal 判断两个集合是否包含完全相同的元素。
func (set Set[T]) Equal(other Set[T]) bool {
	if set.Len() != other.Len() {
		return false
	}
	for elem := range set {
		if !other.Contain(elem) {
			return false
		}
	}
	return true
}

// Clone 返回一个拥有相同元素的新集合。
func (set Set[T]) Clone() Set[T] {
	ret := make(Set[T], set.Len())
	for elem := range set {
		ret.Insert(elem)
	}
	return ret
}

// SortedCollect 按升序返回集合中的元素，用于需要字节稳定输出的场景。
func SortedCollect[T constraints.Ordered](set Set[T]) []T {
	elements := set.Collect()
	slices.Sort(elements)
	return elements
}

// SortedCollectFunc 按 cmp 给出的顺序返回集合中的元素。
func SortedCollectFunc[T comparable](set Set[T], cmp func(a, b T) int) []T {
	elements := set.Collect()
	slices.SortFunc(elements, cmp)
	return elements
}
