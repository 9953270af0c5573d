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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := NewSet[int32](3, 1, 2, 3)
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contain(1, 2, 3))
	assert.False(t, set.Contain(1, 4))

	set.Remove(2, 42)
	assert.Equal(t, 2, set.Len())
	assert.ElementsMatch(t, []int32{1, 3}, set.Collect())

	clone := set.Clone()
	assert.True(t, clone.Equal(set))
	clone.Insert(7)
	assert.False(t, clone.Equal(set))
	assert.False(t, set.Contain(7))

	visited := 0
	clone.Range(func(int32) bool {
		visited++
		return false
	})
	assert.Equal(t, 1, visited)
}

func TestSortedCollect(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedCollect(NewSet("c", "a", "b")))
	assert.Equal(t, []float64{-1.5, 0, 2}, SortedCollect(NewSet(2.0, -1.5, 0)))
	assert.Empty(t, SortedCollect(NewSet[int64]()))

	byLen := SortedCollectFunc(NewSet("ccc", "a", "bb"), func(a, b string) int {
		return len(a) - len(b)
	})
	assert.Equal(t, []string{"a", "bb", "ccc"}, byLen)
	assert.Equal(t, []string{"A", "b"}, SortedCollectFunc(NewSet("b", "A"), func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}))
}
