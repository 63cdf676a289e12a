// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package zipclone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/zipclone"
)

func TestPairs(t *testing.T) {
	t.Parallel()

	var clones int
	var got []int
	for v, s := range zipclone.Pairs(zipclone.FromSlice([]int{1, 2, 3, 4, 5}), "hello", counted(&clones)) {
		assert.Equal(t, "hello", s)
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
	assert.Equal(t, 4, clones)
}

func TestPairsCloner(t *testing.T) {
	t.Parallel()

	var clones int
	var n int
	for range zipclone.PairsCloner(zipclone.FromSlice([]int{1, 2, 3}), tally{&clones}) {
		n++
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, 2, clones)
}
