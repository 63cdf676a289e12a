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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/zipclone"
)

func TestSliceSource(t *testing.T) {
	t.Parallel()

	src := zipclone.FromSlice([]int{1, 2, 3, 4, 5})
	assert.Equal(t, 5, src.Len())

	v, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = src.NextBack()
	require.True(t, ok)
	assert.Equal(t, 5, v)

	assert.Equal(t, 2, src.Skip(2))
	assert.Equal(t, 1, src.Len())

	v, ok = src.Next()
	require.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = src.Next()
	assert.False(t, ok)
	_, ok = src.NextBack()
	assert.False(t, ok)
	assert.Zero(t, src.Skip(3))
}

func TestSliceSourceCapabilities(t *testing.T) {
	t.Parallel()

	// All three optional capabilities, independently checkable.
	var src zipclone.Iterator[int] = zipclone.FromSlice([]int{1})
	_, ok := src.(zipclone.DoubleEnded[int])
	assert.True(t, ok)
	_, ok = src.(zipclone.Sized[int])
	assert.True(t, ok)
	_, ok = src.(zipclone.Skipper[int])
	assert.True(t, ok)
}

func TestPointers(t *testing.T) {
	t.Parallel()

	s := []string{"a", "b", "c"}
	src := zipclone.Pointers(s)
	assert.Equal(t, 3, src.Len())

	p, ok := src.Next()
	require.True(t, ok)
	assert.Same(t, &s[0], p)

	p, ok = src.NextBack()
	require.True(t, ok)
	assert.Same(t, &s[2], p)
}

func TestFromSeq(t *testing.T) {
	t.Parallel()

	src := zipclone.FromSeq(slices.Values([]int{1, 2, 3}))
	var got []int
	for {
		v, ok := src.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)

	// Forward-only by design.
	var iface zipclone.Iterator[int] = src
	_, ok := iface.(zipclone.DoubleEnded[int])
	assert.False(t, ok)
	_, ok = iface.(zipclone.Sized[int])
	assert.False(t, ok)
	_, ok = iface.(zipclone.Skipper[int])
	assert.False(t, ok)
}

func TestFromSeqStop(t *testing.T) {
	t.Parallel()

	src := zipclone.FromSeq(slices.Values([]int{1, 2, 3}))
	_, ok := src.Next()
	require.True(t, ok)

	src.Stop()
	_, ok = src.Next()
	assert.False(t, ok)
	src.Stop() // must be safe to repeat
}

// A Zip over a forward-only source still supports the whole forward
// surface, and the gated operations report exhaustion without disturbing
// anything.
func TestForwardOnlyGating(t *testing.T) {
	t.Parallel()

	var clones int
	zip := zipclone.NewCloner(zipclone.FromSeq(slices.Values([]int{1, 2, 3})), tally{&clones})

	_, _, ok := zip.NextBack()
	assert.False(t, ok)
	_, _, ok = zip.NthBack(0)
	assert.False(t, ok)
	_, _, ok = zip.FindBack(func(int, tally) bool { return true })
	assert.False(t, ok)
	assert.Zero(t, clones)

	// The held value and the source are untouched.
	v, _, ok := zip.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, clones)

	_, exact := zip.Len()
	assert.False(t, exact, "no exact size without a Sized source")
}

func TestForwardOnlyCount(t *testing.T) {
	t.Parallel()

	var clones int
	zip := zipclone.NewCloner(zipclone.FromSeq(slices.Values([]int{1, 2, 3})), tally{&clones})
	assert.Equal(t, 3, zip.Count(), "counting steps through unsized sources")
	assert.Zero(t, clones)
}

func TestForwardOnlyNth(t *testing.T) {
	t.Parallel()

	var clones int
	zip := zipclone.NewCloner(zipclone.FromSeq(slices.Values([]int{1, 2, 3, 4})), tally{&clones})
	v, _, ok := zip.Nth(2)
	require.True(t, ok)
	assert.Equal(t, 3, v, "Nth steps when the source cannot skip in bulk")
	assert.Equal(t, 1, clones)
}
