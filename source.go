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

package zipclone

import "iter"

// SliceSource is an [Iterator] over the values of a slice. It implements
// every optional capability: [DoubleEnded], [Sized], and [Skipper].
type SliceSource[E any] struct {
	s []E
}

// FromSlice returns a source over the values of s. The slice is not
// copied; it is consumed positionally, so appending to s afterward does
// not affect the source.
func FromSlice[E any](s []E) *SliceSource[E] {
	return &SliceSource[E]{s: s}
}

// Next implements [Iterator].
func (s *SliceSource[E]) Next() (E, bool) {
	if len(s.s) == 0 {
		var zero E
		return zero, false
	}
	v := s.s[0]
	s.s = s.s[1:]
	return v, true
}

// NextBack implements [DoubleEnded].
func (s *SliceSource[E]) NextBack() (E, bool) {
	if len(s.s) == 0 {
		var zero E
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

// Len implements [Sized].
func (s *SliceSource[E]) Len() int {
	return len(s.s)
}

// Skip implements [Skipper].
func (s *SliceSource[E]) Skip(n int) int {
	n = min(n, len(s.s))
	if n < 0 {
		n = 0
	}
	s.s = s.s[n:]
	return n
}

// PointerSource is like [SliceSource], but yields pointers to the
// slice's elements, so mutations through a yielded pointer are visible
// in the original slice.
type PointerSource[E any] struct {
	s []E
}

// Pointers returns a source over pointers to the elements of s.
func Pointers[E any](s []E) *PointerSource[E] {
	return &PointerSource[E]{s: s}
}

// Next implements [Iterator].
func (s *PointerSource[E]) Next() (*E, bool) {
	if len(s.s) == 0 {
		return nil, false
	}
	v := &s.s[0]
	s.s = s.s[1:]
	return v, true
}

// NextBack implements [DoubleEnded].
func (s *PointerSource[E]) NextBack() (*E, bool) {
	if len(s.s) == 0 {
		return nil, false
	}
	v := &s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

// Len implements [Sized].
func (s *PointerSource[E]) Len() int {
	return len(s.s)
}

// Skip implements [Skipper].
func (s *PointerSource[E]) Skip(n int) int {
	n = min(n, len(s.s))
	if n < 0 {
		n = 0
	}
	s.s = s.s[n:]
	return n
}

// SeqSource is an [Iterator] over an [iter.Seq]. It is deliberately
// minimal: no optional capability, which makes it useful for exercising
// sources that can only step forward.
type SeqSource[E any] struct {
	next func() (E, bool)
	stop func()
}

// FromSeq returns a forward-only source over seq, backed by [iter.Pull].
//
// Callers that do not fully drain the source should call [SeqSource.Stop]
// to release the underlying coroutine.
func FromSeq[E any](seq iter.Seq[E]) *SeqSource[E] {
	next, stop := iter.Pull(seq)
	return &SeqSource[E]{next: next, stop: stop}
}

// Next implements [Iterator].
func (s *SeqSource[E]) Next() (E, bool) {
	return s.next()
}

// Stop releases the underlying coroutine. Next reports exhaustion after
// Stop. Stop may be called more than once.
func (s *SeqSource[E]) Stop() {
	s.stop()
}
