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

// peeker wraps an [Iterator] while adding one value of lookahead, which
// allows asking whether a next value exists without consuming it.
//
// The buffered value, when present, is always the frontmost remaining
// value; back-end operations fall back to it only once the wrapped source
// is drained. Optional capabilities of the wrapped source are forwarded
// with the buffer accounted for.
type peeker[T any] struct {
	src    Iterator[T]
	buf    T
	buffed bool
}

// next produces the next value from the front.
func (p *peeker[T]) next() (T, bool) {
	if p.buffed {
		v := p.buf
		var zero T
		p.buf, p.buffed = zero, false
		return v, true
	}
	return p.src.Next()
}

// more reports whether at least one value remains, pulling one into the
// buffer if needed.
func (p *peeker[T]) more() bool {
	if p.buffed {
		return true
	}
	p.buf, p.buffed = p.src.Next()
	return p.buffed
}

// nextBack produces the next value from the back end. The buffered front
// value is the last to go. Returns false if the wrapped source is not
// [DoubleEnded].
func (p *peeker[T]) nextBack() (T, bool) {
	de, ok := p.src.(DoubleEnded[T])
	if !ok {
		var zero T
		return zero, false
	}
	if v, ok := de.NextBack(); ok {
		return v, true
	}
	if p.buffed {
		v := p.buf
		var zero T
		p.buf, p.buffed = zero, false
		return v, true
	}
	var zero T
	return zero, false
}

// backCapable reports whether back-end operations are available.
func (p *peeker[T]) backCapable() bool {
	_, ok := p.src.(DoubleEnded[T])
	return ok
}

// skip discards up to n values from the front and returns how many were
// discarded, using the source's own bulk skip when it has one.
func (p *peeker[T]) skip(n int) int {
	var k int
	if p.buffed && k < n {
		var zero T
		p.buf, p.buffed = zero, false
		k++
	}
	if sk, ok := p.src.(Skipper[T]); ok {
		return k + sk.Skip(n-k)
	}
	for k < n {
		if _, ok := p.src.Next(); !ok {
			break
		}
		k++
	}
	return k
}

// skipBack discards up to n values from the back and returns how many
// were discarded. Requires the source to be [DoubleEnded]; reports zero
// otherwise, which callers distinguish via backCapable.
func (p *peeker[T]) skipBack(n int) int {
	de, ok := p.src.(DoubleEnded[T])
	if !ok {
		return 0
	}
	var k int
	for k < n {
		if _, ok := de.NextBack(); ok {
			k++
			continue
		}
		if !p.buffed {
			break
		}
		var zero T
		p.buf, p.buffed = zero, false
		k++
	}
	return k
}

// len returns the exact number of values remaining, if the wrapped source
// reports one.
func (p *peeker[T]) len() (int, bool) {
	sz, ok := p.src.(Sized[T])
	if !ok {
		return 0, false
	}
	n := sz.Len()
	if p.buffed {
		n++
	}
	return n, true
}

// count consumes everything that remains and returns how many values
// there were. Sized sources are not stepped through.
func (p *peeker[T]) count() int {
	var n int
	if p.buffed {
		var zero T
		p.buf, p.buffed = zero, false
		n++
	}
	if sz, ok := p.src.(Sized[T]); ok {
		return n + sz.Len()
	}
	for {
		if _, ok := p.src.Next(); !ok {
			return n
		}
		n++
	}
}

// last consumes everything that remains and returns the final value.
func (p *peeker[T]) last() (T, bool) {
	last, found := p.next()
	if !found {
		return last, false
	}
	for {
		v, ok := p.src.Next()
		if !ok {
			return last, true
		}
		last = v
	}
}
