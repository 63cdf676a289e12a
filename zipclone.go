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

// Zip pairs the values of a source with repeated clones of a single
// value, cloning as few times as possible.
//
// One production returns the original value, so a full traversal of n
// values clones exactly n-1 times, one fewer than pairing with a stream
// of fresh clones would. Operations that never look at the paired value,
// such as [Zip.Count], and operations after which nothing remains, such
// as [Zip.Last], do not clone at all.
//
// Zip exclusively owns its source and its held value. It is not safe for
// concurrent use.
type Zip[T, C any] struct {
	src   *peeker[T]
	clone func(C) C

	// The held value waiting to be paired with the next production.
	// Empties permanently the first time a production observes that
	// nothing remains; after that, every operation reports exhaustion.
	held C
	ok   bool
}

// New returns a Zip pairing the values of src with clones of value, made
// with clone. No clone is made up front; the first pair produced carries
// value itself if it is also the last, and a clone of it otherwise.
func New[T, C any](src Iterator[T], value C, clone func(C) C) *Zip[T, C] {
	return &Zip[T, C]{
		src:   &peeker[T]{src: src},
		clone: clone,
		held:  value,
		ok:    true,
	}
}

// NewCloner is [New] for values that clone themselves.
func NewCloner[T any, C Cloner[C]](src Iterator[T], value C) *Zip[T, C] {
	return New(src, value, C.Clone)
}

// take removes the held value and, if anything remains to consume it
// later, refills the slot with a fresh clone. The removal and refill
// happen within one call so no two copies are ever held at once.
func (z *Zip[T, C]) take() C {
	held := z.held
	if z.src.more() {
		z.held = z.clone(held)
	} else {
		z.drop()
	}
	return held
}

// drop empties the held slot. There is no way back.
func (z *Zip[T, C]) drop() {
	var zero C
	z.held, z.ok = zero, false
}

// Next produces the next pair, or reports that the sequence is exhausted.
func (z *Zip[T, C]) Next() (T, C, bool) {
	if !z.ok {
		var zeroT T
		var zeroC C
		return zeroT, zeroC, false
	}
	v, ok := z.src.next()
	if !ok {
		z.drop()
		var zeroT T
		var zeroC C
		return zeroT, zeroC, false
	}
	return v, z.take(), true
}

// NextBack produces the pair for the last remaining source value.
//
// Whether more clones are needed is still decided by whether anything at
// all remains, so alternating Next and NextBack keeps the n-1 clone
// bound. Reports exhaustion if the source is not [DoubleEnded].
func (z *Zip[T, C]) NextBack() (T, C, bool) {
	if !z.ok || !z.src.backCapable() {
		var zeroT T
		var zeroC C
		return zeroT, zeroC, false
	}
	v, ok := z.src.nextBack()
	if !ok {
		z.drop()
		var zeroT T
		var zeroC C
		return zeroT, zeroC, false
	}
	return v, z.take(), true
}

// Nth discards n source values from the front, then produces the pair
// for the one after them, advancing n+1 values in total. The discarded
// values are never paired and cost no clones. Reports exhaustion if
// fewer than n+1 values remain; n < 0 produces nothing and consumes
// nothing.
func (z *Zip[T, C]) Nth(n int) (T, C, bool) {
	var zeroT T
	var zeroC C
	if !z.ok || n < 0 {
		return zeroT, zeroC, false
	}
	if z.src.skip(n) < n {
		z.drop()
		return zeroT, zeroC, false
	}
	return z.Next()
}

// NthBack is [Zip.Nth] from the back end: it discards n source values
// from the back, then produces the pair for the next one in. Reports
// exhaustion if the source is not [DoubleEnded].
func (z *Zip[T, C]) NthBack(n int) (T, C, bool) {
	var zeroT T
	var zeroC C
	if !z.ok || n < 0 || !z.src.backCapable() {
		return zeroT, zeroC, false
	}
	if z.src.skipBack(n) < n {
		z.drop()
		return zeroT, zeroC, false
	}
	return z.NextBack()
}

// Find produces the pair for the first source value for which p returns
// true, searching from the front.
//
// Candidates are tested against the currently held value; the refill
// decision is made once, after a match, so an entire search clones at
// most once no matter how far it scans, and not at all if the match is
// the last value or there is no match. An unsuccessful search consumes
// the whole source.
func (z *Zip[T, C]) Find(p func(T, C) bool) (T, C, bool) {
	return z.find(p, (*peeker[T]).next)
}

// FindBack is [Zip.Find] searching from the back. Reports exhaustion if
// the source is not [DoubleEnded].
func (z *Zip[T, C]) FindBack(p func(T, C) bool) (T, C, bool) {
	if !z.src.backCapable() {
		var zeroT T
		var zeroC C
		return zeroT, zeroC, false
	}
	return z.find(p, (*peeker[T]).nextBack)
}

func (z *Zip[T, C]) find(p func(T, C) bool, step func(*peeker[T]) (T, bool)) (T, C, bool) {
	for z.ok {
		v, ok := step(z.src)
		if !ok {
			break
		}
		if p(v, z.held) {
			return v, z.take(), true
		}
	}
	z.drop()
	var zeroT T
	var zeroC C
	return zeroT, zeroC, false
}

// Count consumes the rest of the sequence and returns how many pairs it
// would have produced, discarding the held value without ever cloning it.
func (z *Zip[T, C]) Count() int {
	if !z.ok {
		return 0
	}
	z.drop()
	return z.src.count()
}

// Last consumes the rest of the sequence and produces its final pair.
// Nothing remains afterward, so the held value is handed over as is,
// without cloning.
func (z *Zip[T, C]) Last() (T, C, bool) {
	var zeroC C
	if !z.ok {
		var zeroT T
		return zeroT, zeroC, false
	}
	v, found := z.src.last()
	if !found {
		z.drop()
		return v, zeroC, false
	}
	held := z.held
	z.drop()
	return v, held, true
}

// Len returns the exact number of pairs remaining, when known. Exhausted
// Zips always know: zero. Otherwise exactness requires a [Sized] source.
func (z *Zip[T, C]) Len() (n int, exact bool) {
	if !z.ok {
		return 0, true
	}
	return z.src.len()
}

// All returns an iterator over the remaining pairs. Every yielded pair
// goes through [Zip.Next], so the clone accounting is unchanged, and
// breaking out early leaves the Zip usable where it stopped.
func (z *Zip[T, C]) All() iter.Seq2[T, C] {
	return func(yield func(T, C) bool) {
		for {
			v, c, ok := z.Next()
			if !ok || !yield(v, c) {
				return
			}
		}
	}
}
