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

// Iterator is a pull-style source of values.
//
// This is the only capability a source must have. Richer sources may
// additionally implement [DoubleEnded], [Sized], or [Skipper]; each is
// checked for independently, so a source implements exactly the subset
// that makes sense for it.
type Iterator[T any] interface {
	// Next produces the next value, or reports that the source is
	// exhausted. Once Next returns false it must keep returning false.
	Next() (value T, ok bool)
}

// DoubleEnded is an [Iterator] that can also produce values from its back
// end. The two ends consume the same underlying values: once Next and
// NextBack meet, both report exhaustion.
type DoubleEnded[T any] interface {
	Iterator[T]

	// NextBack produces the last remaining value, or reports that the
	// source is exhausted.
	NextBack() (value T, ok bool)
}

// Sized is an [Iterator] that knows exactly how many values remain.
type Sized[T any] interface {
	Iterator[T]

	// Len returns the number of values Next has yet to produce. It does
	// not consume anything.
	Len() int
}

// Skipper is an [Iterator] that can discard values in bulk, without
// producing them.
type Skipper[T any] interface {
	Iterator[T]

	// Skip discards up to n values from the front and returns how many
	// were actually discarded; fewer than n means the source is now
	// exhausted.
	Skip(n int) int
}

// Cloner is a value that can produce an independent copy of itself.
//
// Clone must not mutate the receiver, and the copy must be equivalent to
// but independent from the original. For value types with no reference
// fields, returning the receiver is enough:
//
//	func (u User) Clone() User { return u }
type Cloner[C any] interface {
	Clone() C
}
