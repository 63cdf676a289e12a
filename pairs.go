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

// Pairs returns an iterator pairing the values of src with clones of
// value, made with clone. It is shorthand for [New] followed by
// [Zip.All], with the same clone accounting: n values cost n-1 clones.
func Pairs[T, C any](src Iterator[T], value C, clone func(C) C) iter.Seq2[T, C] {
	return New(src, value, clone).All()
}

// PairsCloner is [Pairs] for values that clone themselves.
func PairsCloner[T any, C Cloner[C]](src Iterator[T], value C) iter.Seq2[T, C] {
	return New(src, value, C.Clone).All()
}
