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

// Package zipclone pairs a sequence with repeated clones of one value,
// making one fewer clone than pairing with a stream of fresh clones would.
//
// Given a source of n values and a single value to pair them with, the
// naive approach clones once per pair. [Zip] instead holds a single
// current copy and defers each clone until it is certain another pair
// will be needed: the final pair receives the original value as is, so a
// full traversal clones exactly n-1 times, and operations that consume
// the sequence without handing out further copies, such as [Zip.Count]
// and [Zip.Last], clone zero times. This matters whenever the clone is
// expensive, such as a large buffer or map seeded into every element of
// a batch.
//
//	zip := zipclone.New(zipclone.FromSlice(items), template, cloneTemplate)
//	for item, tmpl := range zip.All() {
//		process(item, tmpl)
//	}
//
// Sources are pull-style [Iterator] values. Richer sources may implement
// the additive capabilities [DoubleEnded], [Sized], and [Skipper], each
// of which unlocks further operations: back-end traversal and search,
// exact size reporting, and bulk skipping. [FromSlice] implements all of
// them; [FromSeq] adapts a range-over-func sequence and deliberately
// implements none, so it only steps forward.
//
// A Zip exclusively owns its source and its held value, and is
// single-threaded: no operation blocks, and each call's effects are
// fully applied before it returns. Once any production operation reports
// exhaustion, the Zip is permanently exhausted, and every later call
// reports the same.
package zipclone
