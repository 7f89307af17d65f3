// Copyright (C) 2017 Google Inc.
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

package dirty

import "github.com/bits-and-blooms/bitset"

// MultiviewBit is a state category derived from the multiview layout of the
// draw framebuffer. These are resolved before every other bit.
type MultiviewBit int

const (
	MultiviewSideBySideLayout MultiviewBit = iota
	MultiviewViewportOffsets

	// MultiviewBitCount is the number of multiview bits.
	MultiviewBitCount
)

func (b MultiviewBit) String() string {
	switch b {
	case MultiviewSideBySideLayout:
		return "SideBySideLayout"
	case MultiviewViewportOffsets:
		return "ViewportOffsets"
	default:
		return "MultiviewBit<?>"
	}
}

// MultiviewBits is a set of MultiviewBit values.
type MultiviewBits struct {
	set bitset.BitSet
}

// Set adds bit to the set.
func (b *MultiviewBits) Set(bit MultiviewBit) { b.set.Set(uint(bit)) }

// Test returns true if bit is in the set.
func (b *MultiviewBits) Test(bit MultiviewBit) bool { return b.set.Test(uint(bit)) }

// Any returns true if the set is not empty.
func (b *MultiviewBits) Any() bool { return b.set.Any() }

// Reset removes every bit from the set.
func (b *MultiviewBits) Reset() { b.set.ClearAll() }

// Each calls f for every bit in the set, in ascending order.
func (b *MultiviewBits) Each(f func(MultiviewBit)) {
	for i, ok := b.set.NextSet(0); ok; i, ok = b.set.NextSet(i + 1) {
		f(MultiviewBit(i))
	}
}
