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

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Bits is a fixed-size set of dirty Bit values.
// The zero value is an empty set. Copies share storage; use Clone for an
// independent copy.
type Bits struct {
	set *bitset.BitSet
}

// New returns a set holding the given bits.
func New(bits ...Bit) Bits {
	out := Bits{set: bitset.New(uint(BitCount))}
	for _, b := range bits {
		out.set.Set(uint(b))
	}
	return out
}

// All returns a set holding every bit.
func All() Bits {
	out := New()
	out.set.FlipRange(0, uint(BitCount))
	return out
}

func (b *Bits) bits() *bitset.BitSet {
	if b.set == nil {
		b.set = bitset.New(uint(BitCount))
	}
	return b.set
}

// Set adds bit to the set.
func (b *Bits) Set(bit Bit) { b.bits().Set(uint(bit)) }

// Clear removes bit from the set.
func (b *Bits) Clear(bit Bit) { b.bits().Clear(uint(bit)) }

// Test returns true if bit is in the set.
func (b Bits) Test(bit Bit) bool { return b.set != nil && b.set.Test(uint(bit)) }

// Any returns true if the set is not empty.
func (b Bits) Any() bool { return b.set != nil && b.set.Any() }

// None returns true if the set is empty.
func (b Bits) None() bool { return !b.Any() }

// Count returns the number of bits in the set.
func (b Bits) Count() int {
	if b.set == nil {
		return 0
	}
	return int(b.set.Count())
}

// Clone returns an independent copy of the set.
func (b Bits) Clone() Bits {
	if b.set == nil {
		return New()
	}
	return Bits{set: b.set.Clone()}
}

// Union adds every bit of o to the set.
func (b *Bits) Union(o Bits) {
	if o.set != nil {
		b.bits().InPlaceUnion(o.set)
	}
}

// Intersect removes every bit that is not in o.
func (b *Bits) Intersect(o Bits) {
	if o.set == nil {
		b.Reset()
		return
	}
	b.bits().InPlaceIntersection(o.set)
}

// ClearMask removes every bit of mask from the set.
func (b *Bits) ClearMask(mask Bits) {
	if mask.set != nil {
		b.bits().InPlaceDifference(mask.set)
	}
}

// Reset removes every bit from the set.
func (b *Bits) Reset() { b.bits().ClearAll() }

// Equal returns true if both sets hold the same bits.
func (b Bits) Equal(o Bits) bool {
	if b.None() || o.None() {
		return b.None() == o.None()
	}
	return b.set.SymmetricDifferenceCardinality(o.set) == 0
}

// Slice returns the bits of the set in ascending order.
func (b Bits) Slice() []Bit {
	out := []Bit{}
	if b.set == nil {
		return out
	}
	for i, ok := b.set.NextSet(0); ok; i, ok = b.set.NextSet(i + 1) {
		out = append(out, Bit(i))
	}
	return out
}

func (b Bits) String() string {
	bits := b.Slice()
	names := make([]string, len(bits))
	for i, bit := range bits {
		names[i] = bit.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// Iterator visits the bits of a set in ascending order. Bits added with
// SetLater ahead of the cursor are visited in the same pass.
type Iterator struct {
	pending *bitset.BitSet
	cursor  Bit
}

// Iterator returns an iterator over a snapshot of the set.
func (b Bits) Iterator() *Iterator {
	return &Iterator{pending: b.Clone().set, cursor: -1}
}

// Next returns the lowest pending bit after the cursor and moves the cursor
// to it. It returns false when no bits remain.
func (it *Iterator) Next() (Bit, bool) {
	i, ok := it.pending.NextSet(uint(it.cursor + 1))
	if !ok || i >= uint(BitCount) {
		it.cursor = BitCount
		return BitCount, false
	}
	it.cursor = Bit(i)
	return it.cursor, true
}

// SetLater schedules bit to be visited later in this pass. It has no effect
// and returns false if bit is at or behind the cursor.
func (it *Iterator) SetLater(bit Bit) bool {
	if bit <= it.cursor || bit >= BitCount {
		return false
	}
	it.pending.Set(uint(bit))
	return true
}
