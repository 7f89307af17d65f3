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

package dirty_test

import (
	"testing"

	"github.com/google/glsync/core/assert"
	"github.com/google/glsync/gl/dirty"
)

func TestBitOrder(t *testing.T) {
	assert := assert.To(t)
	ordered := []dirty.Bit{
		dirty.DrawFramebufferBinding,
		dirty.ProgramBinding,
		dirty.ProgramExecutable,
		dirty.TextureBindings,
		dirty.SamplerBindings,
		dirty.ImageBindings,
		dirty.TransformFeedbackBinding,
		dirty.UniformBufferBindings,
		dirty.ShaderStorageBufferBinding,
		dirty.AtomicCounterBufferBinding,
	}
	for i := 1; i < len(ordered); i++ {
		assert.For("%v < %v", ordered[i-1], ordered[i]).
			ThatBoolean(ordered[i-1] < ordered[i]).IsTrue()
	}
	for b := dirty.Bit(0); b < dirty.BitCount; b++ {
		assert.For("name of %d", int(b)).ThatString(b.String()).DoesNotContain("Bit<")
	}
}

func TestBits(t *testing.T) {
	assert := assert.To(t)

	var zero dirty.Bits
	assert.For("zero none").ThatBoolean(zero.None()).IsTrue()
	assert.For("zero count").ThatInteger(zero.Count()).Equals(0)
	zero.Set(dirty.Viewport)
	assert.For("zero set").ThatBoolean(zero.Test(dirty.Viewport)).IsTrue()

	b := dirty.New(dirty.Scissor, dirty.BlendFuncs)
	assert.For("test").ThatBoolean(b.Test(dirty.Scissor)).IsTrue()
	assert.For("not set").ThatBoolean(b.Test(dirty.Viewport)).IsFalse()

	c := b.Clone()
	c.Set(dirty.Viewport)
	assert.For("clone independent").ThatBoolean(b.Test(dirty.Viewport)).IsFalse()

	c.Union(dirty.New(dirty.CurrentValues))
	assert.For("union").ThatSlice(c.Slice()).Equals([]dirty.Bit{
		dirty.Scissor, dirty.Viewport, dirty.BlendFuncs, dirty.CurrentValues,
	})

	c.Intersect(dirty.New(dirty.Viewport, dirty.CurrentValues, dirty.ClearColor))
	assert.For("intersect").ThatSlice(c.Slice()).Equals([]dirty.Bit{dirty.Viewport, dirty.CurrentValues})

	c.ClearMask(dirty.New(dirty.Viewport))
	assert.For("clear mask").ThatSlice(c.Slice()).Equals([]dirty.Bit{dirty.CurrentValues})
	assert.For("string").ThatString(c.String()).Equals("{CurrentValues}")

	all := dirty.All()
	assert.For("all").ThatInteger(all.Count()).Equals(int(dirty.BitCount))
	all.Reset()
	assert.For("reset").ThatBoolean(all.None()).IsTrue()

	assert.For("equal").ThatBoolean(dirty.New(dirty.Scissor).Equal(dirty.New(dirty.Scissor))).IsTrue()
	assert.For("empty equal").ThatBoolean(dirty.Bits{}.Equal(dirty.New())).IsTrue()
	assert.For("not equal").ThatBoolean(dirty.New(dirty.Scissor).Equal(dirty.New())).IsFalse()
}

func TestIterator(t *testing.T) {
	assert := assert.To(t)
	b := dirty.New(dirty.ProgramBinding, dirty.AtomicCounterBufferBinding)
	it := b.Iterator()
	visited := []dirty.Bit{}
	for bit, ok := it.Next(); ok; bit, ok = it.Next() {
		visited = append(visited, bit)
		if bit == dirty.ProgramBinding {
			assert.For("ahead").ThatBoolean(it.SetLater(dirty.TextureBindings)).IsTrue()
			assert.For("current").ThatBoolean(it.SetLater(dirty.ProgramBinding)).IsFalse()
			assert.For("behind").ThatBoolean(it.SetLater(dirty.Scissor)).IsFalse()
		}
	}
	assert.For("visited").ThatSlice(visited).Equals([]dirty.Bit{
		dirty.ProgramBinding, dirty.TextureBindings, dirty.AtomicCounterBufferBinding,
	})
	assert.For("source untouched").ThatBoolean(b.Test(dirty.TextureBindings)).IsFalse()
}

func TestMultiviewBits(t *testing.T) {
	assert := assert.To(t)
	var b dirty.MultiviewBits
	assert.For("empty").ThatBoolean(b.Any()).IsFalse()
	b.Set(dirty.MultiviewViewportOffsets)
	b.Set(dirty.MultiviewSideBySideLayout)
	got := []dirty.MultiviewBit{}
	b.Each(func(bit dirty.MultiviewBit) { got = append(got, bit) })
	assert.For("each").ThatSlice(got).Equals([]dirty.MultiviewBit{
		dirty.MultiviewSideBySideLayout, dirty.MultiviewViewportOffsets,
	})
	b.Reset()
	assert.For("reset").ThatBoolean(b.Any()).IsFalse()
}
