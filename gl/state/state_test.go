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

package state_test

import (
	"testing"

	"github.com/google/glsync/core/assert"
	"github.com/google/glsync/gl"
	"github.com/google/glsync/gl/dirty"
	"github.com/google/glsync/gl/state"
)

type id uint32

func (i id) NativeID() uint32 { return uint32(i) }

func TestNewState(t *testing.T) {
	assert := assert.To(t)
	caps := gl.DefaultCaps()
	s := state.New(caps)
	assert.For("all dirty").ThatInteger(s.DirtyBits().Count()).Equals(int(dirty.BitCount))
	assert.For("blend").That(s.Blend).Equals(state.DefaultBlendState())
	assert.For("depth stencil").That(s.DepthStencil).Equals(state.DefaultDepthStencilState())
	assert.For("units").ThatSlice(s.SamplerTextures[gl.TextureType2D]).IsLength(caps.MaxCombinedTextureImageUnits)
	assert.For("sample mask").That(s.SampleMaskWords[0]).Equals(^uint32(0))
	assert.For("attrib").That(s.VertexAttribCurrentValues[3]).Equals(gl.DefaultVertexAttribCurrentValue)
	assert.For("image unit").That(s.ImageUnits[0].Format).Equals(gl.GLenum_GL_R32UI)
}

func TestSettersMarkDirty(t *testing.T) {
	assert := assert.To(t)
	s := state.New(gl.DefaultCaps())
	for _, test := range []struct {
		name string
		set  func()
		bit  dirty.Bit
	}{
		{"scissor", func() { s.SetScissor(gl.Rectangle{Width: 4}) }, dirty.Scissor},
		{"blend funcs", func() { s.SetBlendFuncs(gl.GLenum_GL_ONE, gl.GLenum_GL_ONE, gl.GLenum_GL_ONE, gl.GLenum_GL_ONE) }, dirty.BlendFuncs},
		{"stencil back", func() { s.SetStencilBackOps(gl.GLenum_GL_ZERO, gl.GLenum_GL_KEEP, gl.GLenum_GL_KEEP) }, dirty.StencilOpsBack},
		{"unpack buffer", func() { s.SetBuffer(gl.BufferBindingPixelUnpack, &state.Buffer{}) }, dirty.UnpackBufferBinding},
		{"uniform", func() { s.SetIndexedBuffer(gl.BufferBindingUniform, 1, state.OffsetBuffer{}) }, dirty.UniformBufferBindings},
		{"program", func() { s.SetProgram(&state.Program{}) }, dirty.ProgramBinding},
		{"relink", func() { s.OnProgramRelinked() }, dirty.ProgramExecutable},
		{"texture", func() { s.SetSamplerTexture(2, gl.TextureType3D, &state.Texture{}) }, dirty.TextureBindings},
		{"draw fb", func() { s.SetDrawFramebuffer(&state.Framebuffer{}) }, dirty.DrawFramebufferBinding},
		{"srgb", func() { s.SetFramebufferSRGB(true) }, dirty.FramebufferSRGB},
	} {
		s.DirtyBits().Reset()
		test.set()
		assert.For(test.name).ThatSlice(s.DirtyBits().Slice()).Equals([]dirty.Bit{test.bit})
	}

	s.DirtyBits().Reset()
	s.SetBuffer(gl.BufferBindingArray, &state.Buffer{})
	assert.For("array buffer").ThatBoolean(s.DirtyBits().None()).IsTrue()
}

func TestCurrentValues(t *testing.T) {
	assert := assert.To(t)
	s := state.New(gl.DefaultCaps())
	assert.For("initially clean").ThatInteger(int(s.TakeDirtyCurrentValues().Count())).Equals(0)

	s.SetVertexAttribf(1, [4]float32{1, 2, 3, 4})
	s.SetVertexAttribIu(5, [4]uint32{7, 0, 0, 1})
	assert.For("bit").ThatBoolean(s.DirtyBits().Test(dirty.CurrentValues)).IsTrue()
	assert.For("type").That(s.VertexAttribCurrentValues[5].Type).Equals(gl.VertexAttribTypeUnsignedInt)

	taken := s.TakeDirtyCurrentValues()
	assert.For("taken").ThatInteger(int(taken.Count())).Equals(2)
	assert.For("attr 1").ThatBoolean(taken.Test(1)).IsTrue()
	assert.For("attr 5").ThatBoolean(taken.Test(5)).IsTrue()
	assert.For("cleared").ThatInteger(int(s.TakeDirtyCurrentValues().Count())).Equals(0)
}

func TestObjects(t *testing.T) {
	assert := assert.To(t)
	var nilTex *state.Texture
	assert.For("nil texture").That(nilTex.NativeID()).Equals(uint32(0))
	assert.For("no impl").That((&state.Buffer{}).NativeID()).Equals(uint32(0))
	assert.For("texture").That((&state.Texture{Impl: id(7)}).NativeID()).Equals(uint32(7))

	s := state.New(gl.DefaultCaps())
	tex := &state.Texture{Type: gl.TextureType2D, Impl: id(7)}
	s.SetSamplerTexture(0, gl.TextureType2D, tex)
	assert.For("sampler texture").That(s.SamplerTexture(0, gl.TextureType2D)).Equals(tex)
	assert.For("out of range").That(s.SamplerTexture(1000, gl.TextureType2D)).IsNil()

	fb := &state.Framebuffer{MultiviewLayout: gl.MultiviewLayoutSideBySide}
	assert.For("side by side").ThatBoolean(fb.IsSideBySide()).IsTrue()
	var nilFB *state.Framebuffer
	assert.For("nil side by side").ThatBoolean(nilFB.IsSideBySide()).IsFalse()
}

func TestTransformFeedbackBuffers(t *testing.T) {
	assert := assert.To(t)
	s := state.New(gl.DefaultCaps())
	s.SetIndexedBuffer(gl.BufferBindingTransformFeedback, 0, state.OffsetBuffer{})
	assert.For("unbound tf").ThatSlice(s.IndexedBuffers(gl.BufferBindingTransformFeedback)).IsEmpty()

	tf := &state.TransformFeedback{}
	s.SetTransformFeedback(tf)
	buf := &state.Buffer{Impl: id(3)}
	s.SetIndexedBuffer(gl.BufferBindingTransformFeedback, 2, state.OffsetBuffer{Buffer: buf, Size: 16})
	assert.For("grown").ThatSlice(tf.IndexedBuffers).IsLength(3)
	assert.For("buffer").That(tf.IndexedBuffers[2].Buffer).Equals(buf)

	prog := &state.Program{}
	s.SetProgram(prog)
	s.BeginTransformFeedback(gl.GLenum_GL_TRIANGLES)
	assert.For("active").ThatBoolean(tf.Active).IsTrue()
	assert.For("program").That(tf.Program).Equals(prog)
	s.SetTransformFeedbackPaused(true)
	assert.For("paused").ThatBoolean(tf.Paused).IsTrue()
	s.EndTransformFeedback()
	assert.For("ended").ThatBoolean(tf.Active || tf.Paused).IsFalse()
}
