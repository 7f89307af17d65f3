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

package state

import (
	"github.com/google/glsync/gl"
	"github.com/google/glsync/gl/dirty"
)

func (s *State) SetScissorTest(enabled bool) {
	s.ScissorTest = enabled
	s.dirty.Set(dirty.ScissorTestEnabled)
}

func (s *State) SetScissor(r gl.Rectangle) {
	s.Scissor = r
	s.dirty.Set(dirty.Scissor)
}

func (s *State) SetViewport(r gl.Rectangle) {
	s.Viewport = r
	s.dirty.Set(dirty.Viewport)
}

func (s *State) SetDepthRange(near, far float32) {
	s.NearZ, s.FarZ = near, far
	s.dirty.Set(dirty.DepthRange)
}

func (s *State) SetBlendEnabled(enabled bool) {
	s.Blend.Enabled = enabled
	s.dirty.Set(dirty.BlendEnabled)
}

func (s *State) SetBlendColor(c gl.ColorF) {
	s.BlendColor = c
	s.dirty.Set(dirty.BlendColor)
}

func (s *State) SetBlendFuncs(srcRGB, dstRGB, srcAlpha, dstAlpha gl.GLenum) {
	s.Blend.SrcRGB, s.Blend.DstRGB = srcRGB, dstRGB
	s.Blend.SrcAlpha, s.Blend.DstAlpha = srcAlpha, dstAlpha
	s.dirty.Set(dirty.BlendFuncs)
}

func (s *State) SetBlendEquations(rgb, alpha gl.GLenum) {
	s.Blend.EquationRGB, s.Blend.EquationAlpha = rgb, alpha
	s.dirty.Set(dirty.BlendEquations)
}

func (s *State) SetColorMask(red, green, blue, alpha bool) {
	s.Blend.ColorMaskRed, s.Blend.ColorMaskGreen = red, green
	s.Blend.ColorMaskBlue, s.Blend.ColorMaskAlpha = blue, alpha
	s.dirty.Set(dirty.ColorMask)
}

func (s *State) SetSampleAlphaToCoverage(enabled bool) {
	s.SampleAlphaToCoverage = enabled
	s.dirty.Set(dirty.SampleAlphaToCoverageEnabled)
}

func (s *State) SetSampleCoverageEnabled(enabled bool) {
	s.SampleCoverageEnabled = enabled
	s.dirty.Set(dirty.SampleCoverageEnabled)
}

func (s *State) SetSampleCoverage(value float32, invert bool) {
	s.SampleCoverageValue, s.SampleCoverageInvert = value, invert
	s.dirty.Set(dirty.SampleCoverage)
}

func (s *State) SetSampleMaskEnabled(enabled bool) {
	s.SampleMaskEnabled = enabled
	s.dirty.Set(dirty.SampleMaskEnabled)
}

// SetSampleMaskWord sets one 32 bit word of the sample mask.
func (s *State) SetSampleMaskWord(word int, mask uint32) {
	s.SampleMaskWords[word] = mask
	s.dirty.Set(dirty.SampleMask)
}

func (s *State) SetDepthTest(enabled bool) {
	s.DepthStencil.DepthTest = enabled
	s.dirty.Set(dirty.DepthTestEnabled)
}

func (s *State) SetDepthFunc(fn gl.GLenum) {
	s.DepthStencil.DepthFunc = fn
	s.dirty.Set(dirty.DepthFunc)
}

func (s *State) SetDepthMask(mask bool) {
	s.DepthStencil.DepthMask = mask
	s.dirty.Set(dirty.DepthMask)
}

func (s *State) SetStencilTest(enabled bool) {
	s.DepthStencil.StencilTest = enabled
	s.dirty.Set(dirty.StencilTestEnabled)
}

func (s *State) SetStencilFrontFunc(fn gl.GLenum, ref int32, mask uint32) {
	f := &s.DepthStencil.Front
	f.Func, f.Ref, f.ValueMask = fn, ref, mask
	s.dirty.Set(dirty.StencilFuncsFront)
}

func (s *State) SetStencilBackFunc(fn gl.GLenum, ref int32, mask uint32) {
	b := &s.DepthStencil.Back
	b.Func, b.Ref, b.ValueMask = fn, ref, mask
	s.dirty.Set(dirty.StencilFuncsBack)
}

func (s *State) SetStencilFrontOps(fail, depthFail, depthPass gl.GLenum) {
	f := &s.DepthStencil.Front
	f.Fail, f.PassDepthFail, f.PassDepthPass = fail, depthFail, depthPass
	s.dirty.Set(dirty.StencilOpsFront)
}

func (s *State) SetStencilBackOps(fail, depthFail, depthPass gl.GLenum) {
	b := &s.DepthStencil.Back
	b.Fail, b.PassDepthFail, b.PassDepthPass = fail, depthFail, depthPass
	s.dirty.Set(dirty.StencilOpsBack)
}

func (s *State) SetStencilFrontWritemask(mask uint32) {
	s.DepthStencil.Front.WriteMask = mask
	s.dirty.Set(dirty.StencilWritemaskFront)
}

func (s *State) SetStencilBackWritemask(mask uint32) {
	s.DepthStencil.Back.WriteMask = mask
	s.dirty.Set(dirty.StencilWritemaskBack)
}

func (s *State) SetCullFaceEnabled(enabled bool) {
	s.Rasterizer.CullFace = enabled
	s.dirty.Set(dirty.CullFaceEnabled)
}

func (s *State) SetCullMode(mode gl.GLenum) {
	s.Rasterizer.CullMode = mode
	s.dirty.Set(dirty.CullFace)
}

func (s *State) SetFrontFace(mode gl.GLenum) {
	s.Rasterizer.FrontFace = mode
	s.dirty.Set(dirty.FrontFace)
}

func (s *State) SetPolygonOffsetFill(enabled bool) {
	s.Rasterizer.PolygonOffsetFill = enabled
	s.dirty.Set(dirty.PolygonOffsetFillEnabled)
}

func (s *State) SetPolygonOffset(factor, units float32) {
	s.Rasterizer.PolygonOffsetFactor, s.Rasterizer.PolygonOffsetUnits = factor, units
	s.dirty.Set(dirty.PolygonOffset)
}

func (s *State) SetRasterizerDiscard(enabled bool) {
	s.Rasterizer.RasterizerDiscard = enabled
	s.dirty.Set(dirty.RasterizerDiscardEnabled)
}

func (s *State) SetDither(enabled bool) {
	s.Rasterizer.Dither = enabled
	s.dirty.Set(dirty.DitherEnabled)
}

func (s *State) SetLineWidth(width float32) {
	s.LineWidth = width
	s.dirty.Set(dirty.LineWidth)
}

func (s *State) SetPrimitiveRestart(enabled bool) {
	s.PrimitiveRestart = enabled
	s.dirty.Set(dirty.PrimitiveRestartEnabled)
}

func (s *State) SetClearColor(c gl.ColorF) {
	s.ClearColor = c
	s.dirty.Set(dirty.ClearColor)
}

func (s *State) SetClearDepth(d float32) {
	s.ClearDepth = d
	s.dirty.Set(dirty.ClearDepth)
}

func (s *State) SetClearStencil(v int32) {
	s.ClearStencil = v
	s.dirty.Set(dirty.ClearStencil)
}

func (s *State) SetUnpackState(u PixelUnpackState) {
	s.Unpack = u
	s.dirty.Set(dirty.UnpackState)
}

func (s *State) SetPackState(p PixelPackState) {
	s.Pack = p
	s.dirty.Set(dirty.PackState)
}

func (s *State) SetGenerateMipmapHint(mode gl.GLenum) {
	s.GenerateMipmapHint = mode
	s.dirty.Set(dirty.GenerateMipmapHint)
}

func (s *State) SetFragmentShaderDerivativeHint(mode gl.GLenum) {
	s.FragmentShaderDerivativeHint = mode
	s.dirty.Set(dirty.ShaderDerivativeHint)
}

func (s *State) SetMultisampling(enabled bool) {
	s.Multisampling = enabled
	s.dirty.Set(dirty.Multisampling)
}

func (s *State) SetSampleAlphaToOne(enabled bool) {
	s.SampleAlphaToOne = enabled
	s.dirty.Set(dirty.SampleAlphaToOne)
}

func (s *State) SetFramebufferSRGB(enabled bool) {
	s.FramebufferSRGB = enabled
	s.dirty.Set(dirty.FramebufferSRGB)
}

func (s *State) SetReadFramebuffer(f *Framebuffer) {
	s.ReadFramebuffer = f
	s.dirty.Set(dirty.ReadFramebufferBinding)
}

func (s *State) SetDrawFramebuffer(f *Framebuffer) {
	s.DrawFramebuffer = f
	s.dirty.Set(dirty.DrawFramebufferBinding)
}

func (s *State) SetRenderbuffer(r *Renderbuffer) {
	s.Renderbuffer = r
	s.dirty.Set(dirty.RenderbufferBinding)
}

func (s *State) SetVertexArray(v *VertexArray) {
	s.VertexArray = v
	s.dirty.Set(dirty.VertexArrayBinding)
}

// SetBuffer binds b to the non-indexed target. Only the targets that are
// synchronised eagerly record a dirty bit; the others are bound on use.
func (s *State) SetBuffer(target gl.BufferBinding, b *Buffer) {
	s.Buffers[target] = b
	switch target {
	case gl.BufferBindingPixelUnpack:
		s.dirty.Set(dirty.UnpackBufferBinding)
	case gl.BufferBindingPixelPack:
		s.dirty.Set(dirty.PackBufferBinding)
	case gl.BufferBindingDrawIndirect:
		s.dirty.Set(dirty.DrawIndirectBufferBinding)
	case gl.BufferBindingDispatchIndirect:
		s.dirty.Set(dirty.DispatchIndirectBufferBinding)
	}
}

// SetIndexedBuffer binds b to the index of an indexed target. Indexed
// binding also replaces the generic binding of the target.
func (s *State) SetIndexedBuffer(target gl.BufferBinding, index int, b OffsetBuffer) {
	s.Buffers[target] = b.Buffer
	switch target {
	case gl.BufferBindingUniform:
		s.UniformBuffers[index] = b
		s.dirty.Set(dirty.UniformBufferBindings)
	case gl.BufferBindingShaderStorage:
		s.ShaderStorageBuffers[index] = b
		s.dirty.Set(dirty.ShaderStorageBufferBinding)
	case gl.BufferBindingAtomicCounter:
		s.AtomicCounterBuffers[index] = b
		s.dirty.Set(dirty.AtomicCounterBufferBinding)
	case gl.BufferBindingTransformFeedback:
		if tf := s.TransformFeedback; tf != nil {
			for len(tf.IndexedBuffers) <= index {
				tf.IndexedBuffers = append(tf.IndexedBuffers, OffsetBuffer{})
			}
			tf.IndexedBuffers[index] = b
			s.dirty.Set(dirty.TransformFeedbackBinding)
		}
	}
}

func (s *State) SetProgram(p *Program) {
	s.Program = p
	s.dirty.Set(dirty.ProgramBinding)
}

// OnProgramRelinked records that the executable of the current program
// changed.
func (s *State) OnProgramRelinked() {
	s.dirty.Set(dirty.ProgramExecutable)
}

func (s *State) SetActiveTextureUnit(unit int) {
	s.ActiveTextureUnit = unit
}

// SetSamplerTexture binds tex as the texture of type t of unit.
func (s *State) SetSamplerTexture(unit int, t gl.TextureType, tex *Texture) {
	s.SamplerTextures[t][unit] = tex
	s.dirty.Set(dirty.TextureBindings)
}

func (s *State) SetSampler(unit int, smp *Sampler) {
	s.Samplers[unit] = smp
	s.dirty.Set(dirty.SamplerBindings)
}

func (s *State) SetImageUnit(unit int, u ImageUnit) {
	s.ImageUnits[unit] = u
	s.dirty.Set(dirty.ImageBindings)
}

func (s *State) SetTransformFeedback(tf *TransformFeedback) {
	s.TransformFeedback = tf
	s.dirty.Set(dirty.TransformFeedbackBinding)
}

// BeginTransformFeedback starts capture on the bound transform feedback
// object using the current program.
func (s *State) BeginTransformFeedback(primitiveMode gl.GLenum) {
	tf := s.TransformFeedback
	tf.Active, tf.Paused = true, false
	tf.PrimitiveMode = primitiveMode
	tf.Program = s.Program
	s.dirty.Set(dirty.TransformFeedbackBinding)
}

// EndTransformFeedback ends capture on the bound transform feedback object.
func (s *State) EndTransformFeedback() {
	tf := s.TransformFeedback
	tf.Active, tf.Paused = false, false
	tf.Program = nil
	s.dirty.Set(dirty.TransformFeedbackBinding)
}

// SetTransformFeedbackPaused pauses or resumes capture on the bound transform
// feedback object.
func (s *State) SetTransformFeedbackPaused(paused bool) {
	s.TransformFeedback.Paused = paused
	s.dirty.Set(dirty.TransformFeedbackBinding)
}

// SetVertexAttribf sets the floating point current value of an attribute.
func (s *State) SetVertexAttribf(index int, v [4]float32) {
	s.VertexAttribCurrentValues[index] = gl.VertexAttribCurrentValue{Type: gl.VertexAttribTypeFloat, Float: v}
	s.markCurrentValue(index)
}

// SetVertexAttribI sets the signed integer current value of an attribute.
func (s *State) SetVertexAttribI(index int, v [4]int32) {
	s.VertexAttribCurrentValues[index] = gl.VertexAttribCurrentValue{Type: gl.VertexAttribTypeInt, Int: v}
	s.markCurrentValue(index)
}

// SetVertexAttribIu sets the unsigned integer current value of an attribute.
func (s *State) SetVertexAttribIu(index int, v [4]uint32) {
	s.VertexAttribCurrentValues[index] = gl.VertexAttribCurrentValue{Type: gl.VertexAttribTypeUnsignedInt, Uint: v}
	s.markCurrentValue(index)
}

func (s *State) markCurrentValue(index int) {
	s.dirtyCurrentValues.Set(uint(index))
	s.dirty.Set(dirty.CurrentValues)
}

// SetActiveQuery records q as the active query of type t, or clears it.
func (s *State) SetActiveQuery(t gl.QueryType, q *Query) {
	s.ActiveQueries[t] = q
}
