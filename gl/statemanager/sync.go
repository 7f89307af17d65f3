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

package statemanager

import (
	"context"

	"github.com/google/glsync/gl"
	"github.com/google/glsync/gl/dirty"
	"github.com/google/glsync/gl/state"
)

// SyncState pushes the categories of st named by (dirtyBits ∪ local) ∩ mask
// to the native context, where local holds the categories the Manager
// changed on its own. Only values that differ from the cached ones are sent.
//
// The bits of mask are cleared from dirtyBits and from the local set when
// SyncState returns. Local bits outside mask are kept for a later call.
func (m *Manager) SyncState(ctx context.Context, st *state.State, dirtyBits *dirty.Bits, mask dirty.Bits) {
	if dirtyBits.Test(dirty.DrawFramebufferBinding) {
		if m.info.IsDesktop() {
			m.local.Set(dirty.FramebufferSRGB)
		}
		if m.multiview {
			m.multiviewDirty.Set(dirty.MultiviewSideBySideLayout)
			m.multiviewDirty.Set(dirty.MultiviewViewportOffsets)
			m.local.Set(dirty.ScissorTestEnabled)
			m.local.Set(dirty.Scissor)
			m.local.Set(dirty.Viewport)
		}
	}
	if m.multiviewDirty.Any() {
		m.syncMultiview(ctx, st)
	}

	pending := dirtyBits.Clone()
	pending.Union(m.local)
	pending.Intersect(mask)
	if pending.None() {
		dirtyBits.ClearMask(mask)
		return
	}

	it := pending.Iterator()
	for bit, ok := it.Next(); ok; bit, ok = it.Next() {
		m.syncBit(st, bit, it)
	}

	dirtyBits.ClearMask(mask)
	m.local.ClearMask(mask)
}

func (m *Manager) syncBit(st *state.State, bit dirty.Bit, it *dirty.Iterator) {
	ds, rs := &st.DepthStencil, &st.Rasterizer
	switch bit {
	case dirty.ScissorTestEnabled:
		if m.s.SideBySideDrawFramebuffer {
			// Views are clipped to their own part of the framebuffer by the
			// scissor, so the test stays on and the rectangle follows the
			// GL-visible switch.
			m.SetScissorTestEnabled(true)
			it.SetLater(dirty.Scissor)
		} else {
			m.SetScissorTestEnabled(st.ScissorTest)
		}
	case dirty.Scissor:
		m.syncScissor(st)
	case dirty.Viewport:
		if m.s.SideBySideDrawFramebuffer {
			m.SetViewportArray(gl.ApplyOffsets(st.Viewport, m.s.ViewportOffsets))
			if !st.ScissorTest {
				m.syncScissor(st)
			}
		} else {
			m.SetViewport(st.Viewport)
		}
	case dirty.DepthRange:
		m.SetDepthRange(st.NearZ, st.FarZ)
	case dirty.BlendEnabled:
		m.SetBlendEnabled(st.Blend.Enabled)
	case dirty.BlendColor:
		m.SetBlendColor(st.BlendColor)
	case dirty.BlendFuncs:
		b := st.Blend
		m.SetBlendFuncs(b.SrcRGB, b.DstRGB, b.SrcAlpha, b.DstAlpha)
	case dirty.BlendEquations:
		m.SetBlendEquations(st.Blend.EquationRGB, st.Blend.EquationAlpha)
	case dirty.ColorMask:
		b := st.Blend
		m.SetColorMask(b.ColorMaskRed, b.ColorMaskGreen, b.ColorMaskBlue, b.ColorMaskAlpha)
	case dirty.SampleAlphaToCoverageEnabled:
		m.SetSampleAlphaToCoverageEnabled(st.SampleAlphaToCoverage)
	case dirty.SampleCoverageEnabled:
		m.SetSampleCoverageEnabled(st.SampleCoverageEnabled)
	case dirty.SampleCoverage:
		m.SetSampleCoverage(st.SampleCoverageValue, st.SampleCoverageInvert)
	case dirty.SampleMaskEnabled:
		m.SetSampleMaskEnabled(st.SampleMaskEnabled)
	case dirty.SampleMask:
		for word, mask := range st.SampleMaskWords {
			m.SetSampleMaski(word, mask)
		}
	case dirty.DepthTestEnabled:
		m.SetDepthTestEnabled(ds.DepthTest)
	case dirty.DepthFunc:
		m.SetDepthFunc(ds.DepthFunc)
	case dirty.DepthMask:
		m.SetDepthMask(ds.DepthMask)
	case dirty.StencilTestEnabled:
		m.SetStencilTestEnabled(ds.StencilTest)
	case dirty.StencilFuncsFront:
		m.SetStencilFrontFuncs(ds.Front.Func, ds.Front.Ref, ds.Front.ValueMask)
	case dirty.StencilFuncsBack:
		m.SetStencilBackFuncs(ds.Back.Func, ds.Back.Ref, ds.Back.ValueMask)
	case dirty.StencilOpsFront:
		m.SetStencilFrontOps(ds.Front.Fail, ds.Front.PassDepthFail, ds.Front.PassDepthPass)
	case dirty.StencilOpsBack:
		m.SetStencilBackOps(ds.Back.Fail, ds.Back.PassDepthFail, ds.Back.PassDepthPass)
	case dirty.StencilWritemaskFront:
		m.SetStencilFrontWritemask(ds.Front.WriteMask)
	case dirty.StencilWritemaskBack:
		m.SetStencilBackWritemask(ds.Back.WriteMask)
	case dirty.CullFaceEnabled:
		m.SetCullFaceEnabled(rs.CullFace)
	case dirty.CullFace:
		m.SetCullFace(rs.CullMode)
	case dirty.FrontFace:
		m.SetFrontFace(rs.FrontFace)
	case dirty.PolygonOffsetFillEnabled:
		m.SetPolygonOffsetFillEnabled(rs.PolygonOffsetFill)
	case dirty.PolygonOffset:
		m.SetPolygonOffset(rs.PolygonOffsetFactor, rs.PolygonOffsetUnits)
	case dirty.RasterizerDiscardEnabled:
		m.SetRasterizerDiscardEnabled(rs.RasterizerDiscard)
	case dirty.LineWidth:
		m.SetLineWidth(st.LineWidth)
	case dirty.PrimitiveRestartEnabled:
		m.SetPrimitiveRestartEnabled(st.PrimitiveRestart)
	case dirty.ClearColor:
		m.SetClearColor(st.ClearColor)
	case dirty.ClearDepth:
		m.SetClearDepth(st.ClearDepth)
	case dirty.ClearStencil:
		m.SetClearStencil(st.ClearStencil)
	case dirty.UnpackState:
		m.SetPixelUnpackState(st.Unpack)
	case dirty.UnpackBufferBinding:
		m.BindBuffer(gl.BufferBindingPixelUnpack, st.Buffers[gl.BufferBindingPixelUnpack].NativeID())
	case dirty.PackState:
		m.SetPixelPackState(st.Pack)
	case dirty.PackBufferBinding:
		m.BindBuffer(gl.BufferBindingPixelPack, st.Buffers[gl.BufferBindingPixelPack].NativeID())
	case dirty.DitherEnabled:
		m.SetDitherEnabled(rs.Dither)
	case dirty.GenerateMipmapHint:
		m.SetGenerateMipmapHint(st.GenerateMipmapHint)
	case dirty.ShaderDerivativeHint:
		m.SetFragmentShaderDerivativeHint(st.FragmentShaderDerivativeHint)
	case dirty.ReadFramebufferBinding:
		if fb := st.ReadFramebuffer; fb != nil {
			m.BindFramebuffer(m.framebufferTarget(gl.GLenum_GL_READ_FRAMEBUFFER), fb.NativeID())
		}
	case dirty.DrawFramebufferBinding:
		if fb := st.DrawFramebuffer; fb != nil {
			m.BindFramebuffer(m.framebufferTarget(gl.GLenum_GL_DRAW_FRAMEBUFFER), fb.NativeID())
		}
	case dirty.RenderbufferBinding:
		m.BindRenderbuffer(st.Renderbuffer.NativeID())
	case dirty.VertexArrayBinding:
		vao := st.VertexArray
		var eab *state.Buffer
		if vao != nil {
			eab = vao.ElementArrayBuffer
		}
		m.BindVertexArray(vao.NativeID(), eab.NativeID())
	case dirty.DrawIndirectBufferBinding:
		m.BindBuffer(gl.BufferBindingDrawIndirect, st.Buffers[gl.BufferBindingDrawIndirect].NativeID())
	case dirty.DispatchIndirectBufferBinding:
		m.BindBuffer(gl.BufferBindingDispatchIndirect, st.Buffers[gl.BufferBindingDispatchIndirect].NativeID())
	case dirty.ProgramBinding:
		if p := st.Program; p != nil {
			m.UseProgram(p.NativeID())
			it.SetLater(dirty.ProgramExecutable)
		}
	case dirty.ProgramExecutable:
		m.onProgramExecutableChanged(st, it)
	case dirty.TextureBindings:
		m.syncTextureBindings(st)
	case dirty.SamplerBindings:
		m.syncSamplerBindings(st)
	case dirty.ImageBindings:
		m.syncImageBindings(st)
	case dirty.TransformFeedbackBinding:
		m.syncTransformFeedback(st)
	case dirty.UniformBufferBindings:
		m.syncIndexedBuffers(st, gl.BufferBindingUniform)
	case dirty.ShaderStorageBufferBinding:
		m.syncIndexedBuffers(st, gl.BufferBindingShaderStorage)
	case dirty.AtomicCounterBufferBinding:
		m.syncIndexedBuffers(st, gl.BufferBindingAtomicCounter)
	case dirty.Multisampling:
		m.SetMultisamplingEnabled(st.Multisampling)
	case dirty.SampleAlphaToOne:
		m.SetSampleAlphaToOneEnabled(st.SampleAlphaToOne)
	case dirty.FramebufferSRGB:
		m.SetFramebufferSRGBEnabledForFramebuffer(st.FramebufferSRGB, st.DrawFramebuffer)
	case dirty.CurrentValues:
		m.syncCurrentValues(st)
	default:
		m.invariant(false, "Unhandled dirty bit %v", bit)
	}
}

func (m *Manager) framebufferTarget(separate gl.GLenum) gl.GLenum {
	if m.separateFramebufferBindings {
		return separate
	}
	return gl.GLenum_GL_FRAMEBUFFER
}

func (m *Manager) syncCurrentValues(st *state.State) {
	attribs := st.TakeDirtyCurrentValues()
	attribs.InPlaceUnion(m.localCurrentValues)
	for i, ok := attribs.NextSet(0); ok; i, ok = attribs.NextSet(i + 1) {
		if int(i) < len(st.VertexAttribCurrentValues) {
			m.SetVertexAttribCurrentValue(int(i), st.VertexAttribCurrentValues[i])
		}
	}
	m.localCurrentValues.ClearAll()
}
