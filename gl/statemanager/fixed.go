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
	"github.com/google/glsync/gl"
	"github.com/google/glsync/gl/dirty"
	"github.com/google/glsync/gl/state"
)

// The setters below compare the requested value with the cached one and only
// issue the native call on a change. A change is recorded as a local dirty
// bit, so that the next synchronisation restores the GL-visible value if the
// caller changed the native state on its own behalf.

// SetScissorTestEnabled enables or disables the scissor test.
func (m *Manager) SetScissorTestEnabled(enabled bool) {
	if m.s.ScissorTestEnabled != enabled {
		m.s.ScissorTestEnabled = enabled
		m.enable(gl.GLenum_GL_SCISSOR_TEST, enabled)
		m.local.Set(dirty.ScissorTestEnabled)
	}
}

// SetScissor sets the scissor rectangle of every view.
func (m *Manager) SetScissor(r gl.Rectangle) {
	if !allEqual(m.s.Scissors, r) {
		for i := range m.s.Scissors {
			m.s.Scissors[i] = r
		}
		m.f.Scissor(r.X, r.Y, r.Width, r.Height)
		m.local.Set(dirty.Scissor)
	}
}

// SetScissorArray sets the scissor rectangles of the first len(rects) views.
func (m *Manager) SetScissorArray(rects []gl.Rectangle) {
	if !m.invariant(len(rects) <= len(m.s.Scissors), "%d scissors for %d views", len(rects), len(m.s.Scissors)) {
		return
	}
	if !prefixEqual(m.s.Scissors, rects) {
		copy(m.s.Scissors, rects)
		m.f.ScissorArrayv(0, rects)
		m.local.Set(dirty.Scissor)
	}
}

// SetViewport sets the viewport of every view.
func (m *Manager) SetViewport(r gl.Rectangle) {
	if !allEqual(m.s.Viewports, r) {
		for i := range m.s.Viewports {
			m.s.Viewports[i] = r
		}
		m.f.Viewport(r.X, r.Y, r.Width, r.Height)
		m.local.Set(dirty.Viewport)
	}
}

// SetViewportArray sets the viewports of the first len(rects) views.
func (m *Manager) SetViewportArray(rects []gl.Rectangle) {
	if !m.invariant(len(rects) <= len(m.s.Viewports), "%d viewports for %d views", len(rects), len(m.s.Viewports)) {
		return
	}
	if !prefixEqual(m.s.Viewports, rects) {
		copy(m.s.Viewports, rects)
		m.f.ViewportArrayv(0, rects)
		m.local.Set(dirty.Viewport)
	}
}

func allEqual(l []gl.Rectangle, r gl.Rectangle) bool {
	for _, v := range l {
		if v != r {
			return false
		}
	}
	return true
}

func prefixEqual(l, rects []gl.Rectangle) bool {
	for i, r := range rects {
		if l[i] != r {
			return false
		}
	}
	return true
}

// SetDepthRange sets the depth range mapping.
func (m *Manager) SetDepthRange(near, far float32) {
	if m.s.NearZ != near || m.s.FarZ != far {
		m.s.NearZ, m.s.FarZ = near, far
		m.f.DepthRangef(near, far)
		m.local.Set(dirty.DepthRange)
	}
}

// SetBlendEnabled enables or disables blending.
func (m *Manager) SetBlendEnabled(enabled bool) {
	if m.s.Blend.Enabled != enabled {
		m.s.Blend.Enabled = enabled
		m.enable(gl.GLenum_GL_BLEND, enabled)
		m.local.Set(dirty.BlendEnabled)
	}
}

// SetBlendColor sets the constant blend color.
func (m *Manager) SetBlendColor(c gl.ColorF) {
	if m.s.BlendColor != c {
		m.s.BlendColor = c
		m.f.BlendColor(c.Red, c.Green, c.Blue, c.Alpha)
		m.local.Set(dirty.BlendColor)
	}
}

// SetBlendFuncs sets the separate RGB and alpha blend factors.
func (m *Manager) SetBlendFuncs(srcRGB, dstRGB, srcAlpha, dstAlpha gl.GLenum) {
	b := &m.s.Blend
	if b.SrcRGB != srcRGB || b.DstRGB != dstRGB || b.SrcAlpha != srcAlpha || b.DstAlpha != dstAlpha {
		b.SrcRGB, b.DstRGB, b.SrcAlpha, b.DstAlpha = srcRGB, dstRGB, srcAlpha, dstAlpha
		m.f.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
		m.local.Set(dirty.BlendFuncs)
	}
}

// SetBlendEquations sets the separate RGB and alpha blend equations.
func (m *Manager) SetBlendEquations(rgb, alpha gl.GLenum) {
	b := &m.s.Blend
	if b.EquationRGB != rgb || b.EquationAlpha != alpha {
		b.EquationRGB, b.EquationAlpha = rgb, alpha
		m.f.BlendEquationSeparate(rgb, alpha)
		m.local.Set(dirty.BlendEquations)
	}
}

// SetColorMask sets which color channels are written.
func (m *Manager) SetColorMask(red, green, blue, alpha bool) {
	b := &m.s.Blend
	if b.ColorMaskRed != red || b.ColorMaskGreen != green || b.ColorMaskBlue != blue || b.ColorMaskAlpha != alpha {
		b.ColorMaskRed, b.ColorMaskGreen, b.ColorMaskBlue, b.ColorMaskAlpha = red, green, blue, alpha
		m.f.ColorMask(red, green, blue, alpha)
		m.local.Set(dirty.ColorMask)
	}
}

// SetSampleAlphaToCoverageEnabled enables or disables alpha-to-coverage.
func (m *Manager) SetSampleAlphaToCoverageEnabled(enabled bool) {
	if m.s.SampleAlphaToCoverageEnabled != enabled {
		m.s.SampleAlphaToCoverageEnabled = enabled
		m.enable(gl.GLenum_GL_SAMPLE_ALPHA_TO_COVERAGE, enabled)
		m.local.Set(dirty.SampleAlphaToCoverageEnabled)
	}
}

// SetSampleCoverageEnabled enables or disables sample coverage.
func (m *Manager) SetSampleCoverageEnabled(enabled bool) {
	if m.s.SampleCoverageEnabled != enabled {
		m.s.SampleCoverageEnabled = enabled
		m.enable(gl.GLenum_GL_SAMPLE_COVERAGE, enabled)
		m.local.Set(dirty.SampleCoverageEnabled)
	}
}

// SetSampleCoverage sets the sample coverage value and inversion.
func (m *Manager) SetSampleCoverage(value float32, invert bool) {
	if m.s.SampleCoverageValue != value || m.s.SampleCoverageInvert != invert {
		m.s.SampleCoverageValue, m.s.SampleCoverageInvert = value, invert
		m.f.SampleCoverage(value, invert)
		m.local.Set(dirty.SampleCoverage)
	}
}

// SetSampleMaskEnabled enables or disables the sample mask.
func (m *Manager) SetSampleMaskEnabled(enabled bool) {
	if !m.sampleMask {
		m.unsupported("sample mask")
		return
	}
	if m.s.SampleMaskEnabled != enabled {
		m.s.SampleMaskEnabled = enabled
		m.enable(gl.GLenum_GL_SAMPLE_MASK, enabled)
		m.local.Set(dirty.SampleMaskEnabled)
	}
}

// SetSampleMaski sets one word of the sample mask.
func (m *Manager) SetSampleMaski(word int, mask uint32) {
	if !m.sampleMask {
		m.unsupported("sample mask")
		return
	}
	if !m.invariant(word >= 0 && word < len(m.s.SampleMaskWords), "Sample mask word %d out of range", word) {
		return
	}
	if m.s.SampleMaskWords[word] != mask {
		m.s.SampleMaskWords[word] = mask
		m.f.SampleMaski(uint32(word), mask)
		m.local.Set(dirty.SampleMask)
	}
}

// SetDepthTestEnabled enables or disables the depth test.
func (m *Manager) SetDepthTestEnabled(enabled bool) {
	if m.s.DepthStencil.DepthTest != enabled {
		m.s.DepthStencil.DepthTest = enabled
		m.enable(gl.GLenum_GL_DEPTH_TEST, enabled)
		m.local.Set(dirty.DepthTestEnabled)
	}
}

// SetDepthFunc sets the depth comparison function.
func (m *Manager) SetDepthFunc(fn gl.GLenum) {
	if m.s.DepthStencil.DepthFunc != fn {
		m.s.DepthStencil.DepthFunc = fn
		m.f.DepthFunc(fn)
		m.local.Set(dirty.DepthFunc)
	}
}

// SetDepthMask enables or disables depth writes.
func (m *Manager) SetDepthMask(mask bool) {
	if m.s.DepthStencil.DepthMask != mask {
		m.s.DepthStencil.DepthMask = mask
		m.f.DepthMask(mask)
		m.local.Set(dirty.DepthMask)
	}
}

// SetStencilTestEnabled enables or disables the stencil test.
func (m *Manager) SetStencilTestEnabled(enabled bool) {
	if m.s.DepthStencil.StencilTest != enabled {
		m.s.DepthStencil.StencilTest = enabled
		m.enable(gl.GLenum_GL_STENCIL_TEST, enabled)
		m.local.Set(dirty.StencilTestEnabled)
	}
}

// SetStencilFrontFuncs sets the stencil function, reference and mask of front faces.
func (m *Manager) SetStencilFrontFuncs(fn gl.GLenum, ref int32, mask uint32) {
	f := &m.s.DepthStencil.Front
	if f.Func != fn || f.Ref != ref || f.ValueMask != mask {
		f.Func, f.Ref, f.ValueMask = fn, ref, mask
		m.f.StencilFuncSeparate(gl.GLenum_GL_FRONT, fn, ref, mask)
		m.local.Set(dirty.StencilFuncsFront)
	}
}

// SetStencilBackFuncs sets the stencil function, reference and mask of back faces.
func (m *Manager) SetStencilBackFuncs(fn gl.GLenum, ref int32, mask uint32) {
	b := &m.s.DepthStencil.Back
	if b.Func != fn || b.Ref != ref || b.ValueMask != mask {
		b.Func, b.Ref, b.ValueMask = fn, ref, mask
		m.f.StencilFuncSeparate(gl.GLenum_GL_BACK, fn, ref, mask)
		m.local.Set(dirty.StencilFuncsBack)
	}
}

// SetStencilFrontOps sets the stencil operations of front faces.
func (m *Manager) SetStencilFrontOps(fail, depthFail, depthPass gl.GLenum) {
	f := &m.s.DepthStencil.Front
	if f.Fail != fail || f.PassDepthFail != depthFail || f.PassDepthPass != depthPass {
		f.Fail, f.PassDepthFail, f.PassDepthPass = fail, depthFail, depthPass
		m.f.StencilOpSeparate(gl.GLenum_GL_FRONT, fail, depthFail, depthPass)
		m.local.Set(dirty.StencilOpsFront)
	}
}

// SetStencilBackOps sets the stencil operations of back faces.
func (m *Manager) SetStencilBackOps(fail, depthFail, depthPass gl.GLenum) {
	b := &m.s.DepthStencil.Back
	if b.Fail != fail || b.PassDepthFail != depthFail || b.PassDepthPass != depthPass {
		b.Fail, b.PassDepthFail, b.PassDepthPass = fail, depthFail, depthPass
		m.f.StencilOpSeparate(gl.GLenum_GL_BACK, fail, depthFail, depthPass)
		m.local.Set(dirty.StencilOpsBack)
	}
}

// SetStencilFrontWritemask sets the stencil write mask of front faces.
func (m *Manager) SetStencilFrontWritemask(mask uint32) {
	if m.s.DepthStencil.Front.WriteMask != mask {
		m.s.DepthStencil.Front.WriteMask = mask
		m.f.StencilMaskSeparate(gl.GLenum_GL_FRONT, mask)
		m.local.Set(dirty.StencilWritemaskFront)
	}
}

// SetStencilBackWritemask sets the stencil write mask of back faces.
func (m *Manager) SetStencilBackWritemask(mask uint32) {
	if m.s.DepthStencil.Back.WriteMask != mask {
		m.s.DepthStencil.Back.WriteMask = mask
		m.f.StencilMaskSeparate(gl.GLenum_GL_BACK, mask)
		m.local.Set(dirty.StencilWritemaskBack)
	}
}

// SetCullFaceEnabled enables or disables face culling.
func (m *Manager) SetCullFaceEnabled(enabled bool) {
	if m.s.Rasterizer.CullFace != enabled {
		m.s.Rasterizer.CullFace = enabled
		m.enable(gl.GLenum_GL_CULL_FACE, enabled)
		m.local.Set(dirty.CullFaceEnabled)
	}
}

// SetCullFace sets which faces are culled.
func (m *Manager) SetCullFace(mode gl.GLenum) {
	if m.s.Rasterizer.CullMode != mode {
		m.s.Rasterizer.CullMode = mode
		m.f.CullFace(mode)
		m.local.Set(dirty.CullFace)
	}
}

// SetFrontFace sets the winding of front faces.
func (m *Manager) SetFrontFace(mode gl.GLenum) {
	if m.s.Rasterizer.FrontFace != mode {
		m.s.Rasterizer.FrontFace = mode
		m.f.FrontFace(mode)
		m.local.Set(dirty.FrontFace)
	}
}

// SetPolygonOffsetFillEnabled enables or disables polygon offset for filled polygons.
func (m *Manager) SetPolygonOffsetFillEnabled(enabled bool) {
	if m.s.Rasterizer.PolygonOffsetFill != enabled {
		m.s.Rasterizer.PolygonOffsetFill = enabled
		m.enable(gl.GLenum_GL_POLYGON_OFFSET_FILL, enabled)
		m.local.Set(dirty.PolygonOffsetFillEnabled)
	}
}

// SetPolygonOffset sets the polygon offset factor and units.
func (m *Manager) SetPolygonOffset(factor, units float32) {
	r := &m.s.Rasterizer
	if r.PolygonOffsetFactor != factor || r.PolygonOffsetUnits != units {
		r.PolygonOffsetFactor, r.PolygonOffsetUnits = factor, units
		m.f.PolygonOffset(factor, units)
		m.local.Set(dirty.PolygonOffset)
	}
}

// SetRasterizerDiscardEnabled enables or disables rasterizer discard.
func (m *Manager) SetRasterizerDiscardEnabled(enabled bool) {
	if m.s.Rasterizer.RasterizerDiscard != enabled {
		m.s.Rasterizer.RasterizerDiscard = enabled
		m.enable(gl.GLenum_GL_RASTERIZER_DISCARD, enabled)
		m.local.Set(dirty.RasterizerDiscardEnabled)
	}
}

// SetDitherEnabled enables or disables dithering.
func (m *Manager) SetDitherEnabled(enabled bool) {
	if m.s.Rasterizer.Dither != enabled {
		m.s.Rasterizer.Dither = enabled
		m.enable(gl.GLenum_GL_DITHER, enabled)
		m.local.Set(dirty.DitherEnabled)
	}
}

// SetLineWidth sets the rasterized line width.
func (m *Manager) SetLineWidth(width float32) {
	if m.s.LineWidth != width {
		m.s.LineWidth = width
		m.f.LineWidth(width)
		m.local.Set(dirty.LineWidth)
	}
}

// SetPrimitiveRestartEnabled toggles primitive restart. With
// EmulatePrimitiveRestartFixedIndex the general GL_PRIMITIVE_RESTART switch
// is used, and the index is set per draw by SetPrimitiveRestartIndex.
func (m *Manager) SetPrimitiveRestartEnabled(enabled bool) {
	capability := gl.GLenum_GL_PRIMITIVE_RESTART_FIXED_INDEX
	if m.features.EmulatePrimitiveRestartFixedIndex {
		capability = gl.GLenum_GL_PRIMITIVE_RESTART
	} else if !m.primitiveRestartFixedIndex {
		m.unsupported("primitive restart")
		return
	}
	if m.s.PrimitiveRestartEnabled != enabled {
		m.s.PrimitiveRestartEnabled = enabled
		m.enable(capability, enabled)
		m.local.Set(dirty.PrimitiveRestartEnabled)
	}
}

// SetPrimitiveRestartIndex sets the explicit restart index. The index is not
// GL-visible state and records no dirty bit.
func (m *Manager) SetPrimitiveRestartIndex(index uint32) {
	if m.s.PrimitiveRestartIndex != index {
		m.s.PrimitiveRestartIndex = index
		m.f.PrimitiveRestartIndex(index)
	}
}

// OnDrawElements prepares an indexed draw using indices of indexType.
func (m *Manager) OnDrawElements(st *state.State, indexType gl.GLenum) {
	if m.features.EmulatePrimitiveRestartFixedIndex && st.PrimitiveRestart {
		m.SetPrimitiveRestartIndex(gl.PrimitiveRestartIndex(indexType))
	}
}

// SetClearColor sets the clear color. With ClearToZeroOrOneBroken, colors
// made only of zeros and ones are sent with an out of range alpha, which
// clamps to the same value.
func (m *Manager) SetClearColor(c gl.ColorF) {
	n := c
	if m.features.ClearToZeroOrOneBroken && zeroOrOne(c.Red) && zeroOrOne(c.Green) && zeroOrOne(c.Blue) && zeroOrOne(c.Alpha) {
		if c.Alpha == 1 {
			n.Alpha = 2
		} else {
			n.Alpha = -1
		}
	}
	if m.s.ClearColor != n {
		m.s.ClearColor = n
		m.f.ClearColor(n.Red, n.Green, n.Blue, n.Alpha)
		m.local.Set(dirty.ClearColor)
	}
}

func zeroOrOne(v float32) bool { return v == 0 || v == 1 }

// SetClearDepth sets the depth clear value.
func (m *Manager) SetClearDepth(depth float32) {
	if m.s.ClearDepth != depth {
		m.s.ClearDepth = depth
		m.f.ClearDepthf(depth)
		m.local.Set(dirty.ClearDepth)
	}
}

// SetClearStencil sets the stencil clear value.
func (m *Manager) SetClearStencil(v int32) {
	if m.s.ClearStencil != v {
		m.s.ClearStencil = v
		m.f.ClearStencil(v)
		m.local.Set(dirty.ClearStencil)
	}
}

// SetPixelUnpackState sets every pixel store parameter used by uploads.
func (m *Manager) SetPixelUnpackState(u state.PixelUnpackState) {
	o := &m.s.Unpack
	if o.Alignment != u.Alignment {
		m.f.PixelStorei(gl.GLenum_GL_UNPACK_ALIGNMENT, u.Alignment)
	}
	if o.RowLength != u.RowLength {
		m.f.PixelStorei(gl.GLenum_GL_UNPACK_ROW_LENGTH, u.RowLength)
	}
	if o.SkipRows != u.SkipRows {
		m.f.PixelStorei(gl.GLenum_GL_UNPACK_SKIP_ROWS, u.SkipRows)
	}
	if o.SkipPixels != u.SkipPixels {
		m.f.PixelStorei(gl.GLenum_GL_UNPACK_SKIP_PIXELS, u.SkipPixels)
	}
	if o.ImageHeight != u.ImageHeight {
		m.f.PixelStorei(gl.GLenum_GL_UNPACK_IMAGE_HEIGHT, u.ImageHeight)
	}
	if o.SkipImages != u.SkipImages {
		m.f.PixelStorei(gl.GLenum_GL_UNPACK_SKIP_IMAGES, u.SkipImages)
	}
	if *o != u {
		*o = u
		m.local.Set(dirty.UnpackState)
	}
}

// SetPixelPackState sets every pixel store parameter used by readbacks.
func (m *Manager) SetPixelPackState(p state.PixelPackState) {
	o := &m.s.Pack
	if o.Alignment != p.Alignment {
		m.f.PixelStorei(gl.GLenum_GL_PACK_ALIGNMENT, p.Alignment)
	}
	if o.RowLength != p.RowLength {
		m.f.PixelStorei(gl.GLenum_GL_PACK_ROW_LENGTH, p.RowLength)
	}
	if o.SkipRows != p.SkipRows {
		m.f.PixelStorei(gl.GLenum_GL_PACK_SKIP_ROWS, p.SkipRows)
	}
	if o.SkipPixels != p.SkipPixels {
		m.f.PixelStorei(gl.GLenum_GL_PACK_SKIP_PIXELS, p.SkipPixels)
	}
	if *o != p {
		*o = p
		m.local.Set(dirty.PackState)
	}
}

// SetGenerateMipmapHint sets the mipmap generation hint on ES backends.
func (m *Manager) SetGenerateMipmapHint(mode gl.GLenum) {
	if !m.generateMipmapHint {
		m.unsupported("generate mipmap hint")
		return
	}
	if m.s.GenerateMipmapHint != mode {
		m.s.GenerateMipmapHint = mode
		m.f.Hint(gl.GLenum_GL_GENERATE_MIPMAP_HINT, mode)
		m.local.Set(dirty.GenerateMipmapHint)
	}
}

// SetFragmentShaderDerivativeHint sets the fragment shader derivative accuracy hint.
func (m *Manager) SetFragmentShaderDerivativeHint(mode gl.GLenum) {
	if m.s.FragmentShaderDerivativeHint != mode {
		m.s.FragmentShaderDerivativeHint = mode
		m.f.Hint(gl.GLenum_GL_FRAGMENT_SHADER_DERIVATIVE_HINT, mode)
		m.local.Set(dirty.ShaderDerivativeHint)
	}
}

// SetMultisamplingEnabled enables or disables multisampling where the backend can.
func (m *Manager) SetMultisamplingEnabled(enabled bool) {
	if !m.multisampleControl {
		m.unsupported("multisampling toggle")
		return
	}
	if m.s.MultisamplingEnabled != enabled {
		m.s.MultisamplingEnabled = enabled
		m.enable(gl.GLenum_GL_MULTISAMPLE, enabled)
		m.local.Set(dirty.Multisampling)
	}
}

// SetSampleAlphaToOneEnabled enables or disables sample alpha-to-one where the backend can.
func (m *Manager) SetSampleAlphaToOneEnabled(enabled bool) {
	if !m.multisampleControl {
		m.unsupported("sample alpha to one")
		return
	}
	if m.s.SampleAlphaToOneEnabled != enabled {
		m.s.SampleAlphaToOneEnabled = enabled
		m.enable(gl.GLenum_GL_SAMPLE_ALPHA_TO_ONE, enabled)
		m.local.Set(dirty.SampleAlphaToOne)
	}
}

// SetFramebufferSRGBEnabled toggles sRGB encoding of framebuffer writes.
func (m *Manager) SetFramebufferSRGBEnabled(enabled bool) {
	if !m.srgbWriteControl {
		m.unsupported("framebuffer sRGB")
		return
	}
	if m.s.FramebufferSRGBEnabled != enabled {
		m.s.FramebufferSRGBEnabled = enabled
		m.enable(gl.GLenum_GL_FRAMEBUFFER_SRGB, enabled)
		m.local.Set(dirty.FramebufferSRGB)
	}
}

// SetFramebufferSRGBEnabledForFramebuffer applies the sRGB switch for writes
// to fb. Desktop GL encodes writes to an sRGB capable default framebuffer
// whenever the switch is on, so it is kept off there.
func (m *Manager) SetFramebufferSRGBEnabledForFramebuffer(enabled bool, fb *state.Framebuffer) {
	if m.info.IsDesktop() && fb != nil && fb.Default {
		m.SetFramebufferSRGBEnabled(false)
	} else {
		m.SetFramebufferSRGBEnabled(enabled)
	}
}

// SetTextureCubemapSeamlessEnabled toggles filtering across cube map faces.
// It has no GL-visible state and records no dirty bit.
func (m *Manager) SetTextureCubemapSeamlessEnabled(enabled bool) {
	if !m.seamlessCubeMap {
		return
	}
	if m.s.TextureCubemapSeamlessEnabled != enabled {
		m.s.TextureCubemapSeamlessEnabled = enabled
		m.enable(gl.GLenum_GL_TEXTURE_CUBE_MAP_SEAMLESS, enabled)
	}
}

// SetVertexAttribCurrentValue sets the constant value of an attribute.
func (m *Manager) SetVertexAttribCurrentValue(index int, v gl.VertexAttribCurrentValue) {
	if !m.invariant(index >= 0 && index < len(m.s.VertexAttribCurrentValues), "Vertex attribute %d out of range", index) {
		return
	}
	if m.s.VertexAttribCurrentValues[index] == v {
		return
	}
	m.s.VertexAttribCurrentValues[index] = v
	switch v.Type {
	case gl.VertexAttribTypeInt:
		m.f.VertexAttribI4iv(uint32(index), v.Int)
	case gl.VertexAttribTypeUnsignedInt:
		m.f.VertexAttribI4uiv(uint32(index), v.Uint)
	default:
		m.f.VertexAttrib4fv(uint32(index), v.Float)
	}
	m.local.Set(dirty.CurrentValues)
	m.localCurrentValues.Set(uint(index))
}
