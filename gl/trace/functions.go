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

package trace

import "github.com/google/glsync/gl"

var _ gl.Functions = (*Recorder)(nil)

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram", program)
	if r.inner != nil {
		r.inner.UseProgram(program)
	}
}

func (r *Recorder) BindVertexArray(array uint32) {
	r.record("BindVertexArray", array)
	if r.inner != nil {
		r.inner.BindVertexArray(array)
	}
}

func (r *Recorder) BindBuffer(target gl.GLenum, buffer uint32) {
	r.record("BindBuffer", target, buffer)
	if r.inner != nil {
		r.inner.BindBuffer(target, buffer)
	}
}

func (r *Recorder) BindBufferBase(target gl.GLenum, index, buffer uint32) {
	r.record("BindBufferBase", target, index, buffer)
	if r.inner != nil {
		r.inner.BindBufferBase(target, index, buffer)
	}
}

func (r *Recorder) BindBufferRange(target gl.GLenum, index, buffer uint32, offset, size int) {
	r.record("BindBufferRange", target, index, buffer, offset, size)
	if r.inner != nil {
		r.inner.BindBufferRange(target, index, buffer, offset, size)
	}
}

func (r *Recorder) ActiveTexture(texture gl.GLenum) {
	r.record("ActiveTexture", texture)
	if r.inner != nil {
		r.inner.ActiveTexture(texture)
	}
}

func (r *Recorder) BindTexture(target gl.GLenum, texture uint32) {
	r.record("BindTexture", target, texture)
	if r.inner != nil {
		r.inner.BindTexture(target, texture)
	}
}

func (r *Recorder) BindSampler(unit, sampler uint32) {
	r.record("BindSampler", unit, sampler)
	if r.inner != nil {
		r.inner.BindSampler(unit, sampler)
	}
}

func (r *Recorder) BindImageTexture(unit, texture uint32, level int32, layered bool, layer int32, access, format gl.GLenum) {
	r.record("BindImageTexture", unit, texture, level, layered, layer, access, format)
	if r.inner != nil {
		r.inner.BindImageTexture(unit, texture, level, layered, layer, access, format)
	}
}

func (r *Recorder) BindFramebuffer(target gl.GLenum, framebuffer uint32) {
	r.record("BindFramebuffer", target, framebuffer)
	if r.inner != nil {
		r.inner.BindFramebuffer(target, framebuffer)
	}
}

func (r *Recorder) BindRenderbuffer(target gl.GLenum, renderbuffer uint32) {
	r.record("BindRenderbuffer", target, renderbuffer)
	if r.inner != nil {
		r.inner.BindRenderbuffer(target, renderbuffer)
	}
}

func (r *Recorder) BindTransformFeedback(target gl.GLenum, id uint32) {
	r.record("BindTransformFeedback", target, id)
	if r.inner != nil {
		r.inner.BindTransformFeedback(target, id)
	}
}

func (r *Recorder) Enable(cap gl.GLenum) {
	r.record("Enable", cap)
	if r.inner != nil {
		r.inner.Enable(cap)
	}
}

func (r *Recorder) Disable(cap gl.GLenum) {
	r.record("Disable", cap)
	if r.inner != nil {
		r.inner.Disable(cap)
	}
}

func (r *Recorder) BlendColor(red, green, blue, alpha float32) {
	r.record("BlendColor", red, green, blue, alpha)
	if r.inner != nil {
		r.inner.BlendColor(red, green, blue, alpha)
	}
}

func (r *Recorder) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.GLenum) {
	r.record("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
	if r.inner != nil {
		r.inner.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
	}
}

func (r *Recorder) BlendEquationSeparate(modeRGB, modeAlpha gl.GLenum) {
	r.record("BlendEquationSeparate", modeRGB, modeAlpha)
	if r.inner != nil {
		r.inner.BlendEquationSeparate(modeRGB, modeAlpha)
	}
}

func (r *Recorder) ColorMask(red, green, blue, alpha bool) {
	r.record("ColorMask", red, green, blue, alpha)
	if r.inner != nil {
		r.inner.ColorMask(red, green, blue, alpha)
	}
}

func (r *Recorder) SampleCoverage(value float32, invert bool) {
	r.record("SampleCoverage", value, invert)
	if r.inner != nil {
		r.inner.SampleCoverage(value, invert)
	}
}

func (r *Recorder) SampleMaski(maskNumber, mask uint32) {
	r.record("SampleMaski", maskNumber, mask)
	if r.inner != nil {
		r.inner.SampleMaski(maskNumber, mask)
	}
}

func (r *Recorder) DepthFunc(fn gl.GLenum) {
	r.record("DepthFunc", fn)
	if r.inner != nil {
		r.inner.DepthFunc(fn)
	}
}

func (r *Recorder) DepthMask(flag bool) {
	r.record("DepthMask", flag)
	if r.inner != nil {
		r.inner.DepthMask(flag)
	}
}

func (r *Recorder) DepthRangef(near, far float32) {
	r.record("DepthRangef", near, far)
	if r.inner != nil {
		r.inner.DepthRangef(near, far)
	}
}

func (r *Recorder) StencilFuncSeparate(face, fn gl.GLenum, ref int32, mask uint32) {
	r.record("StencilFuncSeparate", face, fn, ref, mask)
	if r.inner != nil {
		r.inner.StencilFuncSeparate(face, fn, ref, mask)
	}
}

func (r *Recorder) StencilOpSeparate(face, sfail, dpfail, dppass gl.GLenum) {
	r.record("StencilOpSeparate", face, sfail, dpfail, dppass)
	if r.inner != nil {
		r.inner.StencilOpSeparate(face, sfail, dpfail, dppass)
	}
}

func (r *Recorder) StencilMaskSeparate(face gl.GLenum, mask uint32) {
	r.record("StencilMaskSeparate", face, mask)
	if r.inner != nil {
		r.inner.StencilMaskSeparate(face, mask)
	}
}

func (r *Recorder) CullFace(mode gl.GLenum) {
	r.record("CullFace", mode)
	if r.inner != nil {
		r.inner.CullFace(mode)
	}
}

func (r *Recorder) FrontFace(mode gl.GLenum) {
	r.record("FrontFace", mode)
	if r.inner != nil {
		r.inner.FrontFace(mode)
	}
}

func (r *Recorder) PolygonOffset(factor, units float32) {
	r.record("PolygonOffset", factor, units)
	if r.inner != nil {
		r.inner.PolygonOffset(factor, units)
	}
}

func (r *Recorder) LineWidth(width float32) {
	r.record("LineWidth", width)
	if r.inner != nil {
		r.inner.LineWidth(width)
	}
}

func (r *Recorder) Scissor(x, y, width, height int32) {
	r.record("Scissor", x, y, width, height)
	if r.inner != nil {
		r.inner.Scissor(x, y, width, height)
	}
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", x, y, width, height)
	if r.inner != nil {
		r.inner.Viewport(x, y, width, height)
	}
}

func (r *Recorder) ScissorArrayv(first uint32, rects []gl.Rectangle) {
	r.record("ScissorArrayv", first, append([]gl.Rectangle(nil), rects...))
	if r.inner != nil {
		r.inner.ScissorArrayv(first, rects)
	}
}

func (r *Recorder) ViewportArrayv(first uint32, rects []gl.Rectangle) {
	r.record("ViewportArrayv", first, append([]gl.Rectangle(nil), rects...))
	if r.inner != nil {
		r.inner.ViewportArrayv(first, rects)
	}
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
	if r.inner != nil {
		r.inner.ClearColor(red, green, blue, alpha)
	}
}

func (r *Recorder) ClearDepthf(depth float32) {
	r.record("ClearDepthf", depth)
	if r.inner != nil {
		r.inner.ClearDepthf(depth)
	}
}

func (r *Recorder) ClearStencil(s int32) {
	r.record("ClearStencil", s)
	if r.inner != nil {
		r.inner.ClearStencil(s)
	}
}

func (r *Recorder) PixelStorei(pname gl.GLenum, param int32) {
	r.record("PixelStorei", pname, param)
	if r.inner != nil {
		r.inner.PixelStorei(pname, param)
	}
}

func (r *Recorder) PrimitiveRestartIndex(index uint32) {
	r.record("PrimitiveRestartIndex", index)
	if r.inner != nil {
		r.inner.PrimitiveRestartIndex(index)
	}
}

func (r *Recorder) Hint(target, mode gl.GLenum) {
	r.record("Hint", target, mode)
	if r.inner != nil {
		r.inner.Hint(target, mode)
	}
}

func (r *Recorder) VertexAttrib4fv(index uint32, v [4]float32) {
	r.record("VertexAttrib4fv", index, v)
	if r.inner != nil {
		r.inner.VertexAttrib4fv(index, v)
	}
}

func (r *Recorder) VertexAttribI4iv(index uint32, v [4]int32) {
	r.record("VertexAttribI4iv", index, v)
	if r.inner != nil {
		r.inner.VertexAttribI4iv(index, v)
	}
}

func (r *Recorder) VertexAttribI4uiv(index uint32, v [4]uint32) {
	r.record("VertexAttribI4uiv", index, v)
	if r.inner != nil {
		r.inner.VertexAttribI4uiv(index, v)
	}
}

func (r *Recorder) BeginQuery(target gl.GLenum, id uint32) {
	r.record("BeginQuery", target, id)
	if r.inner != nil {
		r.inner.BeginQuery(target, id)
	}
}

func (r *Recorder) EndQuery(target gl.GLenum) {
	r.record("EndQuery", target)
	if r.inner != nil {
		r.inner.EndQuery(target)
	}
}

func (r *Recorder) GetQueryObjectui64(id uint32, pname gl.GLenum) uint64 {
	r.record("GetQueryObjectui64", id, pname)
	if r.inner != nil {
		return r.inner.GetQueryObjectui64(id, pname)
	}
	if pname == gl.GLenum_GL_QUERY_RESULT_AVAILABLE {
		return 1
	}
	return r.QueryResults[id]
}

func (r *Recorder) BeginTransformFeedback(primitiveMode gl.GLenum) {
	r.record("BeginTransformFeedback", primitiveMode)
	if r.inner != nil {
		r.inner.BeginTransformFeedback(primitiveMode)
	}
}

func (r *Recorder) EndTransformFeedback() {
	r.record("EndTransformFeedback")
	if r.inner != nil {
		r.inner.EndTransformFeedback()
	}
}

func (r *Recorder) PauseTransformFeedback() {
	r.record("PauseTransformFeedback")
	if r.inner != nil {
		r.inner.PauseTransformFeedback()
	}
}

func (r *Recorder) ResumeTransformFeedback() {
	r.record("ResumeTransformFeedback")
	if r.inner != nil {
		r.inner.ResumeTransformFeedback()
	}
}

func (r *Recorder) GenBuffer() uint32 {
	return r.gen("GenBuffer", func() uint32 { return r.inner.GenBuffer() })
}

func (r *Recorder) DeleteBuffer(id uint32) {
	r.record("DeleteBuffer", id)
	if r.inner != nil {
		r.inner.DeleteBuffer(id)
	}
}

func (r *Recorder) GenTexture() uint32 {
	return r.gen("GenTexture", func() uint32 { return r.inner.GenTexture() })
}

func (r *Recorder) DeleteTexture(id uint32) {
	r.record("DeleteTexture", id)
	if r.inner != nil {
		r.inner.DeleteTexture(id)
	}
}

func (r *Recorder) GenSampler() uint32 {
	return r.gen("GenSampler", func() uint32 { return r.inner.GenSampler() })
}

func (r *Recorder) DeleteSampler(id uint32) {
	r.record("DeleteSampler", id)
	if r.inner != nil {
		r.inner.DeleteSampler(id)
	}
}

func (r *Recorder) GenFramebuffer() uint32 {
	return r.gen("GenFramebuffer", func() uint32 { return r.inner.GenFramebuffer() })
}

func (r *Recorder) DeleteFramebuffer(id uint32) {
	r.record("DeleteFramebuffer", id)
	if r.inner != nil {
		r.inner.DeleteFramebuffer(id)
	}
}

func (r *Recorder) GenRenderbuffer() uint32 {
	return r.gen("GenRenderbuffer", func() uint32 { return r.inner.GenRenderbuffer() })
}

func (r *Recorder) DeleteRenderbuffer(id uint32) {
	r.record("DeleteRenderbuffer", id)
	if r.inner != nil {
		r.inner.DeleteRenderbuffer(id)
	}
}

func (r *Recorder) GenVertexArray() uint32 {
	return r.gen("GenVertexArray", func() uint32 { return r.inner.GenVertexArray() })
}

func (r *Recorder) DeleteVertexArray(id uint32) {
	r.record("DeleteVertexArray", id)
	if r.inner != nil {
		r.inner.DeleteVertexArray(id)
	}
}

func (r *Recorder) GenTransformFeedback() uint32 {
	return r.gen("GenTransformFeedback", func() uint32 { return r.inner.GenTransformFeedback() })
}

func (r *Recorder) DeleteTransformFeedback(id uint32) {
	r.record("DeleteTransformFeedback", id)
	if r.inner != nil {
		r.inner.DeleteTransformFeedback(id)
	}
}

func (r *Recorder) GenQuery() uint32 {
	return r.gen("GenQuery", func() uint32 { return r.inner.GenQuery() })
}

func (r *Recorder) DeleteQuery(id uint32) {
	r.record("DeleteQuery", id)
	if r.inner != nil {
		r.inner.DeleteQuery(id)
	}
}

func (r *Recorder) CreateProgram() uint32 {
	return r.gen("CreateProgram", func() uint32 { return r.inner.CreateProgram() })
}

func (r *Recorder) DeleteProgram(id uint32) {
	r.record("DeleteProgram", id)
	if r.inner != nil {
		r.inner.DeleteProgram(id)
	}
}

func (r *Recorder) Flush() {
	r.record("Flush")
	if r.inner != nil {
		r.inner.Flush()
	}
}
