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

package gl

// Functions is the table of native entry points used by the state tracker.
// Implementations resolve desktop, ES and extension variants of each entry
// point once, when the table is built.
type Functions interface {
	UseProgram(program uint32)
	BindVertexArray(array uint32)
	BindBuffer(target GLenum, buffer uint32)
	BindBufferBase(target GLenum, index, buffer uint32)
	BindBufferRange(target GLenum, index, buffer uint32, offset, size int)
	ActiveTexture(texture GLenum)
	BindTexture(target GLenum, texture uint32)
	BindSampler(unit, sampler uint32)
	BindImageTexture(unit, texture uint32, level int32, layered bool, layer int32, access, format GLenum)
	BindFramebuffer(target GLenum, framebuffer uint32)
	BindRenderbuffer(target GLenum, renderbuffer uint32)
	BindTransformFeedback(target GLenum, id uint32)

	Enable(cap GLenum)
	Disable(cap GLenum)

	BlendColor(red, green, blue, alpha float32)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha GLenum)
	BlendEquationSeparate(modeRGB, modeAlpha GLenum)
	ColorMask(red, green, blue, alpha bool)
	SampleCoverage(value float32, invert bool)
	SampleMaski(maskNumber, mask uint32)
	DepthFunc(fn GLenum)
	DepthMask(flag bool)
	DepthRangef(near, far float32)
	StencilFuncSeparate(face, fn GLenum, ref int32, mask uint32)
	StencilOpSeparate(face, sfail, dpfail, dppass GLenum)
	StencilMaskSeparate(face GLenum, mask uint32)
	CullFace(mode GLenum)
	FrontFace(mode GLenum)
	PolygonOffset(factor, units float32)
	LineWidth(width float32)
	Scissor(x, y, width, height int32)
	Viewport(x, y, width, height int32)
	ScissorArrayv(first uint32, rects []Rectangle)
	ViewportArrayv(first uint32, rects []Rectangle)
	ClearColor(red, green, blue, alpha float32)
	ClearDepthf(depth float32)
	ClearStencil(s int32)
	PixelStorei(pname GLenum, param int32)
	PrimitiveRestartIndex(index uint32)
	Hint(target, mode GLenum)

	VertexAttrib4fv(index uint32, v [4]float32)
	VertexAttribI4iv(index uint32, v [4]int32)
	VertexAttribI4uiv(index uint32, v [4]uint32)

	BeginQuery(target GLenum, id uint32)
	EndQuery(target GLenum)
	GetQueryObjectui64(id uint32, pname GLenum) uint64

	BeginTransformFeedback(primitiveMode GLenum)
	EndTransformFeedback()
	PauseTransformFeedback()
	ResumeTransformFeedback()

	GenBuffer() uint32
	DeleteBuffer(id uint32)
	GenTexture() uint32
	DeleteTexture(id uint32)
	GenSampler() uint32
	DeleteSampler(id uint32)
	GenFramebuffer() uint32
	DeleteFramebuffer(id uint32)
	GenRenderbuffer() uint32
	DeleteRenderbuffer(id uint32)
	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	GenTransformFeedback() uint32
	DeleteTransformFeedback(id uint32)
	GenQuery() uint32
	DeleteQuery(id uint32)
	CreateProgram() uint32
	DeleteProgram(id uint32)

	Flush()
}
