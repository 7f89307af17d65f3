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

// Package state models the GL-visible context state consumed by the state
// manager. Every setter records the dirty bit of the category it changes.
package state

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/google/glsync/gl"
	"github.com/google/glsync/gl/dirty"
)

// BlendState is the blend and color write state.
type BlendState struct {
	Enabled        bool
	SrcRGB         gl.GLenum
	DstRGB         gl.GLenum
	SrcAlpha       gl.GLenum
	DstAlpha       gl.GLenum
	EquationRGB    gl.GLenum
	EquationAlpha  gl.GLenum
	ColorMaskRed   bool
	ColorMaskGreen bool
	ColorMaskBlue  bool
	ColorMaskAlpha bool
}

// StencilFace is the stencil state of one polygon face.
type StencilFace struct {
	Func          gl.GLenum
	Ref           int32
	ValueMask     uint32
	Fail          gl.GLenum
	PassDepthFail gl.GLenum
	PassDepthPass gl.GLenum
	WriteMask     uint32
}

// DepthStencilState is the depth and stencil test state.
type DepthStencilState struct {
	DepthTest   bool
	DepthFunc   gl.GLenum
	DepthMask   bool
	StencilTest bool
	Front       StencilFace
	Back        StencilFace
}

// RasterizerState is the primitive rasterization state.
type RasterizerState struct {
	CullFace            bool
	CullMode            gl.GLenum
	FrontFace           gl.GLenum
	PolygonOffsetFill   bool
	PolygonOffsetFactor float32
	PolygonOffsetUnits  float32
	RasterizerDiscard   bool
	Dither              bool
}

// PixelUnpackState holds the pixel store parameters used for uploads.
type PixelUnpackState struct {
	Alignment   int32
	RowLength   int32
	SkipRows    int32
	SkipPixels  int32
	ImageHeight int32
	SkipImages  int32
}

// PixelPackState holds the pixel store parameters used for readbacks.
type PixelPackState struct {
	Alignment  int32
	RowLength  int32
	SkipRows   int32
	SkipPixels int32
}

// DefaultBlendState returns the initial blend state of a context.
func DefaultBlendState() BlendState {
	return BlendState{
		SrcRGB:         gl.GLenum_GL_ONE,
		DstRGB:         gl.GLenum_GL_ZERO,
		SrcAlpha:       gl.GLenum_GL_ONE,
		DstAlpha:       gl.GLenum_GL_ZERO,
		EquationRGB:    gl.GLenum_GL_FUNC_ADD,
		EquationAlpha:  gl.GLenum_GL_FUNC_ADD,
		ColorMaskRed:   true,
		ColorMaskGreen: true,
		ColorMaskBlue:  true,
		ColorMaskAlpha: true,
	}
}

// DefaultStencilFace returns the initial stencil state of a face.
func DefaultStencilFace() StencilFace {
	return StencilFace{
		Func:          gl.GLenum_GL_ALWAYS,
		ValueMask:     ^uint32(0),
		Fail:          gl.GLenum_GL_KEEP,
		PassDepthFail: gl.GLenum_GL_KEEP,
		PassDepthPass: gl.GLenum_GL_KEEP,
		WriteMask:     ^uint32(0),
	}
}

// DefaultDepthStencilState returns the initial depth and stencil state.
func DefaultDepthStencilState() DepthStencilState {
	return DepthStencilState{
		DepthFunc: gl.GLenum_GL_LESS,
		DepthMask: true,
		Front:     DefaultStencilFace(),
		Back:      DefaultStencilFace(),
	}
}

// DefaultRasterizerState returns the initial rasterizer state.
func DefaultRasterizerState() RasterizerState {
	return RasterizerState{
		CullMode:  gl.GLenum_GL_BACK,
		FrontFace: gl.GLenum_GL_CCW,
		Dither:    true,
	}
}

// State is the GL-visible state of one logical context.
type State struct {
	// ContextID identifies the logical context that owns this state.
	ContextID          uint64
	ClientMajorVersion int

	Caps gl.Caps

	ScissorTest bool
	Scissor     gl.Rectangle
	Viewport    gl.Rectangle
	NearZ       float32
	FarZ        float32

	Blend      BlendState
	BlendColor gl.ColorF

	SampleAlphaToCoverage bool
	SampleCoverageEnabled bool
	SampleCoverageValue   float32
	SampleCoverageInvert  bool
	SampleMaskEnabled     bool
	SampleMaskWords       []uint32

	DepthStencil DepthStencilState
	Rasterizer   RasterizerState
	LineWidth    float32

	PrimitiveRestart bool

	ClearColor   gl.ColorF
	ClearDepth   float32
	ClearStencil int32

	Unpack PixelUnpackState
	Pack   PixelPackState

	GenerateMipmapHint           gl.GLenum
	FragmentShaderDerivativeHint gl.GLenum

	Multisampling    bool
	SampleAlphaToOne bool
	FramebufferSRGB  bool

	ReadFramebuffer *Framebuffer
	DrawFramebuffer *Framebuffer
	Renderbuffer    *Renderbuffer
	VertexArray     *VertexArray

	// Buffers holds the non-indexed buffer bindings.
	Buffers [gl.BufferBindingCount]*Buffer

	Program *Program

	ActiveTextureUnit int
	SamplerTextures   [gl.TextureTypeCount][]*Texture
	Samplers          []*Sampler
	ImageUnits        []ImageUnit

	UniformBuffers       []OffsetBuffer
	ShaderStorageBuffers []OffsetBuffer
	AtomicCounterBuffers []OffsetBuffer

	TransformFeedback *TransformFeedback

	VertexAttribCurrentValues []gl.VertexAttribCurrentValue

	ActiveQueries [gl.QueryTypeCount]*Query

	dirty              dirty.Bits
	dirtyCurrentValues *bitset.BitSet
}

// New returns the initial state of a context with the given limits. Every
// dirty bit starts set so that the first synchronisation pushes all of it.
func New(caps gl.Caps) *State {
	s := &State{
		ClientMajorVersion:           3,
		Caps:                         caps,
		FarZ:                         1,
		Blend:                        DefaultBlendState(),
		SampleCoverageValue:          1,
		SampleMaskWords:              make([]uint32, caps.MaxSampleMaskWords),
		DepthStencil:                 DefaultDepthStencilState(),
		Rasterizer:                   DefaultRasterizerState(),
		LineWidth:                    1,
		ClearDepth:                   1,
		Unpack:                       PixelUnpackState{Alignment: 4},
		Pack:                         PixelPackState{Alignment: 4},
		GenerateMipmapHint:           gl.GLenum_GL_DONT_CARE,
		FragmentShaderDerivativeHint: gl.GLenum_GL_DONT_CARE,
		Multisampling:                true,
		Samplers:                     make([]*Sampler, caps.MaxCombinedTextureImageUnits),
		ImageUnits:                   make([]ImageUnit, caps.MaxImageUnits),
		UniformBuffers:               make([]OffsetBuffer, caps.MaxUniformBufferBindings),
		ShaderStorageBuffers:         make([]OffsetBuffer, caps.MaxShaderStorageBufferBindings),
		AtomicCounterBuffers:         make([]OffsetBuffer, caps.MaxAtomicCounterBufferBindings),
		VertexAttribCurrentValues:    make([]gl.VertexAttribCurrentValue, caps.MaxVertexAttributes),
		dirty:                        dirty.All(),
		dirtyCurrentValues:           bitset.New(uint(caps.MaxVertexAttributes)),
	}
	for i := range s.SampleMaskWords {
		s.SampleMaskWords[i] = ^uint32(0)
	}
	for t := range s.SamplerTextures {
		s.SamplerTextures[t] = make([]*Texture, caps.MaxCombinedTextureImageUnits)
	}
	for i := range s.ImageUnits {
		s.ImageUnits[i] = ImageUnit{Access: gl.GLenum_GL_READ_ONLY, Format: gl.GLenum_GL_R32UI}
	}
	for i := range s.VertexAttribCurrentValues {
		s.VertexAttribCurrentValues[i] = gl.DefaultVertexAttribCurrentValue
	}
	return s
}

// DirtyBits returns the set of categories changed since they were last
// synchronised. The state manager clears the bits it resolves.
func (s *State) DirtyBits() *dirty.Bits { return &s.dirty }

// Mark records that the category b changed outside of a setter, for instance
// after mutating a bound object in place.
func (s *State) Mark(b dirty.Bit) { s.dirty.Set(b) }

// TakeDirtyCurrentValues returns the set of vertex attributes whose current
// value changed since the last call, and clears it.
func (s *State) TakeDirtyCurrentValues() *bitset.BitSet {
	out := s.dirtyCurrentValues.Clone()
	s.dirtyCurrentValues.ClearAll()
	return out
}

// SamplerTexture returns the texture of type t bound to unit, or nil.
func (s *State) SamplerTexture(unit int, t gl.TextureType) *Texture {
	units := s.SamplerTextures[t]
	if unit < 0 || unit >= len(units) {
		return nil
	}
	return units[unit]
}

// IndexedBuffers returns the indexed bindings of the target b, or nil for a
// non-indexed target. Transform feedback bindings belong to the bound
// transform feedback object.
func (s *State) IndexedBuffers(b gl.BufferBinding) []OffsetBuffer {
	switch b {
	case gl.BufferBindingUniform:
		return s.UniformBuffers
	case gl.BufferBindingShaderStorage:
		return s.ShaderStorageBuffers
	case gl.BufferBindingAtomicCounter:
		return s.AtomicCounterBuffers
	case gl.BufferBindingTransformFeedback:
		if s.TransformFeedback != nil {
			return s.TransformFeedback.IndexedBuffers
		}
	}
	return nil
}

// Executable returns the executable of the current program, or nil.
func (s *State) Executable() *Executable {
	if s.Program == nil {
		return nil
	}
	return s.Program.Executable
}
