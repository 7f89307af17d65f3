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

import "fmt"

func (e GLenum) String() string { return fmt.Sprintf("0x%.4X", uint32(e)) }

// Standard is the flavour of the native GL backend.
type Standard int

const (
	// StandardGL is desktop OpenGL.
	StandardGL Standard = iota
	// StandardGLES is OpenGL ES.
	StandardGLES
)

func (s Standard) String() string {
	if s == StandardGLES {
		return "GLES"
	}
	return "GL"
}

// BufferBinding is a non-indexed or indexed buffer target.
type BufferBinding int

const (
	BufferBindingArray BufferBinding = iota
	BufferBindingAtomicCounter
	BufferBindingCopyRead
	BufferBindingCopyWrite
	BufferBindingDispatchIndirect
	BufferBindingDrawIndirect
	BufferBindingElementArray
	BufferBindingPixelPack
	BufferBindingPixelUnpack
	BufferBindingShaderStorage
	BufferBindingTexture
	BufferBindingTransformFeedback
	BufferBindingUniform

	// BufferBindingCount is the number of buffer bindings.
	BufferBindingCount
)

var bufferBindings = [BufferBindingCount]struct {
	name  string
	enum  GLenum
	index bool
}{
	BufferBindingArray:             {"Array", GLenum_GL_ARRAY_BUFFER, false},
	BufferBindingAtomicCounter:     {"AtomicCounter", GLenum_GL_ATOMIC_COUNTER_BUFFER, true},
	BufferBindingCopyRead:          {"CopyRead", GLenum_GL_COPY_READ_BUFFER, false},
	BufferBindingCopyWrite:         {"CopyWrite", GLenum_GL_COPY_WRITE_BUFFER, false},
	BufferBindingDispatchIndirect:  {"DispatchIndirect", GLenum_GL_DISPATCH_INDIRECT_BUFFER, false},
	BufferBindingDrawIndirect:      {"DrawIndirect", GLenum_GL_DRAW_INDIRECT_BUFFER, false},
	BufferBindingElementArray:      {"ElementArray", GLenum_GL_ELEMENT_ARRAY_BUFFER, false},
	BufferBindingPixelPack:         {"PixelPack", GLenum_GL_PIXEL_PACK_BUFFER, false},
	BufferBindingPixelUnpack:       {"PixelUnpack", GLenum_GL_PIXEL_UNPACK_BUFFER, false},
	BufferBindingShaderStorage:     {"ShaderStorage", GLenum_GL_SHADER_STORAGE_BUFFER, true},
	BufferBindingTexture:           {"Texture", GLenum_GL_TEXTURE_BUFFER, false},
	BufferBindingTransformFeedback: {"TransformFeedback", GLenum_GL_TRANSFORM_FEEDBACK_BUFFER, true},
	BufferBindingUniform:           {"Uniform", GLenum_GL_UNIFORM_BUFFER, true},
}

// AllBufferBindings returns every buffer binding in order.
func AllBufferBindings() []BufferBinding {
	out := make([]BufferBinding, BufferBindingCount)
	for i := range out {
		out[i] = BufferBinding(i)
	}
	return out
}

// GLenum returns the native target for the binding.
func (b BufferBinding) GLenum() GLenum { return bufferBindings[b].enum }

// Indexed returns true if the binding has indexed binding points.
func (b BufferBinding) Indexed() bool { return bufferBindings[b].index }

func (b BufferBinding) String() string {
	if b >= 0 && b < BufferBindingCount {
		return bufferBindings[b].name
	}
	return fmt.Sprintf("BufferBinding<%d>", int(b))
}

// TextureType is a texture target.
type TextureType int

const (
	TextureType2D TextureType = iota
	TextureType2DArray
	TextureType2DMultisample
	TextureType2DMultisampleArray
	TextureType3D
	TextureTypeExternal
	TextureTypeRectangle
	TextureTypeCubeMap
	TextureTypeCubeMapArray
	TextureTypeBuffer

	// TextureTypeCount is the number of texture types.
	TextureTypeCount
)

var textureTypes = [TextureTypeCount]struct {
	name string
	enum GLenum
}{
	TextureType2D:                 {"2D", GLenum_GL_TEXTURE_2D},
	TextureType2DArray:            {"2DArray", GLenum_GL_TEXTURE_2D_ARRAY},
	TextureType2DMultisample:      {"2DMultisample", GLenum_GL_TEXTURE_2D_MULTISAMPLE},
	TextureType2DMultisampleArray: {"2DMultisampleArray", GLenum_GL_TEXTURE_2D_MULTISAMPLE_ARRAY},
	TextureType3D:                 {"3D", GLenum_GL_TEXTURE_3D},
	TextureTypeExternal:           {"External", GLenum_GL_TEXTURE_EXTERNAL_OES},
	TextureTypeRectangle:          {"Rectangle", GLenum_GL_TEXTURE_RECTANGLE},
	TextureTypeCubeMap:            {"CubeMap", GLenum_GL_TEXTURE_CUBE_MAP},
	TextureTypeCubeMapArray:       {"CubeMapArray", GLenum_GL_TEXTURE_CUBE_MAP_ARRAY},
	TextureTypeBuffer:             {"Buffer", GLenum_GL_TEXTURE_BUFFER},
}

// GLenum returns the native target for the texture type.
func (t TextureType) GLenum() GLenum { return textureTypes[t].enum }

func (t TextureType) String() string {
	if t >= 0 && t < TextureTypeCount {
		return textureTypes[t].name
	}
	return fmt.Sprintf("TextureType<%d>", int(t))
}

// QueryType is the type of a query object.
type QueryType int

const (
	QueryTypeAnySamples QueryType = iota
	QueryTypeAnySamplesConservative
	QueryTypePrimitivesGenerated
	QueryTypeTimeElapsed
	QueryTypeTransformFeedbackPrimitivesWritten

	// QueryTypeCount is the number of query types.
	QueryTypeCount
)

var queryTypes = [QueryTypeCount]struct {
	name string
	enum GLenum
}{
	QueryTypeAnySamples:                         {"AnySamples", GLenum_GL_ANY_SAMPLES_PASSED},
	QueryTypeAnySamplesConservative:             {"AnySamplesConservative", GLenum_GL_ANY_SAMPLES_PASSED_CONSERVATIVE},
	QueryTypePrimitivesGenerated:                {"PrimitivesGenerated", GLenum_GL_PRIMITIVES_GENERATED},
	QueryTypeTimeElapsed:                        {"TimeElapsed", GLenum_GL_TIME_ELAPSED},
	QueryTypeTransformFeedbackPrimitivesWritten: {"TransformFeedbackPrimitivesWritten", GLenum_GL_TRANSFORM_FEEDBACK_PRIMITIVES_WRITTEN},
}

// GLenum returns the native target for the query type.
func (q QueryType) GLenum() GLenum { return queryTypes[q].enum }

// IsAnySamples returns true for the boolean occlusion query types, whose
// results combine with a logical or instead of a sum.
func (q QueryType) IsAnySamples() bool {
	return q == QueryTypeAnySamples || q == QueryTypeAnySamplesConservative
}

func (q QueryType) String() string {
	if q >= 0 && q < QueryTypeCount {
		return queryTypes[q].name
	}
	return fmt.Sprintf("QueryType<%d>", int(q))
}

// FramebufferBinding is one of the two separate framebuffer binding slots.
type FramebufferBinding int

const (
	FramebufferBindingRead FramebufferBinding = iota
	FramebufferBindingDraw

	// FramebufferBindingCount is the number of framebuffer binding slots.
	FramebufferBindingCount
)

// GLenum returns the native target for the binding slot.
func (b FramebufferBinding) GLenum() GLenum {
	if b == FramebufferBindingRead {
		return GLenum_GL_READ_FRAMEBUFFER
	}
	return GLenum_GL_DRAW_FRAMEBUFFER
}

func (b FramebufferBinding) String() string {
	if b == FramebufferBindingRead {
		return "Read"
	}
	return "Draw"
}

// MultiviewLayout is the multiview layout of a framebuffer.
type MultiviewLayout int

const (
	MultiviewLayoutNone MultiviewLayout = iota
	MultiviewLayoutSideBySide
	MultiviewLayoutLayered
)

func (l MultiviewLayout) String() string {
	switch l {
	case MultiviewLayoutSideBySide:
		return "SideBySide"
	case MultiviewLayoutLayered:
		return "Layered"
	default:
		return "None"
	}
}

// VertexAttribType is the component type of a current vertex attribute value.
type VertexAttribType int

const (
	VertexAttribTypeFloat VertexAttribType = iota
	VertexAttribTypeInt
	VertexAttribTypeUnsignedInt
)

// GLenum returns the native component type.
func (t VertexAttribType) GLenum() GLenum {
	switch t {
	case VertexAttribTypeInt:
		return GLenum_GL_INT
	case VertexAttribTypeUnsignedInt:
		return GLenum_GL_UNSIGNED_INT
	default:
		return GLenum_GL_FLOAT
	}
}

func (t VertexAttribType) String() string {
	switch t {
	case VertexAttribTypeInt:
		return "Int"
	case VertexAttribTypeUnsignedInt:
		return "UnsignedInt"
	default:
		return "Float"
	}
}
