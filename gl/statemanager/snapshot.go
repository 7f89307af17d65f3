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
	"github.com/golang/protobuf/jsonpb"
	"github.com/google/glsync/gl"
	"github.com/google/glsync/gl/state"
	"google.golang.org/protobuf/types/known/structpb"
)

// IndexedBuffer is the cached binding of one indexed buffer binding point.
// Offset and Size are -1 for a whole-buffer binding.
type IndexedBuffer struct {
	Buffer uint32
	Offset int
	Size   int
}

// ImageUnitBinding is the cached binding of one image unit.
type ImageUnitBinding struct {
	Texture uint32
	Level   int32
	Layered bool
	Layer   int32
	Access  gl.GLenum
	Format  gl.GLenum
}

// Snapshot is the Manager's record of the native GL state. Every field holds
// the value last sent to the driver.
type Snapshot struct {
	Program           uint32
	VertexArray       uint32
	Buffers           [gl.BufferBindingCount]uint32
	IndexedBuffers    [gl.BufferBindingCount][]IndexedBuffer
	ActiveTextureUnit int
	Textures          [gl.TextureTypeCount][]uint32
	Samplers          []uint32
	Images            []ImageUnitBinding
	Framebuffers      [gl.FramebufferBindingCount]uint32
	Renderbuffer      uint32
	TransformFeedback uint32

	ScissorTestEnabled bool
	// Scissors and Viewports hold one rectangle per view.
	Scissors  []gl.Rectangle
	Viewports []gl.Rectangle
	NearZ     float32
	FarZ      float32

	Blend      state.BlendState
	BlendColor gl.ColorF

	SampleAlphaToCoverageEnabled bool
	SampleCoverageEnabled        bool
	SampleCoverageValue          float32
	SampleCoverageInvert         bool
	SampleMaskEnabled            bool
	SampleMaskWords              []uint32

	DepthStencil state.DepthStencilState
	Rasterizer   state.RasterizerState
	LineWidth    float32

	PrimitiveRestartEnabled bool
	PrimitiveRestartIndex   uint32

	ClearColor   gl.ColorF
	ClearDepth   float32
	ClearStencil int32

	Unpack state.PixelUnpackState
	Pack   state.PixelPackState

	GenerateMipmapHint           gl.GLenum
	FragmentShaderDerivativeHint gl.GLenum

	MultisamplingEnabled          bool
	SampleAlphaToOneEnabled       bool
	FramebufferSRGBEnabled        bool
	TextureCubemapSeamlessEnabled bool

	VertexAttribCurrentValues []gl.VertexAttribCurrentValue

	SideBySideDrawFramebuffer bool
	ViewportOffsets           []gl.Offset
}

func numViews(caps gl.Caps) int {
	if caps.MaxViews > 1 {
		return caps.MaxViews
	}
	return 1
}

// defaultSnapshot returns the initial state of a native context.
func defaultSnapshot(caps gl.Caps) Snapshot {
	s := Snapshot{
		Samplers:                     make([]uint32, caps.MaxCombinedTextureImageUnits),
		Images:                       make([]ImageUnitBinding, caps.MaxImageUnits),
		Scissors:                     make([]gl.Rectangle, numViews(caps)),
		Viewports:                    make([]gl.Rectangle, numViews(caps)),
		FarZ:                         1,
		Blend:                        state.DefaultBlendState(),
		SampleCoverageValue:          1,
		SampleMaskWords:              make([]uint32, caps.MaxSampleMaskWords),
		DepthStencil:                 state.DefaultDepthStencilState(),
		Rasterizer:                   state.DefaultRasterizerState(),
		LineWidth:                    1,
		ClearDepth:                   1,
		Unpack:                       state.PixelUnpackState{Alignment: 4},
		Pack:                         state.PixelPackState{Alignment: 4},
		GenerateMipmapHint:           gl.GLenum_GL_DONT_CARE,
		FragmentShaderDerivativeHint: gl.GLenum_GL_DONT_CARE,
		MultisamplingEnabled:         true,
		VertexAttribCurrentValues:    make([]gl.VertexAttribCurrentValue, caps.MaxVertexAttributes),
		ViewportOffsets:              []gl.Offset{{}},
	}
	for _, b := range gl.AllBufferBindings() {
		if n := caps.IndexedBufferBindings(b); n > 0 {
			s.IndexedBuffers[b] = make([]IndexedBuffer, n)
		}
	}
	for t := range s.Textures {
		s.Textures[t] = make([]uint32, caps.MaxCombinedTextureImageUnits)
	}
	for i := range s.Images {
		s.Images[i] = ImageUnitBinding{Access: gl.GLenum_GL_READ_ONLY, Format: gl.GLenum_GL_R32UI}
	}
	for i := range s.SampleMaskWords {
		s.SampleMaskWords[i] = ^uint32(0)
	}
	for i := range s.VertexAttribCurrentValues {
		s.VertexAttribCurrentValues[i] = gl.DefaultVertexAttribCurrentValue
	}
	return s
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	for i, l := range s.IndexedBuffers {
		out.IndexedBuffers[i] = append([]IndexedBuffer(nil), l...)
	}
	for i, l := range s.Textures {
		out.Textures[i] = append([]uint32(nil), l...)
	}
	out.Samplers = append([]uint32(nil), s.Samplers...)
	out.Images = append([]ImageUnitBinding(nil), s.Images...)
	out.Scissors = append([]gl.Rectangle(nil), s.Scissors...)
	out.Viewports = append([]gl.Rectangle(nil), s.Viewports...)
	out.SampleMaskWords = append([]uint32(nil), s.SampleMaskWords...)
	out.VertexAttribCurrentValues = append([]gl.VertexAttribCurrentValue(nil), s.VertexAttribCurrentValues...)
	out.ViewportOffsets = append([]gl.Offset(nil), s.ViewportOffsets...)
	return out
}

// Proto returns the snapshot as a protobuf Struct, for debug dumps.
func (s Snapshot) Proto() (*structpb.Struct, error) {
	return structpb.NewStruct(s.fields())
}

// JSON returns the snapshot as indented JSON.
func (s Snapshot) JSON() (string, error) {
	pb, err := s.Proto()
	if err != nil {
		return "", err
	}
	m := jsonpb.Marshaler{Indent: "  "}
	return m.MarshalToString(pb)
}

func (s Snapshot) fields() map[string]interface{} {
	buffers := map[string]interface{}{}
	indexed := map[string]interface{}{}
	for _, b := range gl.AllBufferBindings() {
		buffers[b.String()] = s.Buffers[b]
		if l := s.IndexedBuffers[b]; len(l) > 0 {
			list := make([]interface{}, len(l))
			for i, ib := range l {
				list[i] = map[string]interface{}{
					"buffer": ib.Buffer,
					"offset": ib.Offset,
					"size":   ib.Size,
				}
			}
			indexed[b.String()] = list
		}
	}
	textures := map[string]interface{}{}
	for t, l := range s.Textures {
		textures[gl.TextureType(t).String()] = uint32List(l)
	}
	images := make([]interface{}, len(s.Images))
	for i, u := range s.Images {
		images[i] = map[string]interface{}{
			"texture": u.Texture,
			"level":   u.Level,
			"layered": u.Layered,
			"layer":   u.Layer,
			"access":  u.Access.String(),
			"format":  u.Format.String(),
		}
	}
	attribs := make([]interface{}, len(s.VertexAttribCurrentValues))
	for i, v := range s.VertexAttribCurrentValues {
		attribs[i] = currentValue(v)
	}
	offsets := make([]interface{}, len(s.ViewportOffsets))
	for i, o := range s.ViewportOffsets {
		offsets[i] = map[string]interface{}{"x": o.X, "y": o.Y}
	}
	ds, rs, b := s.DepthStencil, s.Rasterizer, s.Blend
	return map[string]interface{}{
		"program":           s.Program,
		"vertexArray":       s.VertexArray,
		"buffers":           buffers,
		"indexedBuffers":    indexed,
		"activeTextureUnit": s.ActiveTextureUnit,
		"textures":          textures,
		"samplers":          uint32List(s.Samplers),
		"images":            images,
		"readFramebuffer":   s.Framebuffers[gl.FramebufferBindingRead],
		"drawFramebuffer":   s.Framebuffers[gl.FramebufferBindingDraw],
		"renderbuffer":      s.Renderbuffer,
		"transformFeedback": s.TransformFeedback,
		"scissorTest":       s.ScissorTestEnabled,
		"scissors":          rectList(s.Scissors),
		"viewports":         rectList(s.Viewports),
		"depthRange":        []interface{}{s.NearZ, s.FarZ},
		"blend": map[string]interface{}{
			"enabled":       b.Enabled,
			"srcRGB":        b.SrcRGB.String(),
			"dstRGB":        b.DstRGB.String(),
			"srcAlpha":      b.SrcAlpha.String(),
			"dstAlpha":      b.DstAlpha.String(),
			"equationRGB":   b.EquationRGB.String(),
			"equationAlpha": b.EquationAlpha.String(),
			"colorMask":     []interface{}{b.ColorMaskRed, b.ColorMaskGreen, b.ColorMaskBlue, b.ColorMaskAlpha},
			"color":         color(s.BlendColor),
		},
		"sampleAlphaToCoverage": s.SampleAlphaToCoverageEnabled,
		"sampleCoverage": map[string]interface{}{
			"enabled": s.SampleCoverageEnabled,
			"value":   s.SampleCoverageValue,
			"invert":  s.SampleCoverageInvert,
		},
		"sampleMask": map[string]interface{}{
			"enabled": s.SampleMaskEnabled,
			"words":   uint32List(s.SampleMaskWords),
		},
		"depth": map[string]interface{}{
			"test": ds.DepthTest,
			"func": ds.DepthFunc.String(),
			"mask": ds.DepthMask,
		},
		"stencil": map[string]interface{}{
			"test":  ds.StencilTest,
			"front": stencilFace(ds.Front),
			"back":  stencilFace(ds.Back),
		},
		"rasterizer": map[string]interface{}{
			"cullFace":            rs.CullFace,
			"cullMode":            rs.CullMode.String(),
			"frontFace":           rs.FrontFace.String(),
			"polygonOffsetFill":   rs.PolygonOffsetFill,
			"polygonOffsetFactor": rs.PolygonOffsetFactor,
			"polygonOffsetUnits":  rs.PolygonOffsetUnits,
			"rasterizerDiscard":   rs.RasterizerDiscard,
			"dither":              rs.Dither,
		},
		"lineWidth":             s.LineWidth,
		"primitiveRestart":      s.PrimitiveRestartEnabled,
		"primitiveRestartIndex": s.PrimitiveRestartIndex,
		"clearColor":            color(s.ClearColor),
		"clearDepth":            s.ClearDepth,
		"clearStencil":          s.ClearStencil,
		"unpack": map[string]interface{}{
			"alignment":   s.Unpack.Alignment,
			"rowLength":   s.Unpack.RowLength,
			"skipRows":    s.Unpack.SkipRows,
			"skipPixels":  s.Unpack.SkipPixels,
			"imageHeight": s.Unpack.ImageHeight,
			"skipImages":  s.Unpack.SkipImages,
		},
		"pack": map[string]interface{}{
			"alignment":  s.Pack.Alignment,
			"rowLength":  s.Pack.RowLength,
			"skipRows":   s.Pack.SkipRows,
			"skipPixels": s.Pack.SkipPixels,
		},
		"generateMipmapHint":           s.GenerateMipmapHint.String(),
		"fragmentShaderDerivativeHint": s.FragmentShaderDerivativeHint.String(),
		"multisampling":                s.MultisamplingEnabled,
		"sampleAlphaToOne":             s.SampleAlphaToOneEnabled,
		"framebufferSRGB":              s.FramebufferSRGBEnabled,
		"textureCubemapSeamless":       s.TextureCubemapSeamlessEnabled,
		"vertexAttribCurrentValues":    attribs,
		"sideBySideDrawFramebuffer":    s.SideBySideDrawFramebuffer,
		"viewportOffsets":              offsets,
	}
}

func uint32List(l []uint32) []interface{} {
	out := make([]interface{}, len(l))
	for i, v := range l {
		out[i] = v
	}
	return out
}

func rectList(l []gl.Rectangle) []interface{} {
	out := make([]interface{}, len(l))
	for i, r := range l {
		out[i] = []interface{}{r.X, r.Y, r.Width, r.Height}
	}
	return out
}

func color(c gl.ColorF) []interface{} {
	return []interface{}{c.Red, c.Green, c.Blue, c.Alpha}
}

func stencilFace(f state.StencilFace) map[string]interface{} {
	return map[string]interface{}{
		"func":          f.Func.String(),
		"ref":           f.Ref,
		"valueMask":     f.ValueMask,
		"fail":          f.Fail.String(),
		"passDepthFail": f.PassDepthFail.String(),
		"passDepthPass": f.PassDepthPass.String(),
		"writeMask":     f.WriteMask,
	}
}

func currentValue(v gl.VertexAttribCurrentValue) map[string]interface{} {
	out := map[string]interface{}{"type": v.Type.String()}
	switch v.Type {
	case gl.VertexAttribTypeInt:
		out["value"] = []interface{}{v.Int[0], v.Int[1], v.Int[2], v.Int[3]}
	case gl.VertexAttribTypeUnsignedInt:
		out["value"] = []interface{}{v.Uint[0], v.Uint[1], v.Uint[2], v.Uint[3]}
	default:
		out["value"] = []interface{}{v.Float[0], v.Float[1], v.Float[2], v.Float[3]}
	}
	return out
}
