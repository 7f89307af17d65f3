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

// Package dirty holds the vocabulary of independently tracked GL state
// categories and the bit sets used to report changes to them.
//
// The numeric order of the bits is significant: a synchronisation pass visits
// bits in ascending order, and the program bits are resolved before the
// resource bindings that depend on them.
package dirty

import "fmt"

// Bit is one independently tracked category of GL state.
type Bit int

// The tracked state categories, in resolution order.
const (
	ScissorTestEnabled Bit = iota
	Scissor
	Viewport
	DepthRange
	BlendEnabled
	BlendColor
	BlendFuncs
	BlendEquations
	ColorMask
	SampleAlphaToCoverageEnabled
	SampleCoverageEnabled
	SampleCoverage
	SampleMaskEnabled
	SampleMask
	DepthTestEnabled
	DepthFunc
	DepthMask
	StencilTestEnabled
	StencilFuncsFront
	StencilFuncsBack
	StencilOpsFront
	StencilOpsBack
	StencilWritemaskFront
	StencilWritemaskBack
	CullFaceEnabled
	CullFace
	FrontFace
	PolygonOffsetFillEnabled
	PolygonOffset
	RasterizerDiscardEnabled
	LineWidth
	PrimitiveRestartEnabled
	ClearColor
	ClearDepth
	ClearStencil
	UnpackState
	UnpackBufferBinding
	PackState
	PackBufferBinding
	DitherEnabled
	GenerateMipmapHint
	ShaderDerivativeHint
	ReadFramebufferBinding
	DrawFramebufferBinding
	RenderbufferBinding
	VertexArrayBinding
	DrawIndirectBufferBinding
	DispatchIndirectBufferBinding
	ProgramBinding
	ProgramExecutable
	TextureBindings
	SamplerBindings
	ImageBindings
	TransformFeedbackBinding
	UniformBufferBindings
	ShaderStorageBufferBinding
	AtomicCounterBufferBinding
	Multisampling
	SampleAlphaToOne
	FramebufferSRGB
	CurrentValues

	// BitCount is the number of tracked state categories.
	BitCount
)

var bitNames = [BitCount]string{
	ScissorTestEnabled:            "ScissorTestEnabled",
	Scissor:                       "Scissor",
	Viewport:                      "Viewport",
	DepthRange:                    "DepthRange",
	BlendEnabled:                  "BlendEnabled",
	BlendColor:                    "BlendColor",
	BlendFuncs:                    "BlendFuncs",
	BlendEquations:                "BlendEquations",
	ColorMask:                     "ColorMask",
	SampleAlphaToCoverageEnabled:  "SampleAlphaToCoverageEnabled",
	SampleCoverageEnabled:         "SampleCoverageEnabled",
	SampleCoverage:                "SampleCoverage",
	SampleMaskEnabled:             "SampleMaskEnabled",
	SampleMask:                    "SampleMask",
	DepthTestEnabled:              "DepthTestEnabled",
	DepthFunc:                     "DepthFunc",
	DepthMask:                     "DepthMask",
	StencilTestEnabled:            "StencilTestEnabled",
	StencilFuncsFront:             "StencilFuncsFront",
	StencilFuncsBack:              "StencilFuncsBack",
	StencilOpsFront:               "StencilOpsFront",
	StencilOpsBack:                "StencilOpsBack",
	StencilWritemaskFront:         "StencilWritemaskFront",
	StencilWritemaskBack:          "StencilWritemaskBack",
	CullFaceEnabled:               "CullFaceEnabled",
	CullFace:                      "CullFace",
	FrontFace:                     "FrontFace",
	PolygonOffsetFillEnabled:      "PolygonOffsetFillEnabled",
	PolygonOffset:                 "PolygonOffset",
	RasterizerDiscardEnabled:      "RasterizerDiscardEnabled",
	LineWidth:                     "LineWidth",
	PrimitiveRestartEnabled:       "PrimitiveRestartEnabled",
	ClearColor:                    "ClearColor",
	ClearDepth:                    "ClearDepth",
	ClearStencil:                  "ClearStencil",
	UnpackState:                   "UnpackState",
	UnpackBufferBinding:           "UnpackBufferBinding",
	PackState:                     "PackState",
	PackBufferBinding:             "PackBufferBinding",
	DitherEnabled:                 "DitherEnabled",
	GenerateMipmapHint:            "GenerateMipmapHint",
	ShaderDerivativeHint:          "ShaderDerivativeHint",
	ReadFramebufferBinding:        "ReadFramebufferBinding",
	DrawFramebufferBinding:        "DrawFramebufferBinding",
	RenderbufferBinding:           "RenderbufferBinding",
	VertexArrayBinding:            "VertexArrayBinding",
	DrawIndirectBufferBinding:     "DrawIndirectBufferBinding",
	DispatchIndirectBufferBinding: "DispatchIndirectBufferBinding",
	ProgramBinding:                "ProgramBinding",
	ProgramExecutable:             "ProgramExecutable",
	TextureBindings:               "TextureBindings",
	SamplerBindings:               "SamplerBindings",
	ImageBindings:                 "ImageBindings",
	TransformFeedbackBinding:      "TransformFeedbackBinding",
	UniformBufferBindings:         "UniformBufferBindings",
	ShaderStorageBufferBinding:    "ShaderStorageBufferBinding",
	AtomicCounterBufferBinding:    "AtomicCounterBufferBinding",
	Multisampling:                 "Multisampling",
	SampleAlphaToOne:              "SampleAlphaToOne",
	FramebufferSRGB:               "FramebufferSRGB",
	CurrentValues:                 "CurrentValues",
}

func (b Bit) String() string {
	if b >= 0 && b < BitCount {
		return bitNames[b]
	}
	return fmt.Sprintf("Bit<%d>", int(b))
}
