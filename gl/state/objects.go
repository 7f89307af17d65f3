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
	"context"

	"github.com/google/glsync/gl"
)

// Native is the backend payload of an abstract object that owns a single
// native handle.
type Native interface {
	NativeID() uint32
}

func nativeID(n Native) uint32 {
	if n == nil {
		return 0
	}
	return n.NativeID()
}

// Buffer is an abstract buffer object.
type Buffer struct {
	Impl Native
}

// NativeID returns the native handle of the buffer, or 0 for a nil buffer.
func (b *Buffer) NativeID() uint32 {
	if b == nil {
		return 0
	}
	return nativeID(b.Impl)
}

// Texture is an abstract texture object.
type Texture struct {
	Type gl.TextureType
	// Incomplete textures sample as if no texture was bound.
	Incomplete bool
	Impl       Native
}

// NativeID returns the native handle of the texture, or 0 for a nil texture.
func (t *Texture) NativeID() uint32 {
	if t == nil {
		return 0
	}
	return nativeID(t.Impl)
}

// Sampler is an abstract sampler object.
type Sampler struct {
	Impl Native
}

// NativeID returns the native handle of the sampler, or 0 for a nil sampler.
func (s *Sampler) NativeID() uint32 {
	if s == nil {
		return 0
	}
	return nativeID(s.Impl)
}

// Renderbuffer is an abstract renderbuffer object.
type Renderbuffer struct {
	Impl Native
}

// NativeID returns the native handle of the renderbuffer, or 0 for nil.
func (r *Renderbuffer) NativeID() uint32 {
	if r == nil {
		return 0
	}
	return nativeID(r.Impl)
}

// Framebuffer is an abstract framebuffer object.
type Framebuffer struct {
	// Default is true for the window-system provided framebuffer.
	Default         bool
	MultiviewLayout gl.MultiviewLayout
	NumViews        int
	// ViewportOffsets holds one offset per view for side-by-side layouts.
	ViewportOffsets []gl.Offset
	Impl            Native
}

// NativeID returns the native handle of the framebuffer, or 0 for nil.
func (f *Framebuffer) NativeID() uint32 {
	if f == nil {
		return 0
	}
	return nativeID(f.Impl)
}

// IsSideBySide returns true if the framebuffer uses a side-by-side multiview
// layout.
func (f *Framebuffer) IsSideBySide() bool {
	return f != nil && f.MultiviewLayout == gl.MultiviewLayoutSideBySide
}

// VertexArray is an abstract vertex array object.
type VertexArray struct {
	// ElementArrayBuffer is carried by the vertex array, not the context.
	ElementArrayBuffer *Buffer
	Impl               Native
}

// NativeID returns the native handle of the vertex array, or 0 for nil.
func (v *VertexArray) NativeID() uint32 {
	if v == nil {
		return 0
	}
	return nativeID(v.Impl)
}

// SamplerBinding is the set of texture units read by one sampler uniform.
type SamplerBinding struct {
	Type  gl.TextureType
	Units []int
}

// ImageBinding is the set of image units read by one image uniform.
type ImageBinding struct {
	Units []int
}

// Executable is the resource layout of a linked program.
type Executable struct {
	SamplerBindings []SamplerBinding
	ImageBindings   []ImageBinding
	// The binding index of each active uniform block.
	UniformBlockBindings []int
	// The binding index of each active shader storage block.
	ShaderStorageBlockBindings []int
	// The binding index of each active atomic counter buffer.
	AtomicCounterBufferBindings []int
	UsesMultiview               bool
	NumViews                    int
}

// Program is an abstract program object.
type Program struct {
	Executable *Executable
	Impl       Native
}

// NativeID returns the native handle of the program, or 0 for nil.
func (p *Program) NativeID() uint32 {
	if p == nil {
		return 0
	}
	return nativeID(p.Impl)
}

// QueryImpl is the backend payload of a query object.
type QueryImpl interface {
	// Pause ends the current native query segment.
	Pause(ctx context.Context)
	// Resume starts a new native query segment.
	Resume(ctx context.Context)
}

// Query is an abstract query object.
type Query struct {
	Type gl.QueryType
	Impl QueryImpl
}

// OffsetBuffer is an indexed buffer binding. A Size of 0 binds the whole
// buffer.
type OffsetBuffer struct {
	Buffer *Buffer
	Offset int
	Size   int
}

// TransformFeedbackImpl is the backend payload of a transform feedback object.
type TransformFeedbackImpl interface {
	NativeID() uint32
	// SyncActiveState begins or ends transform feedback on the native object.
	SyncActiveState(active bool, primitiveMode gl.GLenum, program uint32)
	// SyncPausedState pauses or resumes an active native transform feedback.
	SyncPausedState(paused bool)
	// SyncIndexedBuffers binds the capture buffers of the object.
	SyncIndexedBuffers(buffers []OffsetBuffer)
}

// TransformFeedback is an abstract transform feedback object.
type TransformFeedback struct {
	Active         bool
	Paused         bool
	PrimitiveMode  gl.GLenum
	Program        *Program
	IndexedBuffers []OffsetBuffer
	Impl           TransformFeedbackImpl
}

// NativeID returns the native handle of the object, or 0 for nil.
func (t *TransformFeedback) NativeID() uint32 {
	if t == nil || t.Impl == nil {
		return 0
	}
	return t.Impl.NativeID()
}

// ImageUnit is the binding of one image unit.
type ImageUnit struct {
	Texture *Texture
	Level   int32
	Layered bool
	Layer   int32
	Access  gl.GLenum
	Format  gl.GLenum
}
