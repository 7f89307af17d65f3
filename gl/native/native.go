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

// Package native holds thin owners of native GL object handles.
//
// Each wrapper generates its handle on construction and hands it back through
// a Deleter on Release, so that whatever tracks the native bindings can unbind
// the handle before it is deleted.
package native

import "github.com/google/glsync/gl"

// Deleter deletes native handles on behalf of the wrappers. It is normally
// the state manager, which unbinds a handle from every binding point before
// deleting it.
type Deleter interface {
	DeleteBuffer(id uint32)
	DeleteTexture(id uint32)
	DeleteSampler(id uint32)
	DeleteFramebuffer(id uint32)
	DeleteRenderbuffer(id uint32)
	DeleteVertexArray(id uint32)
	DeleteProgram(id uint32)
	DeleteTransformFeedback(id uint32)
	DeleteQuery(id uint32)
}

type handle struct {
	id  uint32
	del func(uint32)
}

// NativeID returns the native handle, or 0 once released.
func (h *handle) NativeID() uint32 {
	if h == nil {
		return 0
	}
	return h.id
}

// Release deletes the native handle. Further calls have no effect.
func (h *handle) Release() {
	if h == nil || h.id == 0 {
		return
	}
	id := h.id
	h.id = 0
	h.del(id)
}

// Buffer owns a native buffer.
type Buffer struct{ handle }

// NewBuffer generates a native buffer.
func NewBuffer(f gl.Functions, d Deleter) *Buffer {
	return &Buffer{handle{f.GenBuffer(), d.DeleteBuffer}}
}

// Texture owns a native texture.
type Texture struct{ handle }

// NewTexture generates a native texture.
func NewTexture(f gl.Functions, d Deleter) *Texture {
	return &Texture{handle{f.GenTexture(), d.DeleteTexture}}
}

// Sampler owns a native sampler.
type Sampler struct{ handle }

// NewSampler generates a native sampler.
func NewSampler(f gl.Functions, d Deleter) *Sampler {
	return &Sampler{handle{f.GenSampler(), d.DeleteSampler}}
}

// Framebuffer owns a native framebuffer.
type Framebuffer struct{ handle }

// NewFramebuffer generates a native framebuffer.
func NewFramebuffer(f gl.Functions, d Deleter) *Framebuffer {
	return &Framebuffer{handle{f.GenFramebuffer(), d.DeleteFramebuffer}}
}

// Renderbuffer owns a native renderbuffer.
type Renderbuffer struct{ handle }

// NewRenderbuffer generates a native renderbuffer.
func NewRenderbuffer(f gl.Functions, d Deleter) *Renderbuffer {
	return &Renderbuffer{handle{f.GenRenderbuffer(), d.DeleteRenderbuffer}}
}

// VertexArray owns a native vertex array.
type VertexArray struct{ handle }

// NewVertexArray generates a native vertex array.
func NewVertexArray(f gl.Functions, d Deleter) *VertexArray {
	return &VertexArray{handle{f.GenVertexArray(), d.DeleteVertexArray}}
}

// Program owns a native program.
type Program struct{ handle }

// NewProgram creates a native program.
func NewProgram(f gl.Functions, d Deleter) *Program {
	return &Program{handle{f.CreateProgram(), d.DeleteProgram}}
}

// TransformFeedback owns a native transform feedback object.
type TransformFeedback struct{ handle }

// NewTransformFeedback generates a native transform feedback object.
func NewTransformFeedback(f gl.Functions, d Deleter) *TransformFeedback {
	return &TransformFeedback{handle{f.GenTransformFeedback(), d.DeleteTransformFeedback}}
}

// Query owns a native query id. A query object that is paused and resumed
// uses a new id for every segment.
type Query struct{ handle }

// NewQuery generates a native query id.
func NewQuery(f gl.Functions, d Deleter) *Query {
	return &Query{handle{f.GenQuery(), d.DeleteQuery}}
}
