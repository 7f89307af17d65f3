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
	"github.com/google/glsync/gl/native"
)

var _ native.Deleter = (*Manager)(nil)

// The Delete methods unbind a native handle from every binding point that
// holds it before deleting it, so that the cache never refers to a handle
// the driver may recycle.

// DeleteProgram deletes the native program.
func (m *Manager) DeleteProgram(program uint32) {
	if program == 0 {
		return
	}
	if m.s.Program == program {
		m.UseProgram(0)
	}
	m.f.DeleteProgram(program)
}

// DeleteVertexArray deletes the native vertex array.
func (m *Manager) DeleteVertexArray(vao uint32) {
	if vao == 0 {
		return
	}
	if m.s.VertexArray == vao {
		m.BindVertexArray(0, 0)
	}
	m.f.DeleteVertexArray(vao)
}

// DeleteTexture deletes the native texture.
func (m *Manager) DeleteTexture(texture uint32) {
	if texture == 0 {
		return
	}
	for t, units := range m.s.Textures {
		for unit, id := range units {
			if id == texture {
				m.ActiveTexture(unit)
				m.BindTexture(gl.TextureType(t), 0)
			}
		}
	}
	for unit, image := range m.s.Images {
		if image.Texture == texture {
			m.BindImageTexture(unit, 0, 0, false, 0, gl.GLenum_GL_READ_ONLY, gl.GLenum_GL_R32UI)
		}
	}
	m.f.DeleteTexture(texture)
}

// DeleteSampler deletes the native sampler.
func (m *Manager) DeleteSampler(sampler uint32) {
	if sampler == 0 {
		return
	}
	for unit, id := range m.s.Samplers {
		if id == sampler {
			m.BindSampler(unit, 0)
		}
	}
	m.f.DeleteSampler(sampler)
}

// DeleteBuffer deletes the native buffer.
func (m *Manager) DeleteBuffer(buffer uint32) {
	if buffer == 0 {
		return
	}
	for _, target := range gl.AllBufferBindings() {
		if m.s.Buffers[target] == buffer {
			m.BindBuffer(target, 0)
		}
		for index, b := range m.s.IndexedBuffers[target] {
			if b.Buffer == buffer {
				m.BindBufferBase(target, index, 0)
			}
		}
	}
	m.f.DeleteBuffer(buffer)
}

// DeleteFramebuffer deletes the native framebuffer.
func (m *Manager) DeleteFramebuffer(framebuffer uint32) {
	if framebuffer == 0 {
		return
	}
	if m.separateFramebufferBindings {
		if m.s.Framebuffers[gl.FramebufferBindingRead] == framebuffer {
			m.BindFramebuffer(gl.GLenum_GL_READ_FRAMEBUFFER, 0)
		}
		if m.s.Framebuffers[gl.FramebufferBindingDraw] == framebuffer {
			m.BindFramebuffer(gl.GLenum_GL_DRAW_FRAMEBUFFER, 0)
		}
	} else if m.s.Framebuffers[gl.FramebufferBindingRead] == framebuffer {
		m.BindFramebuffer(gl.GLenum_GL_FRAMEBUFFER, 0)
	}
	m.f.DeleteFramebuffer(framebuffer)
}

// DeleteRenderbuffer deletes the native renderbuffer.
func (m *Manager) DeleteRenderbuffer(renderbuffer uint32) {
	if renderbuffer == 0 {
		return
	}
	if m.s.Renderbuffer == renderbuffer {
		m.BindRenderbuffer(0)
	}
	m.f.DeleteRenderbuffer(renderbuffer)
}

// DeleteTransformFeedback deletes the native transform feedback object.
func (m *Manager) DeleteTransformFeedback(id uint32) {
	if id == 0 {
		return
	}
	if m.s.TransformFeedback == id {
		m.BindTransformFeedback(0)
	}
	if m.currentTF != nil && m.currentTF.NativeID() == id {
		m.currentTF = nil
	}
	m.f.DeleteTransformFeedback(id)
}

// DeleteQuery deletes a native query id. Ids are never bound, but the id of a
// query that is counting must not be deleted.
func (m *Manager) DeleteQuery(id uint32) {
	if id == 0 {
		return
	}
	for t, q := range m.queries {
		running, ok := q.(*Query)
		if !m.invariant(!ok || running.runningID() != id, "Deleting %v query %d while it counts", gl.QueryType(t), id) {
			return
		}
	}
	m.f.DeleteQuery(id)
}
