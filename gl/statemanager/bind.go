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
)

// UseProgram makes program the current native program.
func (m *Manager) UseProgram(program uint32) {
	if m.s.Program != program {
		m.ForceUseProgram(program)
	}
}

// ForceUseProgram makes program the current native program even if it is
// already recorded as current.
func (m *Manager) ForceUseProgram(program uint32) {
	m.s.Program = program
	m.f.UseProgram(program)
	m.local.Set(dirty.ProgramBinding)
}

// BindVertexArray binds the native vertex array vao. elementArrayBuffer is
// the element array buffer captured by vao, which becomes the cached element
// array binding.
func (m *Manager) BindVertexArray(vao, elementArrayBuffer uint32) {
	if m.s.VertexArray != vao {
		m.s.VertexArray = vao
		m.s.Buffers[gl.BufferBindingElementArray] = elementArrayBuffer
		m.f.BindVertexArray(vao)
		m.local.Set(dirty.VertexArrayBinding)
	}
}

// BindBuffer binds buffer to the generic binding point of target.
func (m *Manager) BindBuffer(target gl.BufferBinding, buffer uint32) {
	if m.s.Buffers[target] != buffer {
		m.s.Buffers[target] = buffer
		m.f.BindBuffer(target.GLenum(), buffer)
	}
}

func (m *Manager) indexedBuffer(target gl.BufferBinding, index int) *IndexedBuffer {
	l := m.s.IndexedBuffers[target]
	if !m.invariant(target.Indexed(), "%v is not an indexed target", target) ||
		!m.invariant(index >= 0 && index < len(l), "%v binding %d out of range [0, %d)", target, index, len(l)) {
		return nil
	}
	return &l[index]
}

// BindBufferBase binds the whole of buffer to binding point index of target.
// It also replaces the generic binding of target.
func (m *Manager) BindBufferBase(target gl.BufferBinding, index int, buffer uint32) {
	b := m.indexedBuffer(target, index)
	if b == nil {
		return
	}
	if n := (IndexedBuffer{Buffer: buffer, Offset: -1, Size: -1}); *b != n {
		*b = n
		m.s.Buffers[target] = buffer
		m.f.BindBufferBase(target.GLenum(), uint32(index), buffer)
	}
}

// BindBufferRange binds size bytes of buffer starting at offset to binding
// point index of target. It also replaces the generic binding of target.
func (m *Manager) BindBufferRange(target gl.BufferBinding, index int, buffer uint32, offset, size int) {
	b := m.indexedBuffer(target, index)
	if b == nil {
		return
	}
	if n := (IndexedBuffer{Buffer: buffer, Offset: offset, Size: size}); *b != n {
		*b = n
		m.s.Buffers[target] = buffer
		m.f.BindBufferRange(target.GLenum(), uint32(index), buffer, offset, size)
	}
}

// ActiveTexture selects the texture unit used by BindTexture.
func (m *Manager) ActiveTexture(unit int) {
	if !m.invariant(unit >= 0 && unit < m.caps.MaxCombinedTextureImageUnits, "Texture unit %d out of range", unit) {
		return
	}
	if m.s.ActiveTextureUnit != unit {
		m.s.ActiveTextureUnit = unit
		m.f.ActiveTexture(gl.GLenum_GL_TEXTURE0 + gl.GLenum(unit))
	}
}

// BindTexture binds texture to target t of the active texture unit.
func (m *Manager) BindTexture(t gl.TextureType, texture uint32) {
	unit := m.s.ActiveTextureUnit
	if m.s.Textures[t][unit] != texture {
		m.s.Textures[t][unit] = texture
		m.f.BindTexture(t.GLenum(), texture)
		m.local.Set(dirty.TextureBindings)
	}
}

// BindSampler binds sampler to the texture unit.
func (m *Manager) BindSampler(unit int, sampler uint32) {
	if !m.invariant(unit >= 0 && unit < len(m.s.Samplers), "Sampler unit %d out of range", unit) {
		return
	}
	if m.s.Samplers[unit] != sampler {
		m.s.Samplers[unit] = sampler
		m.f.BindSampler(uint32(unit), sampler)
		m.local.Set(dirty.SamplerBindings)
	}
}

// BindImageTexture binds a level of texture to the image unit.
func (m *Manager) BindImageTexture(unit int, texture uint32, level int32, layered bool, layer int32, access, format gl.GLenum) {
	if !m.invariant(unit >= 0 && unit < len(m.s.Images), "Image unit %d out of range", unit) {
		return
	}
	n := ImageUnitBinding{
		Texture: texture,
		Level:   level,
		Layered: layered,
		Layer:   layer,
		Access:  access,
		Format:  format,
	}
	if o := m.s.Images[unit]; o != n {
		m.s.Images[unit] = n
		m.f.BindImageTexture(uint32(unit), texture, level, layered, layer, access, format)
		m.local.Set(dirty.ImageBindings)
	}
}

// BindFramebuffer binds framebuffer to target, which is one of
// GL_FRAMEBUFFER, GL_READ_FRAMEBUFFER or GL_DRAW_FRAMEBUFFER.
func (m *Manager) BindFramebuffer(target gl.GLenum, framebuffer uint32) {
	changed := false
	switch target {
	case gl.GLenum_GL_FRAMEBUFFER:
		read, draw := &m.s.Framebuffers[gl.FramebufferBindingRead], &m.s.Framebuffers[gl.FramebufferBindingDraw]
		if *read != framebuffer || *draw != framebuffer {
			*read, *draw = framebuffer, framebuffer
			m.f.BindFramebuffer(target, framebuffer)
			m.local.Set(dirty.ReadFramebufferBinding)
			m.local.Set(dirty.DrawFramebufferBinding)
			changed = true
		}
	case gl.GLenum_GL_READ_FRAMEBUFFER, gl.GLenum_GL_DRAW_FRAMEBUFFER:
		if !m.invariant(m.separateFramebufferBindings, "%v requires separate framebuffer bindings", target) {
			return
		}
		binding, bit := gl.FramebufferBindingRead, dirty.ReadFramebufferBinding
		if target == gl.GLenum_GL_DRAW_FRAMEBUFFER {
			binding, bit = gl.FramebufferBindingDraw, dirty.DrawFramebufferBinding
		}
		if m.s.Framebuffers[binding] != framebuffer {
			m.s.Framebuffers[binding] = framebuffer
			m.f.BindFramebuffer(target, framebuffer)
			m.local.Set(bit)
			changed = true
		}
	default:
		m.invariant(false, "Invalid framebuffer target %v", target)
		return
	}
	if changed && m.features.FlushOnFramebufferChange {
		m.f.Flush()
	}
}

// BindRenderbuffer binds the native renderbuffer.
func (m *Manager) BindRenderbuffer(renderbuffer uint32) {
	if m.s.Renderbuffer != renderbuffer {
		m.s.Renderbuffer = renderbuffer
		m.f.BindRenderbuffer(gl.GLenum_GL_RENDERBUFFER, renderbuffer)
		m.local.Set(dirty.RenderbufferBinding)
	}
}

// BindTransformFeedback binds the native transform feedback object id.
// Binding a different object pauses the one last synchronised as current, as
// only the bound object may be active.
func (m *Manager) BindTransformFeedback(id uint32) {
	if m.s.TransformFeedback == id {
		return
	}
	if m.currentTF != nil {
		m.currentTF.SyncPausedState(true)
		m.currentTF = nil
	}
	m.s.TransformFeedback = id
	m.f.BindTransformFeedback(gl.GLenum_GL_TRANSFORM_FEEDBACK, id)
	// The indexed capture bindings belong to the object.
	for i := range m.s.IndexedBuffers[gl.BufferBindingTransformFeedback] {
		m.s.IndexedBuffers[gl.BufferBindingTransformFeedback][i] = unknownBinding
	}
	m.local.Set(dirty.TransformFeedbackBinding)
}

// unknownBinding never matches a real binding, so the next bind is always
// issued.
var unknownBinding = IndexedBuffer{Offset: -2, Size: -2}
