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
	"github.com/google/glsync/gl/state"
)

// onProgramExecutableChanged schedules the resource categories the current
// program reads, so they are revalidated later in the same pass.
func (m *Manager) onProgramExecutableChanged(st *state.State, it *dirty.Iterator) {
	exe := st.Executable()
	if exe == nil {
		return
	}
	if len(exe.SamplerBindings) > 0 {
		it.SetLater(dirty.TextureBindings)
		it.SetLater(dirty.SamplerBindings)
	}
	if len(exe.ImageBindings) > 0 {
		it.SetLater(dirty.ImageBindings)
	}
	if len(exe.UniformBlockBindings) > 0 {
		it.SetLater(dirty.UniformBufferBindings)
	}
	if len(exe.ShaderStorageBlockBindings) > 0 {
		it.SetLater(dirty.ShaderStorageBufferBinding)
	}
	if len(exe.AtomicCounterBufferBindings) > 0 {
		it.SetLater(dirty.AtomicCounterBufferBinding)
	}
	if exe.UsesMultiview && !m.multiview {
		m.unsupported("multiview program")
	}
}

// syncTextureBindings binds the texture read by every sampler of the current
// program. Incomplete textures are bound as 0.
func (m *Manager) syncTextureBindings(st *state.State) {
	exe := st.Executable()
	if exe == nil {
		return
	}
	for _, b := range exe.SamplerBindings {
		for _, unit := range b.Units {
			if !m.invariant(unit >= 0 && unit < m.caps.MaxCombinedTextureImageUnits, "Sampler unit %d out of range", unit) {
				continue
			}
			var id uint32
			if tex := st.SamplerTexture(unit, b.Type); tex != nil && !tex.Incomplete {
				id = tex.NativeID()
			}
			if m.s.Textures[b.Type][unit] != id {
				m.ActiveTexture(unit)
				m.BindTexture(b.Type, id)
			}
		}
	}
}

// syncSamplerBindings binds the sampler object of every texture unit.
func (m *Manager) syncSamplerBindings(st *state.State) {
	if st.Program == nil {
		return
	}
	for unit, smp := range st.Samplers {
		m.BindSampler(unit, smp.NativeID())
	}
}

// syncImageBindings binds the image unit of every image of the current
// program.
func (m *Manager) syncImageBindings(st *state.State) {
	exe := st.Executable()
	if exe == nil {
		return
	}
	for _, b := range exe.ImageBindings {
		for _, unit := range b.Units {
			if !m.invariant(unit >= 0 && unit < len(st.ImageUnits), "Image unit %d out of range", unit) {
				continue
			}
			u := st.ImageUnits[unit]
			m.BindImageTexture(unit, u.Texture.NativeID(), u.Level, u.Layered, u.Layer, u.Access, u.Format)
		}
	}
}

// syncIndexedBuffers binds the buffer backing every block of the current
// program that reads target. Whole-buffer bindings use BindBufferBase.
func (m *Manager) syncIndexedBuffers(st *state.State, target gl.BufferBinding) {
	exe := st.Executable()
	if exe == nil {
		return
	}
	var bindings []int
	switch target {
	case gl.BufferBindingUniform:
		bindings = exe.UniformBlockBindings
	case gl.BufferBindingShaderStorage:
		bindings = exe.ShaderStorageBlockBindings
	case gl.BufferBindingAtomicCounter:
		bindings = exe.AtomicCounterBufferBindings
	}
	buffers := st.IndexedBuffers(target)
	for _, index := range bindings {
		if !m.invariant(index >= 0 && index < len(buffers), "%v binding %d out of range", target, index) {
			continue
		}
		b := buffers[index]
		if b.Buffer == nil {
			continue
		}
		m.bindOffsetBuffer(target, index, b)
	}
}

func (m *Manager) bindOffsetBuffer(target gl.BufferBinding, index int, b state.OffsetBuffer) {
	if b.Size == 0 {
		m.BindBufferBase(target, index, b.Buffer.NativeID())
	} else {
		m.BindBufferRange(target, index, b.Buffer.NativeID(), b.Offset, b.Size)
	}
}
