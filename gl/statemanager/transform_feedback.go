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
	"github.com/google/glsync/gl/native"
	"github.com/google/glsync/gl/state"
)

// TransformFeedback is the backend payload of a transform feedback object.
// It caches the active and paused state of its native object.
type TransformFeedback struct {
	native *native.TransformFeedback
	m      *Manager
	id     uint32
	active bool
	paused bool
	// program is the program that began the capture.
	program uint32
}

var _ state.TransformFeedbackImpl = (*TransformFeedback)(nil)

// NewTransformFeedback generates a native transform feedback object managed
// by m.
func NewTransformFeedback(m *Manager) *TransformFeedback {
	n := native.NewTransformFeedback(m.f, m)
	return &TransformFeedback{native: n, m: m, id: n.NativeID()}
}

// NativeID returns the native handle, or 0 once released.
func (t *TransformFeedback) NativeID() uint32 { return t.native.NativeID() }

// IsActive returns true while capture is begun on the native object.
func (t *TransformFeedback) IsActive() bool { return t.active }

// IsPaused returns true while an active capture is paused.
func (t *TransformFeedback) IsPaused() bool { return t.paused }

// SyncActiveState begins or ends capture on the native object. Capture is
// always ended with the program that began it bound.
func (t *TransformFeedback) SyncActiveState(active bool, primitiveMode gl.GLenum, program uint32) {
	if t.active == active {
		return
	}
	t.active, t.paused = active, false
	m := t.m
	m.BindTransformFeedback(t.id)
	if active {
		t.program = program
		m.UseProgram(program)
		m.f.BeginTransformFeedback(primitiveMode)
	} else {
		previous := m.s.Program
		m.UseProgram(t.program)
		m.f.EndTransformFeedback()
		m.UseProgram(previous)
		t.program = 0
	}
}

// SyncPausedState pauses or resumes an active capture.
func (t *TransformFeedback) SyncPausedState(paused bool) {
	if !t.active || t.paused == paused {
		return
	}
	t.paused = paused
	t.m.BindTransformFeedback(t.id)
	if paused {
		t.m.f.PauseTransformFeedback()
	} else {
		t.m.f.ResumeTransformFeedback()
	}
}

// SyncIndexedBuffers binds the capture buffers of the object.
func (t *TransformFeedback) SyncIndexedBuffers(buffers []state.OffsetBuffer) {
	m := t.m
	m.BindTransformFeedback(t.id)
	n := len(m.s.IndexedBuffers[gl.BufferBindingTransformFeedback])
	for index, b := range buffers {
		if !m.invariant(index < n, "Transform feedback binding %d out of range", index) {
			return
		}
		if b.Buffer == nil {
			m.BindBufferBase(gl.BufferBindingTransformFeedback, index, 0)
			continue
		}
		m.bindOffsetBuffer(gl.BufferBindingTransformFeedback, index, b)
	}
}

// Release deletes the native object.
func (t *TransformFeedback) Release() {
	if t.m.currentTF == state.TransformFeedbackImpl(t) {
		t.m.currentTF = nil
	}
	t.native.Release()
}

// syncTransformFeedback binds the transform feedback object of st and
// brings its native capture state in line.
func (m *Manager) syncTransformFeedback(st *state.State) {
	tf := st.TransformFeedback
	if tf == nil || tf.Impl == nil {
		m.BindTransformFeedback(0)
		m.currentTF = nil
		return
	}
	m.BindTransformFeedback(tf.Impl.NativeID())
	tf.Impl.SyncIndexedBuffers(tf.IndexedBuffers)
	tf.Impl.SyncActiveState(tf.Active, tf.PrimitiveMode, tf.Program.NativeID())
	tf.Impl.SyncPausedState(tf.Paused)
	m.currentTF = tf.Impl
}

// PauseTransformFeedback pauses the capture of the current transform feedback
// object. The next synchronisation of the transform feedback binding restores
// the GL-visible state.
func (m *Manager) PauseTransformFeedback() {
	if m.currentTF != nil {
		m.currentTF.SyncPausedState(true)
		m.local.Set(dirty.TransformFeedbackBinding)
	}
}
