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

package statemanager_test

import (
	"testing"

	"github.com/google/glsync/core/assert"
	"github.com/google/glsync/gl"
	"github.com/google/glsync/gl/dirty"
	"github.com/google/glsync/gl/state"
	"github.com/google/glsync/gl/statemanager"
)

func TestTransformFeedback(t *testing.T) {
	assert := assert.To(t)
	ctx, m, r := newManager(t, statemanager.Config{})
	st := state.New(gl.DefaultCaps())
	syncAll(ctx, m, r, st)

	first := statemanager.NewTransformFeedback(m)
	firstState := &state.TransformFeedback{Impl: first}
	st.SetProgram(&state.Program{Impl: handle(4)})
	st.SetTransformFeedback(firstState)
	st.SetIndexedBuffer(gl.BufferBindingTransformFeedback, 0, state.OffsetBuffer{Buffer: &state.Buffer{Impl: handle(11)}})
	st.BeginTransformFeedback(gl.GLenum_GL_TRIANGLES)
	r.Reset()
	m.SyncState(ctx, st, st.DirtyBits(), dirty.All())
	assert.For("begin").ThatSlice(r.Calls.Strings()).Equals([]string{
		"UseProgram(4)",
		"BindTransformFeedback(0x8E22, 1)",
		"BindBufferBase(0x8C8E, 0, 11)",
		"BeginTransformFeedback(0x0004)",
	})
	assert.For("active").ThatBoolean(first.IsActive()).IsTrue()

	// Only the bound object may capture.
	second := statemanager.NewTransformFeedback(m)
	st.SetTransformFeedback(&state.TransformFeedback{Impl: second})
	r.Reset()
	m.SyncState(ctx, st, st.DirtyBits(), dirty.All())
	assert.For("switch").ThatSlice(r.Calls.Strings()).Equals([]string{
		"PauseTransformFeedback()",
		"BindTransformFeedback(0x8E22, 2)",
	})
	assert.For("paused").ThatBoolean(first.IsPaused()).IsTrue()

	st.SetTransformFeedback(firstState)
	r.Reset()
	m.SyncState(ctx, st, st.DirtyBits(), dirty.All())
	assert.For("switch back").ThatSlice(r.Calls.Strings()).Equals([]string{
		"BindTransformFeedback(0x8E22, 1)",
		"BindBufferBase(0x8C8E, 0, 11)",
		"ResumeTransformFeedback()",
	})

	// Capture ends with the program that began it.
	st.EndTransformFeedback()
	st.SetProgram(&state.Program{Impl: handle(5)})
	r.Reset()
	m.SyncState(ctx, st, st.DirtyBits(), dirty.All())
	assert.For("end").ThatSlice(r.Calls.Strings()).Equals([]string{
		"UseProgram(5)",
		"UseProgram(4)",
		"EndTransformFeedback()",
		"UseProgram(5)",
	})
	assert.For("inactive").ThatBoolean(first.IsActive()).IsFalse()
}

func TestTransformFeedbackContextSwitch(t *testing.T) {
	assert := assert.To(t)
	ctx, m, r := newManager(t, statemanager.Config{})
	st := state.New(gl.DefaultCaps())
	m.OnMakeCurrent(ctx, st)
	syncAll(ctx, m, r, st)

	tf := statemanager.NewTransformFeedback(m)
	st.SetTransformFeedback(&state.TransformFeedback{Impl: tf})
	st.BeginTransformFeedback(gl.GLenum_GL_POINTS)
	syncAll(ctx, m, r, st)

	other := state.New(gl.DefaultCaps())
	other.ContextID = 2
	m.OnMakeCurrent(ctx, other)
	assert.For("paused").ThatSlice(r.Calls.Strings()).Equals([]string{"PauseTransformFeedback()"})

	r.Reset()
	m.OnMakeCurrent(ctx, st)
	m.SyncState(ctx, st, st.DirtyBits(), dirty.All())
	assert.For("resumed").ThatSlice(r.Calls.Strings()).Equals([]string{"ResumeTransformFeedback()"})
}

func TestTransformFeedbackRelease(t *testing.T) {
	assert := assert.To(t)
	ctx, m, r := newManager(t, statemanager.Config{})
	st := state.New(gl.DefaultCaps())
	tf := statemanager.NewTransformFeedback(m)
	st.SetTransformFeedback(&state.TransformFeedback{Impl: tf})
	syncAll(ctx, m, r, st)

	tf.Release()
	tf.Release()
	assert.For("release").ThatSlice(r.Calls.Strings()).Equals([]string{
		"BindTransformFeedback(0x8E22, 0)",
		"DeleteTransformFeedback(1)",
	})
	assert.For("id").That(tf.NativeID()).Equals(uint32(0))
}
